package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dulceria/order-svc/internal/dal/interfaces/icatalogrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/iorderrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/ioutboxrepo"
	"github.com/dulceria/order-svc/internal/dal/postgres"
	"github.com/dulceria/order-svc/internal/dal/uow"
	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/service/models/orderevent"
	"github.com/dulceria/order-svc/internal/service/models/orderitem"
)

// MsgNoChanges is returned by SetStatus when the requested status equals the
// current one. The transition is an explicit no-op and inventory is untouched.
const MsgNoChanges = "no changes"

// MsgStatusUpdated is returned by SetStatus after a persisted transition.
const MsgStatusUpdated = "status updated"

const eventMaxRetries = 5

// OrderService orchestrates the order lifecycle: creation with a price
// snapshot and an advisory stock check, and the approval transition where
// stock is actually deducted.
type OrderService struct {
	pgClient *postgres.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	CatalogRepository() icatalogrepo.ICatalogRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// LineRequest is one requested line of a new order.
type LineRequest struct {
	CatalogItemID int64
	Quantity      int
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides the unit-of-work constructor. Used by tests
// to substitute in-memory repositories.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// Create builds an order in pending status from the requested lines.
//
// Each line's unit price is snapshotted from the catalog at call time and the
// requested quantity is checked against current availability, but no stock is
// deducted: availability can change before an admin approves, so the check is
// advisory and repeated at approval time. Lines with a non-positive quantity
// are skipped rather than failing the whole order.
func (s *OrderService) Create(
	ctx context.Context,
	customerID int64,
	lines []LineRequest,
) (*order.Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValidation("customer id is required")
	}
	if len(lines) == 0 {
		return nil, errs.NewValidation("at least one item is required")
	}

	now := time.Now()

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, &errs.StorageError{Op: "begin create order", Err: err}
	}
	defer func() { _ = work.Rollback(ctx) }()

	items := make([]orderitem.OrderItem, 0, len(lines))
	var cur currency.Currency
	for _, ln := range lines {
		// Malformed lines are treated as omitted, not as a hard failure.
		if ln.CatalogItemID <= 0 || ln.Quantity <= 0 {
			continue
		}

		ci, err := work.CatalogRepository().GetByID(ctx, ln.CatalogItemID)
		if err != nil {
			return nil, err
		}
		if ln.Quantity > ci.AvailableQty {
			return nil, &errs.InsufficientStockError{CatalogItemID: ci.ID}
		}

		// Cents from different currencies must never be summed into one total.
		if cur == "" {
			cur = ci.PriceCurrency
		} else if ci.PriceCurrency != cur {
			return nil, errs.NewValidation(
				"order mixes currencies %s and %s", cur, ci.PriceCurrency,
			)
		}

		items = append(items, orderitem.OrderItem{
			CatalogItemID:  ci.ID,
			Quantity:       ln.Quantity,
			UnitPriceCents: ci.PriceCents,
			PriceCurrency:  ci.PriceCurrency,
			SubtotalCents:  ci.PriceCents * int64(ln.Quantity),
			CreatedAt:      now,
		})
	}

	if len(items) == 0 {
		return nil, errs.NewValidation("no valid items in order")
	}

	inserted, err := work.OrderRepository().Insert(ctx, order.Order{
		CustomerID:    customerID,
		Status:        order.StatusPending,
		TotalCents:    order.TotalFromItems(items),
		TotalCurrency: cur,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = inserted.ID
	}
	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return nil, err
	}
	inserted.Items = items

	if err := s.enqueueEvent(ctx, work, orderevent.TypeOrderCreated, inserted, now); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, &errs.StorageError{Op: "commit create order", Err: err}
	}

	return inserted, nil
}

// SetStatus performs the single status transition of an order's lifecycle.
//
// Approval re-validates and deducts stock for every line inside one
// transaction: any line without sufficient stock aborts the whole transition
// with zero decrements applied. Rejection never touches inventory. Requesting
// the current status is a no-op that reports MsgNoChanges; a transition that
// loses a race against a concurrent identical one resolves to the same no-op,
// so stock is deducted at most once per order.
func (s *OrderService) SetStatus(ctx context.Context, orderID int64, rawStatus string) (string, error) {
	newStatus, err := order.ParseStatus(rawStatus)
	if err != nil {
		return "", errs.NewValidation("invalid status %q", rawStatus)
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return "", &errs.StorageError{Op: "begin set status", Err: err}
	}
	defer func() { _ = work.Rollback(ctx) }()

	current, err := work.OrderRepository().GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if current.Status == newStatus {
		return MsgNoChanges, nil
	}
	if !order.CanTransition(current.Status, newStatus) {
		return "", errs.NewValidation(
			"order %d is %s and cannot become %s", orderID, current.Status, newStatus,
		)
	}

	// The update is guarded by the status just read. It runs before any stock
	// deduction so concurrent transitions serialize on the order row: the loser
	// matches zero rows and never reaches the deduction loop.
	now := time.Now()
	updated, err := work.OrderRepository().UpdateStatus(ctx, orderID, current.Status, newStatus, now)
	if err != nil {
		return "", err
	}
	if !updated {
		latest, err := work.OrderRepository().GetByID(ctx, orderID)
		if err != nil {
			return "", err
		}
		if latest.Status == newStatus {
			return MsgNoChanges, nil
		}
		return "", errs.NewValidation(
			"order %d is %s and cannot become %s", orderID, latest.Status, newStatus,
		)
	}

	if newStatus == order.StatusApproved {
		items, err := work.OrderItemRepository().QueryByOrder(ctx, orderID)
		if err != nil {
			return "", err
		}
		for _, it := range items {
			// Any failure rolls back the status change and the decrements
			// already applied, keeping the transition all-or-nothing.
			if _, err := work.CatalogRepository().DecrementIfSufficient(ctx, it.CatalogItemID, it.Quantity); err != nil {
				return "", err
			}
		}
	}

	current.Status = newStatus
	eventType := orderevent.TypeOrderRejected
	if newStatus == order.StatusApproved {
		eventType = orderevent.TypeOrderApproved
	}
	if err := s.enqueueEvent(ctx, work, eventType, current, now); err != nil {
		return "", err
	}

	if err := work.Commit(ctx); err != nil {
		return "", &errs.StorageError{Op: "commit set status", Err: err}
	}

	return MsgStatusUpdated, nil
}

// List retrieves every order, most recent first, without line items.
func (s *OrderService) List(ctx context.Context, limit, offset int) ([]order.Order, error) {
	work := s.newUOW()
	return work.OrderRepository().Query(ctx, &order.QueryOrdersModel{
		Limit:  limit,
		Offset: offset,
	})
}

// ListForCustomer retrieves one customer's orders, most recent first.
func (s *OrderService) ListForCustomer(
	ctx context.Context,
	customerID int64,
	limit, offset int,
) ([]order.Order, error) {
	work := s.newUOW()
	return work.OrderRepository().Query(ctx, &order.QueryOrdersModel{
		CustomerIds: []int64{customerID},
		Limit:       limit,
		Offset:      offset,
	})
}

// GetWithItems retrieves an order together with its full line-item breakdown.
func (s *OrderService) GetWithItems(ctx context.Context, orderID int64) (*order.Order, error) {
	work := s.newUOW()

	o, err := work.OrderRepository().GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := work.OrderItemRepository().QueryByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// Delete removes an order and its line items unconditionally. Stock is not
// restored even when the order was approved.
func (s *OrderService) Delete(ctx context.Context, orderID int64) error {
	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return &errs.StorageError{Op: "begin delete order", Err: err}
	}
	defer func() { _ = work.Rollback(ctx) }()

	if err := work.OrderItemRepository().DeleteByOrder(ctx, orderID); err != nil {
		return err
	}
	if err := work.OrderRepository().Delete(ctx, orderID); err != nil {
		return err
	}

	if err := work.Commit(ctx); err != nil {
		return &errs.StorageError{Op: "commit delete order", Err: err}
	}

	return nil
}

// enqueueEvent writes a lifecycle event into the outbox within the current
// transaction, so the event is published iff the state change commits.
func (s *OrderService) enqueueEvent(
	ctx context.Context,
	work unitOfWork,
	eventType string,
	o *order.Order,
	now time.Time,
) error {
	payload, err := json.Marshal(orderevent.Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		TotalCents: o.TotalCents,
		Status:     o.Status.String(),
		OccurredAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	return work.OutboxRepository().Insert(ctx, outboxMessage(eventType, payload, now))
}
