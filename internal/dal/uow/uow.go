package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dulceria/order-svc/internal/dal/interfaces/icatalogrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/iorderrepo"
	"github.com/dulceria/order-svc/internal/dal/interfaces/ioutboxrepo"
	"github.com/dulceria/order-svc/internal/dal/postgres"
	catalogrepo "github.com/dulceria/order-svc/internal/dal/repositories/catalog/postgres"
	orderrepo "github.com/dulceria/order-svc/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/dulceria/order-svc/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/dulceria/order-svc/internal/dal/repositories/outbox/postgres"
)

// unitOfWork scopes the repositories to a single pgx transaction. Before
// Begin, repositories run directly against the pool; after Begin, every call
// shares the transaction until Commit or Rollback.
type unitOfWork struct {
	pool *pgxpool.Pool
	tx   pgx.Tx

	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	catalogRepo   icatalogrepo.ICatalogRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	pool := client.Pool()

	return &unitOfWork{
		pool:          pool,
		orderRepo:     orderrepo.NewPostgresOrderRepository(pool),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(pool),
		catalogRepo:   catalogrepo.NewPostgresCatalogRepository(pool),
		outboxRepo:    outboxrepo.NewOutboxRepository(pool),
	}
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) CatalogRepository() icatalogrepo.ICatalogRepository {
	return u.catalogRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.catalogRepo = catalogrepo.NewPostgresCatalogRepository(tx)
	u.outboxRepo = outboxrepo.NewOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}
