package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dulceria/order-svc/internal/dal/postgres"
	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/service/models/orderitem"
)

// OrderItemDal represents the order item data access layer model.
type OrderItemDal struct {
	Id             int64     `db:"id"`
	OrderId        int64     `db:"order_id"`
	CatalogItemId  int64     `db:"catalog_item_id"`
	Quantity       int       `db:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents"`
	PriceCurrency  string    `db:"price_currency"`
	SubtotalCents  int64     `db:"subtotal_cents"`
	CreatedAt      time.Time `db:"created_at"`
}

// ToModel converts OrderItemDal to the service layer OrderItem model.
func (oi *OrderItemDal) ToModel() (*orderitem.OrderItem, error) {
	cur, err := currency.ParseCurrency(oi.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return &orderitem.OrderItem{
		ID:             oi.Id,
		OrderID:        oi.OrderId,
		CatalogItemID:  oi.CatalogItemId,
		Quantity:       oi.Quantity,
		UnitPriceCents: oi.UnitPriceCents,
		PriceCurrency:  cur,
		SubtotalCents:  oi.SubtotalCents,
		CreatedAt:      oi.CreatedAt,
	}, nil
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.Conn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts all line items of an order and returns them with ids.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	items []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(items) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	query := r.sb.
		Insert("order_items").
		Columns(
			"order_id",
			"catalog_item_id",
			"quantity",
			"unit_price_cents",
			"price_currency",
			"subtotal_cents",
			"created_at",
		)

	for _, it := range items {
		query = query.Values(
			it.OrderID,
			it.CatalogItemID,
			it.Quantity,
			it.UnitPriceCents,
			it.PriceCurrency.String(),
			it.SubtotalCents,
			it.CreatedAt,
		)
	}

	sql, args, err := query.
		Suffix("RETURNING id, order_id, catalog_item_id, quantity, unit_price_cents, price_currency, subtotal_cents, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.CatalogItemId,
			&dal.Quantity,
			&dal.UnitPriceCents,
			&dal.PriceCurrency,
			&dal.SubtotalCents,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order item dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// QueryByOrder retrieves the line items of one order.
func (r *PostgresOrderItemRepository) QueryByOrder(
	ctx context.Context,
	orderID int64,
) ([]orderitem.OrderItem, error) {
	sql, args, err := r.sb.
		Select(
			"id",
			"order_id",
			"catalog_item_id",
			"quantity",
			"unit_price_cents",
			"price_currency",
			"subtotal_cents",
			"created_at",
		).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.CatalogItemId,
			&dal.Quantity,
			&dal.UnitPriceCents,
			&dal.PriceCurrency,
			&dal.SubtotalCents,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order item dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// DeleteByOrder removes every line item of an order.
func (r *PostgresOrderItemRepository) DeleteByOrder(ctx context.Context, orderID int64) error {
	sql, args, err := r.sb.Delete("order_items").Where(sq.Eq{"order_id": orderID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	return nil
}
