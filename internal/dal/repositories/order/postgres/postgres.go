package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dulceria/order-svc/internal/dal/postgres"
	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/service/models/orderitem"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id            int64     `db:"id"`
	CustomerId    int64     `db:"customer_id"`
	Status        string    `db:"status"`
	TotalCents    int64     `db:"total_cents"`
	TotalCurrency string    `db:"total_currency"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	st, err := order.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	cur, err := currency.ParseCurrency(o.TotalCurrency)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:            o.Id,
		CustomerID:    o.CustomerId,
		Status:        st,
		TotalCents:    o.TotalCents,
		TotalCurrency: cur,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         []orderitem.OrderItem{}, // populated separately
	}, nil
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.Conn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists a new order and returns it with its generated id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	query, args, err := r.sb.
		Insert("orders").
		Columns(
			"customer_id",
			"status",
			"total_cents",
			"total_currency",
			"created_at",
			"updated_at",
		).
		Values(
			o.CustomerID,
			o.Status.String(),
			o.TotalCents,
			o.TotalCurrency.String(),
			o.CreatedAt,
			o.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&o.ID); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	return &o, nil
}

// GetByID retrieves a single order without its items.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	query, args, err := r.selectOrders().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var dal OrderDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.CustomerId,
		&dal.Status,
		&dal.TotalCents,
		&dal.TotalCurrency,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.NotFoundError{Entity: "order", ID: id}
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return dal.ToModel()
}

// Query retrieves orders based on filter criteria, most recent first.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.selectOrders()

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}
	if len(filter.CustomerIds) > 0 {
		query = query.Where(sq.Eq{"customer_id": filter.CustomerIds})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.CustomerId,
			&dal.Status,
			&dal.TotalCents,
			&dal.TotalCurrency,
			&dal.CreatedAt,
			&dal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpdateStatus persists a status transition, guarded by the expected current
// status. A concurrent transition that committed first makes the WHERE clause
// miss; zero rows is reported as false, not an error, and the caller decides
// how to treat the lost race.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to order.Status,
	updatedAt time.Time,
) (bool, error) {
	query, args, err := r.sb.
		Update("orders").
		Set("status", to.String()).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id, "status": from.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes an order. Items are removed separately by the caller.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func (r *PostgresOrderRepository) selectOrders() sq.SelectBuilder {
	return r.sb.
		Select(
			"id",
			"customer_id",
			"status",
			"total_cents",
			"total_currency",
			"created_at",
			"updated_at",
		).
		From("orders").
		OrderBy("created_at DESC", "id DESC")
}
