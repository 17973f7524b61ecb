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
	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
	"github.com/dulceria/order-svc/internal/service/models/currency"
)

// CatalogItemDal represents the catalog item data access layer model.
type CatalogItemDal struct {
	Id            int64     `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	ImageUrl      string    `db:"image_url"`
	PriceCents    int64     `db:"price_cents"`
	PriceCurrency string    `db:"price_currency"`
	AvailableQty  int       `db:"available_qty"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ToModel converts CatalogItemDal to the service layer CatalogItem model.
func (c *CatalogItemDal) ToModel() (*catalogitem.CatalogItem, error) {
	cur, err := currency.ParseCurrency(c.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return &catalogitem.CatalogItem{
		ID:            c.Id,
		Name:          c.Name,
		Description:   c.Description,
		ImageURL:      c.ImageUrl,
		PriceCents:    c.PriceCents,
		PriceCurrency: cur,
		AvailableQty:  c.AvailableQty,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

// PostgresCatalogRepository represents a Postgres catalog repository.
type PostgresCatalogRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresCatalogRepository creates a new Postgres catalog repository.
func NewPostgresCatalogRepository(conn postgres.Conn) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const catalogColumns = "id, name, description, image_url, price_cents, price_currency, available_qty, created_at, updated_at"

// GetByID retrieves one catalog item.
func (r *PostgresCatalogRepository) GetByID(
	ctx context.Context,
	id int64,
) (*catalogitem.CatalogItem, error) {
	sql, args, err := r.sb.
		Select(catalogColumns).
		From("catalog_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var dal CatalogItemDal
	err = r.conn.QueryRow(ctx, sql, args...).Scan(
		&dal.Id,
		&dal.Name,
		&dal.Description,
		&dal.ImageUrl,
		&dal.PriceCents,
		&dal.PriceCurrency,
		&dal.AvailableQty,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.NotFoundError{Entity: "catalog item", ID: id}
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	return dal.ToModel()
}

// List retrieves the full catalog.
func (r *PostgresCatalogRepository) List(ctx context.Context) ([]catalogitem.CatalogItem, error) {
	sql, args, err := r.sb.
		Select(catalogColumns).
		From("catalog_items").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var result []catalogitem.CatalogItem
	for rows.Next() {
		var dal CatalogItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.Name,
			&dal.Description,
			&dal.ImageUrl,
			&dal.PriceCents,
			&dal.PriceCurrency,
			&dal.AvailableQty,
			&dal.CreatedAt,
			&dal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert catalog item dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert persists a new catalog item and returns it with its generated id.
func (r *PostgresCatalogRepository) Insert(
	ctx context.Context,
	item catalogitem.CatalogItem,
) (*catalogitem.CatalogItem, error) {
	sql, args, err := r.sb.
		Insert("catalog_items").
		Columns(
			"name",
			"description",
			"image_url",
			"price_cents",
			"price_currency",
			"available_qty",
			"created_at",
			"updated_at",
		).
		Values(
			item.Name,
			item.Description,
			item.ImageURL,
			item.PriceCents,
			item.PriceCurrency.String(),
			item.AvailableQty,
			item.CreatedAt,
			item.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("failed to insert catalog item: %w", err)
	}

	return &item, nil
}

// Update overwrites the mutable fields of a catalog item.
func (r *PostgresCatalogRepository) Update(
	ctx context.Context,
	item catalogitem.CatalogItem,
) error {
	sql, args, err := r.sb.
		Update("catalog_items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("image_url", item.ImageURL).
		Set("price_cents", item.PriceCents).
		Set("price_currency", item.PriceCurrency.String()).
		Set("available_qty", item.AvailableQty).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &errs.NotFoundError{Entity: "catalog item", ID: item.ID}
	}

	return nil
}

// Delete removes a catalog item.
func (r *PostgresCatalogRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("catalog_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	return nil
}

// DecrementIfSufficient atomically deducts quantity from a catalog item's
// available stock. The sufficiency check and the write happen in one
// conditional UPDATE, so two concurrent approvals can never drive the count
// below zero. Returns the new quantity.
func (r *PostgresCatalogRepository) DecrementIfSufficient(
	ctx context.Context,
	id int64,
	quantity int,
) (int, error) {
	var newQty int
	err := r.conn.QueryRow(ctx, `
		UPDATE catalog_items
		SET available_qty = available_qty - $2, updated_at = now()
		WHERE id = $1 AND available_qty >= $2
		RETURNING available_qty
	`, id, quantity).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to decrement stock: %w", err)
	}

	// Zero rows: either the item is gone or the stock is short.
	var available int
	err = r.conn.QueryRow(ctx,
		`SELECT available_qty FROM catalog_items WHERE id = $1`, id,
	).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, &errs.NotFoundError{Entity: "catalog item", ID: id}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check stock: %w", err)
	}

	return 0, &errs.InsufficientStockError{CatalogItemID: id}
}
