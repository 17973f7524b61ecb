package catalogsvc

import (
	"context"
	"time"

	"github.com/dulceria/order-svc/internal/dal/interfaces/icatalogrepo"
	"github.com/dulceria/order-svc/internal/dal/postgres"
	catalogrepo "github.com/dulceria/order-svc/internal/dal/repositories/catalog/postgres"
	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
)

// CatalogService manages the dessert catalog. The order service consumes its
// read path (price and availability); the write path backs the admin CRUD.
type CatalogService struct {
	pgClient *postgres.Client
	repo     icatalogrepo.ICatalogRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		s.repo = catalogrepo.NewPostgresCatalogRepository(s.pgClient.Pool())
	}

	return s
}

// WithPostgresClient sets the Postgres client for the CatalogService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CatalogService) {
		s.pgClient = pgClient
	}
}

// WithRepository overrides the catalog repository. Used by tests.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo icatalogrepo.ICatalogRepository) option {
	return func(s *CatalogService) {
		s.repo = repo
	}
}

// List retrieves the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]catalogitem.CatalogItem, error) {
	return s.repo.List(ctx)
}

// Get retrieves one catalog item.
func (s *CatalogService) Get(ctx context.Context, id int64) (*catalogitem.CatalogItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a new catalog item.
func (s *CatalogService) Create(
	ctx context.Context,
	item catalogitem.CatalogItem,
) (*catalogitem.CatalogItem, error) {
	if item.PriceCents < 0 {
		return nil, errs.NewValidation("price must not be negative")
	}
	if item.AvailableQty < 0 {
		return nil, errs.NewValidation("available quantity must not be negative")
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	return s.repo.Insert(ctx, item)
}

// Update overwrites an existing catalog item.
func (s *CatalogService) Update(ctx context.Context, item catalogitem.CatalogItem) error {
	if item.PriceCents < 0 {
		return errs.NewValidation("price must not be negative")
	}
	if item.AvailableQty < 0 {
		return errs.NewValidation("available quantity must not be negative")
	}

	item.UpdatedAt = time.Now()

	return s.repo.Update(ctx, item)
}

// Delete removes a catalog item.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
