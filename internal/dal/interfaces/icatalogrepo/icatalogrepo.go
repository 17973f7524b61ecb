package icatalogrepo

import (
	"context"

	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
)

// ICatalogRepository is an interface for the catalog postgres repository.
// DecrementIfSufficient is the inventory ledger primitive: a single atomic
// read-modify-write that fails without mutation when stock is short.
type ICatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*catalogitem.CatalogItem, error)
	List(ctx context.Context) ([]catalogitem.CatalogItem, error)
	Insert(ctx context.Context, item catalogitem.CatalogItem) (*catalogitem.CatalogItem, error)
	Update(ctx context.Context, item catalogitem.CatalogItem) error
	Delete(ctx context.Context, id int64) error
	DecrementIfSufficient(ctx context.Context, id int64, quantity int) (int, error)
}
