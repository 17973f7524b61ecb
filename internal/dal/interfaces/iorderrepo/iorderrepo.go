package iorderrepo

import (
	"context"
	"time"

	"github.com/dulceria/order-svc/internal/service/models/order"
)

// IOrderRepository is an interface for the order postgres repository.
// UpdateStatus is guarded by the expected current status and reports whether a
// row matched, so two concurrent transitions on the same order cannot both win.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (*order.Order, error)
	GetByID(ctx context.Context, id int64) (*order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to order.Status, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id int64) error
}
