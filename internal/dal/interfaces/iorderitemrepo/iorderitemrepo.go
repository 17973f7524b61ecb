package iorderitemrepo

import (
	"context"

	"github.com/dulceria/order-svc/internal/service/models/orderitem"
)

// IOrderItemRepository is an interface for the order item postgres repository.
type IOrderItemRepository interface {
	BulkInsert(ctx context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error)
	QueryByOrder(ctx context.Context, orderID int64) ([]orderitem.OrderItem, error)
	DeleteByOrder(ctx context.Context, orderID int64) error
}
