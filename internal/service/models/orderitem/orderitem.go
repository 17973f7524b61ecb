package orderitem

import (
	"time"

	"github.com/dulceria/order-svc/internal/service/models/currency"
)

// OrderItem is one catalog item plus quantity within an order. The unit price
// is a snapshot taken at order-creation time, not a live reference; the row is
// immutable once written.
type OrderItem struct {
	ID             int64             `json:"id"`
	OrderID        int64             `json:"orderId"`
	CatalogItemID  int64             `json:"catalogItemId"`
	Quantity       int               `json:"quantity"`
	UnitPriceCents int64             `json:"unitPriceCents"`
	PriceCurrency  currency.Currency `json:"priceCurrency"`
	SubtotalCents  int64             `json:"subtotalCents"`
	CreatedAt      time.Time         `json:"createdAt"`
}
