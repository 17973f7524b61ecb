package catalogitem

import (
	"time"

	"github.com/dulceria/order-svc/internal/service/models/currency"
)

// CatalogItem is a sellable dessert with a price and a stock count.
// AvailableQty is only ever decremented through the conditional update in the
// catalog repository; order creation reads it but never writes it.
type CatalogItem struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl"`
	PriceCents    int64             `json:"priceCents"`
	PriceCurrency currency.Currency `json:"priceCurrency"`
	AvailableQty  int               `json:"availableQty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
