package order

import (
	"time"

	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/service/models/orderitem"
)

// Order represents a customer's request to purchase catalog items at their
// price at order time.
type Order struct {
	ID            int64                 `json:"id"`
	CustomerID    int64                 `json:"customerId"`
	Status        Status                `json:"status"`
	TotalCents    int64                 `json:"totalCents"`
	TotalCurrency currency.Currency     `json:"totalCurrency"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	Items         []orderitem.OrderItem `json:"items,omitempty"`
}

// TotalFromItems sums line subtotals. The persisted total must equal this at
// creation time; status transitions never recompute it.
func TotalFromItems(items []orderitem.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.SubtotalCents
	}
	return total
}
