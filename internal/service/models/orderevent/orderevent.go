package orderevent

import "time"

// Routing for order lifecycle events relayed through the outbox.
const (
	QueueOrderEvents = "oms.order.events"

	TypeOrderCreated  = "order.created"
	TypeOrderApproved = "order.approved"
	TypeOrderRejected = "order.rejected"
)

// Event is the payload published for every order lifecycle change.
type Event struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	OrderID    int64     `json:"orderId"`
	CustomerID int64     `json:"customerId"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
