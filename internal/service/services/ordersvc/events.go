package ordersvc

import (
	"time"

	"github.com/dulceria/order-svc/internal/service/models/orderevent"
	"github.com/dulceria/order-svc/internal/service/models/outbox"
)

func outboxMessage(eventType string, payload []byte, now time.Time) outbox.Message {
	return outbox.Message{
		QueueName:   orderevent.QueueOrderEvents,
		RoutingKey:  orderevent.QueueOrderEvents,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  eventMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	}
}
