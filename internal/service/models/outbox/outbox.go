package outbox

import (
	"time"
)

// Message is one pending event in the transactional outbox. Rows are written
// in the same transaction as the order state change they describe and relayed
// to RabbitMQ by the outbox worker.
type Message struct {
	ID           int64
	QueueName    string
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
