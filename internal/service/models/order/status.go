package order

import "errors"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// validNext encodes the transition table. Approved and rejected are terminal:
// stock is deducted exactly once on approval and never restored, so reopening
// a decided order would desynchronize inventory.
var validNext = map[Status]map[Status]bool{
	StatusPending:  {StatusApproved: true, StatusRejected: true},
	StatusApproved: {},
	StatusRejected: {},
}

// CanTransition reports whether an order may move from one status to another.
// A same-status transition is always permitted; callers treat it as a no-op.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return validNext[from][to]
}
