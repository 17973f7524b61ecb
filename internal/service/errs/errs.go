package errs

import "fmt"

// ValidationError reports malformed input: a missing customer, an empty item
// list or an unrecognized status value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidation builds a ValidationError with a formatted message.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown order or catalog item.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError reports that a requested quantity exceeds the
// available quantity of a catalog item. It carries the offending item id.
type InsufficientStockError struct {
	CatalogItemID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for catalog item %d", e.CatalogItemID)
}

// StorageError wraps a persistence-layer failure. It is never retried
// internally; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
