package customer

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateCustomer occurs when the document is already registered.
	ErrDuplicateCustomer = errors.New("customer already registered")

	// ErrNotFound indicates no customer is registered under the document.
	ErrNotFound = errors.New("customer not found")
)

// Registry persists customers. Implementations enforce document uniqueness.
type Registry interface {
	Create(ctx context.Context, c Customer) error
	FindByDocument(ctx context.Context, document string) (Customer, error)
}
