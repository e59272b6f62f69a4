package customer

import (
	"context"
	"sync"
)

type memoryRegistry struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

// NewMemoryRegistry builds the in-memory customer store used by the terminal
// application and tests.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{customers: make(map[string]Customer)}
}

func (r *memoryRegistry) Create(_ context.Context, c Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.Document]; exists {
		return ErrDuplicateCustomer
	}
	r.customers[c.Document] = c
	return nil
}

func (r *memoryRegistry) FindByDocument(_ context.Context, document string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[document]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}
