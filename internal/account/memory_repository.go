package account

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	next     int64
	accounts map[int64]*Account
	order    []int64
}

// NewMemoryRepository returns an in-memory account store. Numbers are
// assigned sequentially starting at 1 and listings preserve creation
// order.
func NewMemoryRepository() Repository {
	return &memoryRepository{accounts: make(map[int64]*Account)}
}

func (r *memoryRepository) Create(_ context.Context, acc Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	acc.Number = r.next

	stored := acc.Clone()
	r.accounts[acc.Number] = &stored
	r.order = append(r.order, acc.Number)
	return acc, nil
}

func (r *memoryRepository) Get(_ context.Context, number int64) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[number]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acc.Clone(), nil
}

func (r *memoryRepository) List(_ context.Context) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.accounts[number].Clone())
	}
	return out, nil
}

func (r *memoryRepository) ListByOwner(_ context.Context, document string) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Account
	for _, number := range r.order {
		if acc := r.accounts[number]; acc.OwnerDocument == document {
			out = append(out, acc.Clone())
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, number int64, fn func(*Account) error) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[number]
	if !ok {
		return Account{}, ErrNotFound
	}

	// fn works on a scratch copy; a failed rule leaves the stored
	// account untouched.
	scratch := acc.Clone()
	if err := fn(&scratch); err != nil {
		return Account{}, err
	}
	r.accounts[number] = &scratch
	return scratch.Clone(), nil
}
