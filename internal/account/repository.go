package account

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no account exists for a given number.
var ErrNotFound = errors.New("account not found")

// Repository stores accounts and hands out sequential account numbers.
//
// Update applies fn to a copy of the stored account and commits the
// result only when fn returns nil, so balance and history changes are
// all-or-nothing.
type Repository interface {
	Create(ctx context.Context, acc Account) (Account, error)
	Get(ctx context.Context, number int64) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListByOwner(ctx context.Context, document string) ([]Account, error)
	Update(ctx context.Context, number int64, fn func(*Account) error) (Account, error)
}
