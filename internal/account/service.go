package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/verdebank/verdebank/internal/customer"
)

// CustomerDirectory resolves documents to registered customers. The
// customer registry satisfies it.
type CustomerDirectory interface {
	Find(ctx context.Context, document string) (customer.Customer, error)
}

// Service opens accounts for registered customers and answers lookups.
type Service struct {
	repo      Repository
	customers CustomerDirectory
	branch    string
	now       func() time.Time
}

func NewService(repo Repository, customers CustomerDirectory, branch string) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		branch:    branch,
		now:       time.Now,
	}
}

// Open creates an account for the customer identified by document.
// The owner must already be registered; the repository assigns the
// account number.
func (s *Service) Open(ctx context.Context, document string) (Account, error) {
	owner, err := s.customers.Find(ctx, document)
	if err != nil {
		return Account{}, err
	}

	return s.repo.Create(ctx, Account{
		Branch:        s.branch,
		OwnerDocument: owner.Document,
		Balance:       decimal.Zero,
		CreatedAt:     s.now().UTC(),
	})
}

func (s *Service) Get(ctx context.Context, number int64) (Account, error) {
	return s.repo.Get(ctx, number)
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, document string) ([]Account, error) {
	return s.repo.ListByOwner(ctx, document)
}
