package customer

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidDocument occurs when the supplied document fails the validity
// check.
var ErrInvalidDocument = errors.New("invalid document")

// DocumentValidator checks national identifier documents. The checksum
// algorithm lives outside the registry (see internal/cpf).
type DocumentValidator interface {
	Valid(document string) bool
}

// Service manages the customer registry lifecycle.
type Service struct {
	registry  Registry
	validator DocumentValidator
	now       func() time.Time
}

// NewService creates a customer service backed by the given registry and
// document validator.
func NewService(registry Registry, validator DocumentValidator) *Service {
	return &Service{registry: registry, validator: validator, now: time.Now}
}

// CreateInput carries the data needed to register a customer.
type CreateInput struct {
	Document  string
	Name      string
	BirthDate time.Time
	Address   string
}

// Create registers a new customer keyed by document. Customers are immutable
// once registered.
func (s *Service) Create(ctx context.Context, input CreateInput) (Customer, error) {
	if input.Document == "" {
		return Customer{}, ErrInvalidDocument
	}
	if !s.validator.Valid(input.Document) {
		return Customer{}, ErrInvalidDocument
	}

	c := Customer{
		Document:  input.Document,
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Address:   input.Address,
		CreatedAt: s.now().UTC(),
	}

	if err := s.registry.Create(ctx, c); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Find returns the customer registered under document.
func (s *Service) Find(ctx context.Context, document string) (Customer, error) {
	return s.registry.FindByDocument(ctx, document)
}
