package customer

import "time"

// Customer is a registered account holder, keyed by CPF document.
type Customer struct {
	Document  string
	Name      string
	BirthDate time.Time
	Address   string
	CreatedAt time.Time
}
