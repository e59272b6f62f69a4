// Package account holds checking accounts and their transaction history.
package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags a ledger entry as money moving in or out of the account.
type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
)

// Transaction is a single movement recorded against an account.
type Transaction struct {
	ID     string
	Kind   Kind
	Amount decimal.Decimal
	Time   time.Time
}

// Account is a checking account owned by a registered customer.
// WithdrawalsUsed and PeriodKey track the per-period withdrawal
// allowance; PeriodKey identifies the period the counter belongs to.
type Account struct {
	Branch          string
	Number          int64
	OwnerDocument   string
	Balance         decimal.Decimal
	WithdrawalsUsed int
	PeriodKey       string
	History         []Transaction
	CreatedAt       time.Time
}

// Clone returns a deep copy so callers can read or mutate the result
// without sharing state with the repository.
func (a Account) Clone() Account {
	dup := a
	if a.History != nil {
		dup.History = make([]Transaction, len(a.History))
		copy(dup.History, a.History)
	}
	return dup
}
