// Package ledger applies deposits and withdrawals to accounts and
// produces statements. Every movement is validated against the
// account's balance and the per-period withdrawal rules before it is
// committed.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/verdebank/verdebank/internal/account"
)

var (
	// ErrInvalidAmount rejects zero or negative deposit and withdrawal
	// amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when a withdrawal asks for more than
	// the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDailyLimitExceeded occurs when the account has exhausted its
	// withdrawal allowance for the current period.
	ErrDailyLimitExceeded = errors.New("withdrawal limit reached for the period")

	// ErrWithdrawalCapExceeded occurs when a single withdrawal asks for
	// more than the configured per-withdrawal cap.
	ErrWithdrawalCapExceeded = errors.New("amount exceeds the per-withdrawal cap")
)

// Statement is a read-only snapshot of an account at the moment it was
// generated. Transactions appear in the order they were applied.
type Statement struct {
	Branch        string
	AccountNumber int64
	OwnerDocument string
	GeneratedAt   time.Time
	Balance       decimal.Decimal
	Transactions  []account.Transaction
}
