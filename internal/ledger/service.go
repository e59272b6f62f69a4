package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdebank/verdebank/internal/account"
	"github.com/verdebank/verdebank/internal/notification"
)

// DefaultWithdrawalsPerPeriod is the withdrawal allowance used when the
// configuration does not set one.
const DefaultWithdrawalsPerPeriod = 3

// Config carries the withdrawal rules the engine enforces.
type Config struct {
	// WithdrawalCap is the maximum amount a single withdrawal may move.
	// Zero or negative disables the cap.
	WithdrawalCap decimal.Decimal

	// WithdrawalsPerPeriod is how many withdrawals an account may make
	// within one period. Zero or negative falls back to
	// DefaultWithdrawalsPerPeriod.
	WithdrawalsPerPeriod int
}

// Service posts deposits and withdrawals against stored accounts and
// builds statements. A nil notifier disables receipts.
type Service struct {
	accounts account.Repository
	cfg      Config
	period   PeriodFunc
	notifier notification.Notifier
	now      func() time.Time
}

func NewService(accounts account.Repository, cfg Config, period PeriodFunc, notifier notification.Notifier) *Service {
	if cfg.WithdrawalsPerPeriod <= 0 {
		cfg.WithdrawalsPerPeriod = DefaultWithdrawalsPerPeriod
	}
	if period == nil {
		period = DailyPeriod
	}
	return &Service{
		accounts: accounts,
		cfg:      cfg,
		period:   period,
		notifier: notifier,
		now:      time.Now,
	}
}

// Deposit credits amount to the account. The amount must be positive.
func (s *Service) Deposit(ctx context.Context, number int64, amount decimal.Decimal) (account.Account, error) {
	if !amount.IsPositive() {
		return account.Account{}, ErrInvalidAmount
	}

	at := s.now().UTC()
	acc, err := s.accounts.Update(ctx, number, func(acc *account.Account) error {
		acc.Balance = acc.Balance.Add(amount)
		s.append(acc, account.Deposit, amount, at)
		return nil
	})
	if err != nil {
		return account.Account{}, err
	}

	s.notify(ctx, notification.KindDepositReceipt, acc, amount)
	return acc, nil
}

// Withdraw debits amount from the account after checking, in order,
// that the amount is positive, covered by the balance, within the
// per-withdrawal cap, and that the period's withdrawal allowance is
// not used up. Funds come first, so an oversized request reports
// insufficient funds no matter how many withdrawals were already made.
func (s *Service) Withdraw(ctx context.Context, number int64, amount decimal.Decimal) (account.Account, error) {
	if !amount.IsPositive() {
		return account.Account{}, ErrInvalidAmount
	}

	at := s.now().UTC()
	acc, err := s.accounts.Update(ctx, number, func(acc *account.Account) error {
		if amount.GreaterThan(acc.Balance) {
			return ErrInsufficientFunds
		}
		if s.cfg.WithdrawalCap.IsPositive() && amount.GreaterThan(s.cfg.WithdrawalCap) {
			return ErrWithdrawalCapExceeded
		}

		s.rollPeriod(acc, at)
		if acc.WithdrawalsUsed >= s.cfg.WithdrawalsPerPeriod {
			return ErrDailyLimitExceeded
		}

		acc.Balance = acc.Balance.Sub(amount)
		acc.WithdrawalsUsed++
		s.append(acc, account.Withdrawal, amount, at)
		return nil
	})
	if err != nil {
		return account.Account{}, err
	}

	s.notify(ctx, notification.KindWithdrawalReceipt, acc, amount)
	return acc, nil
}

// Statement returns a snapshot of the account's balance and full
// transaction history. It never mutates the account.
func (s *Service) Statement(ctx context.Context, number int64) (Statement, error) {
	acc, err := s.accounts.Get(ctx, number)
	if err != nil {
		return Statement{}, err
	}

	return Statement{
		Branch:        acc.Branch,
		AccountNumber: acc.Number,
		OwnerDocument: acc.OwnerDocument,
		GeneratedAt:   s.now().UTC(),
		Balance:       acc.Balance,
		Transactions:  acc.History,
	}, nil
}

// rollPeriod starts a fresh withdrawal allowance when at falls in a
// different period than the account's counter.
func (s *Service) rollPeriod(acc *account.Account, at time.Time) {
	key := s.period(at)
	if acc.PeriodKey != key {
		acc.PeriodKey = key
		acc.WithdrawalsUsed = 0
	}
}

func (s *Service) append(acc *account.Account, kind account.Kind, amount decimal.Decimal, at time.Time) {
	acc.History = append(acc.History, account.Transaction{
		ID:     uuid.NewString(),
		Kind:   kind,
		Amount: amount,
		Time:   at,
	})
}

// notify sends a receipt to the account holder. Receipts are best
// effort: a failed send never fails the movement it describes.
func (s *Service) notify(ctx context.Context, kind string, acc account.Account, amount decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        kind,
		Destination: acc.OwnerDocument,
		Body:        fmt.Sprintf("Movement of %s on account %d, balance %s", amount.String(), acc.Number, acc.Balance.String()),
	})
}
