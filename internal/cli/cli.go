// Package cli drives the interactive terminal session: it renders the
// menu, reads operator input and hands each request to the customer,
// account and ledger services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/verdebank/verdebank/internal/account"
	"github.com/verdebank/verdebank/internal/config"
	"github.com/verdebank/verdebank/internal/cpf"
	"github.com/verdebank/verdebank/internal/customer"
	"github.com/verdebank/verdebank/internal/ledger"
	"github.com/verdebank/verdebank/internal/money"
)

const dateLayout = "02-01-2006"

// App wires the services behind a line-oriented menu loop.
type App struct {
	cfg       config.Config
	customers *customer.Service
	accounts  *account.Service
	engine    *ledger.Service
	in        *bufio.Scanner
	out       io.Writer
	logger    *slog.Logger
}

func New(cfg config.Config, customers *customer.Service, accounts *account.Service, engine *ledger.Service, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		cfg:       cfg,
		customers: customers,
		accounts:  accounts,
		engine:    engine,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    logger,
	}
}

// Run loops over the menu until the operator exits, input ends, or the
// context is canceled. Operation failures are reported and the menu is
// shown again; they never stop the loop.
func (a *App) Run(ctx context.Context) error {
	a.printf("Welcome to %s.\n", a.cfg.AppName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.printMenu()
		choice, ok := a.readLine()
		if !ok {
			return a.in.Err()
		}

		switch choice {
		case "1":
			a.deposit(ctx)
		case "2":
			a.withdraw(ctx)
		case "3":
			a.statement(ctx)
		case "4":
			a.createCustomer(ctx)
		case "5":
			a.openAccount(ctx)
		case "6":
			a.listAccounts(ctx)
		case "0":
			a.printf("Goodbye.\n")
			return nil
		default:
			a.printf("Unknown option.\n")
		}
	}
}

func (a *App) printMenu() {
	a.printf("\n=============== MENU ===============\n")
	a.printf(" 1  Deposit\n")
	a.printf(" 2  Withdraw\n")
	a.printf(" 3  Statement\n")
	a.printf(" 4  New customer\n")
	a.printf(" 5  New account\n")
	a.printf(" 6  List accounts\n")
	a.printf(" 0  Exit\n")
	a.printf("Choose an option: ")
}

func (a *App) deposit(ctx context.Context) {
	acc, ok := a.pickAccount(ctx)
	if !ok {
		return
	}
	amount, ok := a.promptAmount()
	if !ok {
		return
	}

	updated, err := a.engine.Deposit(ctx, acc.Number, amount)
	if err != nil {
		a.fail("deposit", err)
		return
	}

	a.logger.Info("deposit applied", "account", updated.Number, "amount", amount.String())
	a.printf("Deposit confirmed. Balance: %s.\n", money.FormatBRL(updated.Balance))
}

func (a *App) withdraw(ctx context.Context) {
	acc, ok := a.pickAccount(ctx)
	if !ok {
		return
	}
	amount, ok := a.promptAmount()
	if !ok {
		return
	}

	updated, err := a.engine.Withdraw(ctx, acc.Number, amount)
	if err != nil {
		a.fail("withdraw", err)
		return
	}

	a.logger.Info("withdrawal applied", "account", updated.Number, "amount", amount.String())
	a.printf("Withdrawal confirmed. Balance: %s.\n", money.FormatBRL(updated.Balance))
}

func (a *App) statement(ctx context.Context) {
	acc, ok := a.pickAccount(ctx)
	if !ok {
		return
	}

	st, err := a.engine.Statement(ctx, acc.Number)
	if err != nil {
		a.fail("statement", err)
		return
	}

	a.renderStatement(st)
	a.logger.Info("statement issued", "account", st.AccountNumber)
}

func (a *App) createCustomer(ctx context.Context) {
	document, ok := a.promptDocument()
	if !ok {
		return
	}
	a.printf("Full name: ")
	name, ok := a.readLine()
	if !ok {
		return
	}
	a.printf("Birth date (dd-mm-yyyy): ")
	rawDate, ok := a.readLine()
	if !ok {
		return
	}
	birth, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		a.printf("Invalid date, use dd-mm-yyyy.\n")
		return
	}
	a.printf("Address (street, number - district - city/state): ")
	address, ok := a.readLine()
	if !ok {
		return
	}

	created, err := a.customers.Create(ctx, customer.CreateInput{
		Document:  document,
		Name:      name,
		BirthDate: birth,
		Address:   address,
	})
	if err != nil {
		a.fail("create customer", err)
		return
	}

	a.logger.Info("customer registered", "document", created.Document)
	a.printf("Customer created.\n")
}

func (a *App) openAccount(ctx context.Context) {
	document, ok := a.promptDocument()
	if !ok {
		return
	}

	acc, err := a.accounts.Open(ctx, document)
	if err != nil {
		a.fail("open account", err)
		return
	}

	a.logger.Info("account opened", "account", acc.Number, "document", acc.OwnerDocument)
	a.printf("Account %d created at branch %s.\n", acc.Number, acc.Branch)
}

func (a *App) listAccounts(ctx context.Context) {
	accs, err := a.accounts.List(ctx)
	if err != nil {
		a.fail("list accounts", err)
		return
	}
	if len(accs) == 0 {
		a.printf("No accounts yet.\n")
		return
	}

	for _, acc := range accs {
		holder := acc.OwnerDocument
		if owner, err := a.customers.Find(ctx, acc.OwnerDocument); err == nil {
			holder = owner.Name
		}
		a.printf("%s\n", strings.Repeat("=", 43))
		a.printf("Branch:  %s\n", acc.Branch)
		a.printf("Account: %d\n", acc.Number)
		a.printf("Holder:  %s\n", holder)
		a.printf("Balance: %s\n", money.FormatBRL(acc.Balance))
	}
}

func (a *App) renderStatement(st ledger.Statement) {
	a.printf("================ STATEMENT ================\n")
	a.printf("Branch %s  Account %d\n", st.Branch, st.AccountNumber)
	if len(st.Transactions) == 0 {
		a.printf("No transactions recorded.\n")
	}
	for _, tx := range st.Transactions {
		a.printf("%-11s %12s  %s\n", tx.Kind, money.FormatBRL(tx.Amount), tx.Time.Format("2006-01-02 15:04:05"))
	}
	a.printf("-------------------------------------------\n")
	a.printf("Balance: %s\n", money.FormatBRL(st.Balance))
	a.printf("===========================================\n")
}

// pickAccount resolves the operator's CPF to one of the customer's
// accounts: an unknown document aborts with the customer error, no
// accounts aborts with a message, a single account is picked
// automatically, several prompt for a choice.
func (a *App) pickAccount(ctx context.Context) (account.Account, bool) {
	document, ok := a.promptDocument()
	if !ok {
		return account.Account{}, false
	}

	if _, err := a.customers.Find(ctx, document); err != nil {
		a.fail("account lookup", err)
		return account.Account{}, false
	}

	accs, err := a.accounts.ListByOwner(ctx, document)
	if err != nil {
		a.fail("account lookup", err)
		return account.Account{}, false
	}

	switch len(accs) {
	case 0:
		a.printf("No accounts for this document.\n")
		return account.Account{}, false
	case 1:
		return accs[0], true
	}

	a.printf("Accounts held by this customer:\n")
	for i, acc := range accs {
		a.printf("  %d) account %d, balance %s\n", i+1, acc.Number, money.FormatBRL(acc.Balance))
	}
	a.printf("Pick an account: ")
	line, ok := a.readLine()
	if !ok {
		return account.Account{}, false
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(accs) {
		a.printf("Invalid choice.\n")
		return account.Account{}, false
	}
	return accs[idx-1], true
}

func (a *App) promptDocument() (string, bool) {
	a.printf("Document (CPF): ")
	line, ok := a.readLine()
	if !ok {
		return "", false
	}
	return cpf.Normalize(line), true
}

func (a *App) promptAmount() (decimal.Decimal, bool) {
	a.printf("Amount: ")
	line, ok := a.readLine()
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, err := money.Parse(line)
	if err != nil {
		a.printf("Could not read the amount, use a number like 100,50.\n")
		return decimal.Decimal{}, false
	}
	return amount, true
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail logs the unabridged error and shows the operator a short reason.
func (a *App) fail(op string, err error) {
	a.logger.Warn(op+" failed", "error", err)
	a.printf("Operation failed: %s.\n", reason(err))
}

func reason(err error) string {
	switch {
	case errors.Is(err, customer.ErrInvalidDocument):
		return "the document is not a valid CPF"
	case errors.Is(err, customer.ErrDuplicateCustomer):
		return "a customer with this document already exists"
	case errors.Is(err, customer.ErrNotFound):
		return "no customer registered with this document"
	case errors.Is(err, account.ErrNotFound):
		return "account not found"
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "the amount must be positive"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "insufficient funds"
	case errors.Is(err, ledger.ErrWithdrawalCapExceeded):
		return "the amount exceeds the per-withdrawal cap"
	case errors.Is(err, ledger.ErrDailyLimitExceeded):
		return "the withdrawal limit for the period was reached"
	default:
		return err.Error()
	}
}
