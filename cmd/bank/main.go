package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/verdebank/verdebank/internal/account"
	"github.com/verdebank/verdebank/internal/cli"
	"github.com/verdebank/verdebank/internal/config"
	"github.com/verdebank/verdebank/internal/cpf"
	"github.com/verdebank/verdebank/internal/customer"
	"github.com/verdebank/verdebank/internal/ledger"
	"github.com/verdebank/verdebank/internal/logging"
	"github.com/verdebank/verdebank/internal/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	customers := customer.NewService(customer.NewMemoryRegistry(), cpf.Validator{})

	// The account service and the ledger engine share one repository,
	// so balances the engine moves are the balances the listings show.
	accountRepo := account.NewMemoryRepository()
	accounts := account.NewService(accountRepo, customers, cfg.Branch)
	engine := ledger.NewService(accountRepo, ledger.Config{
		WithdrawalCap:        cfg.WithdrawalCap,
		WithdrawalsPerPeriod: cfg.WithdrawalsPerPeriod,
	}, ledger.DailyPeriod, notification.NewLoggerNotifier(logger))

	app := cli.New(cfg, customers, accounts, engine, os.Stdin, os.Stdout, logger)

	logger.Info("bank ready",
		"branch", cfg.Branch,
		"withdrawal_cap", cfg.WithdrawalCap.String(),
		"withdrawals_per_period", cfg.WithdrawalsPerPeriod,
	)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session error", "error", err)
		os.Exit(1)
	}

	logger.Info("session ended")
}
