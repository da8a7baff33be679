package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CaueSilva/bank-account-api/infra"
	"github.com/CaueSilva/bank-account-api/infra/logging"
	infrarepo "github.com/CaueSilva/bank-account-api/infra/repository"
	"github.com/CaueSilva/bank-account-api/pkg/config"
	"github.com/CaueSilva/bank-account-api/pkg/service"
)

var (
	holderSvc      *service.HolderService
	accountSvc     *service.AccountService
	transactionSvc *service.TransactionService
)

var rootCmd = &cobra.Command{
	Use:   "bank-cli",
	Short: "Operator CLI for the bank account service",
	Long: `bank-cli manages holders, accounts and transactions directly against
the service database. It is meant for operators and local development, not
for end users.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(slog.Default())
		if err != nil {
			return err
		}
		logger := logging.New(cfg.Log)
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return err
		}
		uow := infrarepo.NewUoW(db)
		holderSvc = service.NewHolderService(uow, logger)
		accountSvc = service.NewAccountService(uow, logger)
		transactionSvc = service.NewTransactionService(uow, logger)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func printOK(format string, args ...any) {
	color.Green(format, args...)
}

func printField(name string, value any) {
	fmt.Printf("  %s: %v\n", color.CyanString(name), value)
}

func init() {
	rootCmd.AddCommand(holderCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(transactionCmd)
}
