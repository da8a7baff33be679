package main

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Move money and inspect the ledger",
}

var depositCmd = &cobra.Command{
	Use:   "deposit <account-id> <value>",
	Short: "Deposit into an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, value, err := parseOperation(args)
		if err != nil {
			return err
		}
		tx, err := transactionSvc.Deposit(cmd.Context(), accountID, value)
		if err != nil {
			return err
		}
		printOK("Deposit made successfully!")
		printTransaction(tx)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <account-id> <value>",
	Short: "Withdraw from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, value, err := parseOperation(args)
		if err != nil {
			return err
		}
		tx, err := transactionSvc.Withdraw(cmd.Context(), accountID, value)
		if err != nil {
			return err
		}
		printOK("Withdraw made successfully!")
		printTransaction(tx)
		return nil
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <origin-account-id> <destination-account-id> <value>",
	Short: "Transfer between two accounts",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		originID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		destinationID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		value, err := decimal.NewFromString(args[2])
		if err != nil {
			return err
		}
		tx, err := transactionSvc.Transfer(cmd.Context(), originID, destinationID, value)
		if err != nil {
			return err
		}
		printOK("Transfer completed with success.")
		printTransaction(tx)
		return nil
	},
}

var transactionGetCmd = &cobra.Command{
	Use:   "get <transaction-id>",
	Short: "Show a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := transactionSvc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printTransaction(tx)
		return nil
	},
}

func parseOperation(args []string) (int64, decimal.Decimal, error) {
	accountID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, decimal.Zero, err
	}
	value, err := decimal.NewFromString(args[1])
	if err != nil {
		return 0, decimal.Zero, err
	}
	return accountID, value, nil
}

func printTransaction(t *domain.Transaction) {
	printField("transaction_id", t.ID)
	printField("type", string(t.Type))
	printField("value", t.Value.StringFixed(2))
	printField("date", t.Date.Format("2006-01-02T15:04:05"))
	printField("origin_account", t.OriginAccount)
	if t.DestinationAccount != nil {
		printField("destination_account", *t.DestinationAccount)
	}
}

func init() {
	transactionCmd.AddCommand(depositCmd)
	transactionCmd.AddCommand(withdrawCmd)
	transactionCmd.AddCommand(transferCmd)
	transactionCmd.AddCommand(transactionGetCmd)
}
