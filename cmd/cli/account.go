package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts and their status",
}

var accountOpenCmd = &cobra.Command{
	Use:   "open <holder-id>",
	Short: "Open an account for a holder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		holderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		account, err := accountSvc.Open(cmd.Context(), holderID)
		if err != nil {
			return err
		}
		printOK("Account created with success!")
		printAccount(account)
		return nil
	},
}

var accountGetCmd = &cobra.Command{
	Use:   "get <account-id>",
	Short: "Show an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		account, err := accountSvc.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		printAccount(account)
		return nil
	},
}

var accountBlockCmd = &cobra.Command{
	Use:   "block <account-id>",
	Short: "Block an account",
	Args:  cobra.ExactArgs(1),
	RunE:  statusCommand(func(ctx context.Context, id int64) (*domain.Account, error) { return accountSvc.Block(ctx, id) }, "Account blocked."),
}

var accountReactivateCmd = &cobra.Command{
	Use:   "reactivate <account-id>",
	Short: "Reactivate a blocked account",
	Args:  cobra.ExactArgs(1),
	RunE:  statusCommand(func(ctx context.Context, id int64) (*domain.Account, error) { return accountSvc.Reactivate(ctx, id) }, "Account reactivated."),
}

var accountCloseCmd = &cobra.Command{
	Use:   "close <account-id>",
	Short: "Close an account permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  statusCommand(func(ctx context.Context, id int64) (*domain.Account, error) { return accountSvc.Close(ctx, id) }, "Account closed."),
}

func statusCommand(
	transition func(ctx context.Context, id int64) (*domain.Account, error),
	message string,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		account, err := transition(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOK(message)
		printAccount(account)
		return nil
	}
}

func printAccount(a *domain.Account) {
	printField("account_id", a.ID)
	printField("holder_id", a.HolderID)
	printField("balance", a.Balance.StringFixed(2))
	printField("status", a.Status.String())
}

func init() {
	accountCmd.AddCommand(accountOpenCmd)
	accountCmd.AddCommand(accountGetCmd)
	accountCmd.AddCommand(accountBlockCmd)
	accountCmd.AddCommand(accountReactivateCmd)
	accountCmd.AddCommand(accountCloseCmd)
}
