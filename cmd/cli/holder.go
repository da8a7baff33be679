package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var holderCmd = &cobra.Command{
	Use:   "holder",
	Short: "Manage account holders",
}

var holderCreateCmd = &cobra.Command{
	Use:   "create <name> <document>",
	Short: "Create a holder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		holder, err := holderSvc.Create(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printOK("Holder created with success!")
		printField("holder_id", holder.ID)
		printField("name", holder.Name)
		printField("document", holder.Document)
		return nil
	},
}

var holderGetCmd = &cobra.Command{
	Use:   "get <holder-id>",
	Short: "Show a holder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		holder, err := holderSvc.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		printField("holder_id", holder.ID)
		printField("name", holder.Name)
		printField("document", holder.Document)
		return nil
	},
}

var holderRenameCmd = &cobra.Command{
	Use:   "rename <holder-id> <name>",
	Short: "Rename a holder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		holder, err := holderSvc.UpdateName(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		printOK("Holder updated with success!")
		printField("holder_id", holder.ID)
		printField("name", holder.Name)
		return nil
	},
}

func init() {
	holderCmd.AddCommand(holderCreateCmd)
	holderCmd.AddCommand(holderGetCmd)
	holderCmd.AddCommand(holderRenameCmd)
}
