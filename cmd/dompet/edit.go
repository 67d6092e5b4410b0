package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/common"
)

func init() {
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an existing transaction",
		Long: `Update fields of an existing transaction. Only the flags you pass
change; everything else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	editCmd.Flags().StringP("type", "t", "", "transaction type (income, expense)")
	editCmd.Flags().Int64P("amount", "a", 0, "amount in whole rupiah")
	editCmd.Flags().StringP("category", "c", "", "category id")
	editCmd.Flags().StringP("description", "m", "", "free-text description")
	editCmd.Flags().String("date", "", "transaction date (YYYY-MM-DD)")
	editCmd.Flags().String("time", "", "clock time (HH:MM)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txn, err := store.Get(args[0])
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Transaksi %s tidak ditemukan", args[0]), err)
	}

	if cmd.Flags().Changed("type") {
		typeValue, _ := cmd.Flags().GetString("type")
		txn.Type, err = parseType(typeValue)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("amount") {
		txn.Amount, _ = cmd.Flags().GetInt64("amount")
	}
	if cmd.Flags().Changed("category") {
		txn.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("description") {
		txn.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("date") {
		txn.Date, _ = cmd.Flags().GetString("date")
	}
	if cmd.Flags().Changed("time") {
		txn.Time, _ = cmd.Flags().GetString("time")
	}

	updated, err := store.Update(ctx, args[0], txn)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s — %s %s",
		shortID(updated.ID),
		cli.FormatIDR(updated.Amount),
		updated.Type)))
	return nil
}
