package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/model"
)

func init() {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a single income or expense transaction.

Examples:
  # Record lunch
  dompet add --type expense --amount 50000 --category food --description "Nasi goreng"

  # Record salary for a specific date
  dompet add --type income --amount 7500000 --category salary --date 2024-01-25`,
		RunE: runAdd,
	}

	addCmd.Flags().StringP("type", "t", "expense", "transaction type (income, expense)")
	addCmd.Flags().Int64P("amount", "a", 0, "amount in whole rupiah")
	addCmd.Flags().StringP("category", "c", "", "category id")
	addCmd.Flags().StringP("description", "m", "", "free-text description")
	addCmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("time", "", "clock time (HH:MM, default now)")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	typeValue, _ := cmd.Flags().GetString("type")
	amount, _ := cmd.Flags().GetInt64("amount")
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")
	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")

	txnType, err := parseType(typeValue)
	if err != nil {
		return err
	}
	if date == "" {
		date = today()
	}
	if clock == "" {
		clock = nowClock()
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txn, err := store.Add(ctx, model.Transaction{
		Date:        date,
		Time:        clock,
		Description: description,
		Category:    category,
		Type:        txnType,
		Amount:      amount,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s) — id %s",
		cli.FormatIDR(txn.Amount),
		model.LookupCategory(txn.Type, txn.Category).Name,
		txn.Type,
		txn.ID)))
	return nil
}
