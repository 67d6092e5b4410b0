package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/model"
	"github.com/andriawan/dompet/internal/report"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Long: `List transactions with optional search and filters.

Examples:
  # Everything, newest first
  dompet list

  # Only expenses in the food category
  dompet list --type expense --category food

  # Search descriptions and category names
  dompet list --search kopi`,
		RunE: runList,
	}

	listCmd.Flags().StringP("search", "s", "", "match description or category name")
	listCmd.Flags().StringP("type", "t", "", "filter by type (income, expense)")
	listCmd.Flags().StringP("category", "c", "", "filter by category id")
	listCmd.Flags().IntP("limit", "n", 0, "show at most n transactions (0 = all)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	search, _ := cmd.Flags().GetString("search")
	typeValue, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	filter := report.Filter{Search: search, Category: category}
	if typeValue != "" {
		txnType, err := parseType(typeValue)
		if err != nil {
			return err
		}
		filter.Type = txnType
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txns := report.Apply(store.All(), filter)
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}

	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Belum ada transaksi"))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d transaksi", len(txns))))
	for _, txn := range txns {
		category := model.LookupCategory(txn.Type, txn.Category)
		fmt.Printf("%s  %-12s %-22s %-14s %s\n",
			cli.SubtleStyle.Render(shortID(txn.ID)),
			cli.FormatDate(txn.Date),
			truncate(txn.DisplayDescription(), 22),
			category.Name,
			cli.FormatSigned(txn.Type, txn.Amount))
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
