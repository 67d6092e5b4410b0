package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/model"
	"github.com/andriawan/dompet/internal/report"
)

func init() {
	breakdownCmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show category breakdown with percentages",
		Long: `Group transactions of one type by category, largest first, with each
category's share of the total.`,
		RunE: runBreakdown,
	}

	breakdownCmd.Flags().StringP("type", "t", "expense", "transaction type (income, expense)")
	breakdownCmd.Flags().Int("top", 0, "show only the top n categories (0 = all)")

	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	typeValue, _ := cmd.Flags().GetString("type")
	top, _ := cmd.Flags().GetInt("top")

	txnType, err := parseType(typeValue)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	breakdown := report.CategoryBreakdown(store.All(), txnType)
	if top > 0 && len(breakdown) > top {
		breakdown = breakdown[:top]
	}

	if len(breakdown) == 0 {
		if txnType == model.TypeIncome {
			fmt.Println(cli.SubtleStyle.Render("Belum ada pemasukan"))
		} else {
			fmt.Println(cli.SubtleStyle.Render("Belum ada pengeluaran"))
		}
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s — %d kategori", typeValue, len(breakdown))))
	var total int64
	for _, row := range breakdown {
		category := model.LookupCategory(txnType, row.Category)
		bar := strings.Repeat("█", int(row.Percentage/5))
		fmt.Printf("%-14s %14s %5.1f%% %s\n",
			category.Name,
			cli.FormatIDR(row.Amount),
			row.Percentage,
			cli.SubtleStyle.Render(bar))
		total += row.Amount
	}
	fmt.Printf("%-14s %14s\n", cli.BoldStyle.Render("Total"), cli.BoldStyle.Render(cli.FormatIDR(total)))
	return nil
}
