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
	dashboardCmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show totals, balance and today's activity",
		RunE:    runDashboard,
	}

	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txns := store.All()
	settings := store.Settings()

	balance := cli.FormatIDR(report.Balance(txns))
	if settings.BalanceHidden {
		balance = cli.MaskedBalance
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Saldo      %s\n", cli.BoldStyle.Render(balance))
	fmt.Fprintf(&b, "Pemasukan  %s\n", cli.IncomeStyle.Render(cli.FormatIDR(report.Totals(txns, model.TypeIncome))))
	fmt.Fprintf(&b, "Pengeluaran %s", cli.ExpenseStyle.Render(cli.FormatIDR(report.Totals(txns, model.TypeExpense))))
	fmt.Println(cli.RenderBox(cli.WalletIcon+" "+settings.Name, b.String()))

	todaySummary := report.Today(txns, today())
	b.Reset()
	fmt.Fprintf(&b, "Pemasukan  %s\n", cli.IncomeStyle.Render(cli.FormatIDR(todaySummary.Income)))
	fmt.Fprintf(&b, "Pengeluaran %s\n", cli.ExpenseStyle.Render(cli.FormatIDR(todaySummary.Expense)))
	fmt.Fprintf(&b, "Sisa       %s\n", cli.FormatIDR(todaySummary.Income-todaySummary.Expense))
	fmt.Fprintf(&b, "%d transaksi", todaySummary.Count)
	if settings.DailyTarget > 0 {
		fmt.Fprintf(&b, "\nTarget     %s", cli.FormatIDR(settings.DailyTarget))
		if todaySummary.Income >= settings.DailyTarget {
			fmt.Fprintf(&b, " %s", cli.FormatSuccess("tercapai"))
		}
	}
	fmt.Println(cli.RenderBox("Hari ini — "+cli.FormatDate(today()), b.String()))

	return nil
}
