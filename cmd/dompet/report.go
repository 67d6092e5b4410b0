package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/report"
)

// Report windows: the last 4 weeks or the last 6 months.
const (
	weeklyBuckets  = 4
	monthlyBuckets = 6
)

func init() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Weekly and monthly rollup reports",
	}

	weeklyCmd := &cobra.Command{
		Use:   "weekly",
		Short: fmt.Sprintf("Income and expense for the last %d weeks", weeklyBuckets),
		RunE:  runWeeklyReport,
	}

	monthlyCmd := &cobra.Command{
		Use:   "monthly",
		Short: fmt.Sprintf("Income and expense for the last %d months", monthlyBuckets),
		RunE:  runMonthlyReport,
	}

	reportCmd.AddCommand(weeklyCmd)
	reportCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(reportCmd)
}

func runWeeklyReport(cmd *cobra.Command, _ []string) error {
	return runRollup(cmd, report.WeekWindows(time.Now(), weeklyBuckets), "Laporan mingguan")
}

func runMonthlyReport(cmd *cobra.Command, _ []string) error {
	return runRollup(cmd, report.MonthWindows(time.Now(), monthlyBuckets), "Laporan bulanan")
}

func runRollup(cmd *cobra.Command, windows []report.Window, title string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	buckets := report.PeriodRollup(store.All(), windows)

	var max int64 = 1
	for _, b := range buckets {
		if b.Income > max {
			max = b.Income
		}
		if b.Expense > max {
			max = b.Expense
		}
	}

	fmt.Println(cli.FormatTitle(cli.ChartIcon + " " + title))
	for _, b := range buckets {
		fmt.Printf("%-14s %s %s\n", b.Label,
			cli.IncomeStyle.Render(bar(b.Income, max)),
			cli.IncomeStyle.Render(cli.FormatIDR(b.Income)))
		fmt.Printf("%-14s %s %s\n", "",
			cli.ExpenseStyle.Render(bar(b.Expense, max)),
			cli.ExpenseStyle.Render(cli.FormatIDR(b.Expense)))
	}
	return nil
}

// bar scales an amount to a 20-cell bar against the period maximum.
func bar(amount, max int64) string {
	width := int(amount * 20 / max)
	return strings.Repeat("█", width) + strings.Repeat("░", 20-width)
}
