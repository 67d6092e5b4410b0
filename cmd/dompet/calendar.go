package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/model"
	"github.com/andriawan/dompet/internal/report"
)

func init() {
	calendarCmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month calendar with activity markers",
		Long: `Render a month grid marking days with income or expense activity,
followed by the month summary. Pass --day to inspect a single date.`,
		RunE: runCalendar,
	}

	calendarCmd.Flags().String("month", "", "month to show (YYYY-MM, default current)")
	calendarCmd.Flags().String("day", "", "show one day's transactions (YYYY-MM-DD)")

	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txns := store.All()

	if day, _ := cmd.Flags().GetString("day"); day != "" {
		return showDay(txns, day)
	}

	monthValue, _ := cmd.Flags().GetString("month")
	now := time.Now()
	year, month := now.Year(), now.Month()
	if monthValue != "" {
		parsed, err := time.Parse("2006-01", monthValue)
		if err != nil {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", monthValue)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	renderMonthGrid(txns, year, month)

	summary := report.SummarizeMonth(txns, year, month)
	var b strings.Builder
	fmt.Fprintf(&b, "Pemasukan    %s\n", cli.IncomeStyle.Render(cli.FormatIDR(summary.Income)))
	fmt.Fprintf(&b, "Pengeluaran  %s\n", cli.ExpenseStyle.Render(cli.FormatIDR(summary.Expense)))
	fmt.Fprintf(&b, "Rata-rata    %s/hari\n", cli.FormatIDR(summary.DailyAverage))
	bestDay := "-"
	if summary.BestDay != report.NoBestDay {
		bestDay = cli.FormatDate(summary.BestDay)
	}
	fmt.Fprintf(&b, "Hari terbaik %s", bestDay)
	fmt.Println(cli.RenderBox("Ringkasan bulan", b.String()))

	return nil
}

var calendarDayNames = []string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// renderMonthGrid prints the calendar. Days with income get a +, days
// with expense a -, and both get ±.
func renderMonthGrid(txns []model.Transaction, year int, month time.Month) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s %d", cli.CalendarIcon, cli.MonthName(month), year)))
	fmt.Println(cli.TableHeaderStyle.Render(strings.Join(calendarDayNames, " ")))

	activity := report.MonthActivity(txns, year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var line strings.Builder
	line.WriteString(strings.Repeat("    ", int(first.Weekday())))

	for day := 1; day <= daysInMonth; day++ {
		marker := " "
		switch a := activity[day]; {
		case a.HasIncome && a.HasExpense:
			marker = "±"
		case a.HasIncome:
			marker = cli.IncomeStyle.Render("+")
		case a.HasExpense:
			marker = cli.ExpenseStyle.Render("-")
		}
		line.WriteString(fmt.Sprintf("%2d%s ", day, marker))

		if (int(first.Weekday())+day)%7 == 0 {
			fmt.Println(line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Println(line.String())
	}
}

func showDay(txns []model.Transaction, day string) error {
	summary := report.Daily(txns, day)

	fmt.Println(cli.FormatTitle(cli.CalendarIcon + " " + cli.FormatDate(day)))
	if len(summary.Transactions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Tidak ada transaksi"))
		return nil
	}

	for _, txn := range summary.Transactions {
		fmt.Printf("%-6s %-24s %s\n",
			txn.Time,
			truncate(txn.DisplayDescription(), 24),
			cli.FormatSigned(txn.Type, txn.Amount))
	}
	fmt.Printf("\nPemasukan %s  Pengeluaran %s  Sisa %s\n",
		cli.IncomeStyle.Render(cli.FormatIDR(summary.Income)),
		cli.ExpenseStyle.Render(cli.FormatIDR(summary.Expense)),
		cli.FormatIDR(summary.Net))
	return nil
}
