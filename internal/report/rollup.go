package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/andriawan/dompet/internal/model"
)

// Window is one time bucket of a period rollup, inclusive of both ends.
type Window struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether a calendar date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// Bucket is the aggregated result for one window.
type Bucket struct {
	Label   string
	Income  int64
	Expense int64
}

// PeriodRollup sums income and expense per window. Windows are returned
// in the order given, oldest to newest by convention; records with
// unparsable dates are skipped.
func PeriodRollup(txns []model.Transaction, windows []Window) []Bucket {
	buckets := make([]Bucket, len(windows))
	for i, w := range windows {
		buckets[i].Label = w.Label
	}

	for _, txn := range txns {
		date, err := time.Parse(model.DateLayout, txn.Date)
		if err != nil {
			continue
		}
		for i, w := range windows {
			if !w.Contains(date) {
				continue
			}
			if txn.Type == model.TypeIncome {
				buckets[i].Income += txn.Amount
			} else {
				buckets[i].Expense += txn.Amount
			}
		}
	}
	return buckets
}

// WeekWindows builds the last n weeks ending at the week containing
// now, oldest first. Weeks start on Sunday.
func WeekWindows(now time.Time, n int) []Window {
	windows := make([]Window, 0, n)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		start := day.AddDate(0, 0, -int(day.Weekday())-i*7)
		end := start.AddDate(0, 0, 6)
		windows = append(windows, Window{
			Label: fmt.Sprintf("%d/%d - %d/%d", start.Day(), int(start.Month()), end.Day(), int(end.Month())),
			Start: start,
			End:   end,
		})
	}
	return windows
}

var shortMonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthWindows builds the last n calendar months ending at the month
// containing now, oldest first.
func MonthWindows(now time.Time, n int) []Window {
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		windows = append(windows, Window{
			Label: shortMonthNames[int(start.Month())-1],
			Start: start,
			End:   end,
		})
	}
	return windows
}

// NoBestDay is the sentinel returned when a period has no records.
const NoBestDay = ""

// BestDay returns the date whose net (income - expense) is maximal.
// Ties go to the earliest date; an empty input yields the sentinel.
func BestDay(txns []model.Transaction) string {
	type dayTotal struct {
		income  int64
		expense int64
	}
	totals := make(map[string]*dayTotal)
	for _, txn := range txns {
		dt, ok := totals[txn.Date]
		if !ok {
			dt = &dayTotal{}
			totals[txn.Date] = dt
		}
		if txn.Type == model.TypeIncome {
			dt.income += txn.Amount
		} else {
			dt.expense += txn.Amount
		}
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	best := NoBestDay
	var bestNet int64
	for _, date := range dates {
		net := totals[date].income - totals[date].expense
		if best == NoBestDay || net > bestNet {
			best = date
			bestNet = net
		}
	}
	return best
}

// MonthSummary aggregates one calendar month.
type MonthSummary struct {
	Income       int64
	Expense      int64
	DailyAverage int64
	BestDay      string
}

// SummarizeMonth filters the snapshot to one month and derives its
// totals, the net daily average over the days in the month, and the
// best day.
func SummarizeMonth(txns []model.Transaction, year int, month time.Month) MonthSummary {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	window := Window{Start: start, End: end}

	var monthTxns []model.Transaction
	for _, txn := range txns {
		date, err := time.Parse(model.DateLayout, txn.Date)
		if err != nil {
			continue
		}
		if window.Contains(date) {
			monthTxns = append(monthTxns, txn)
		}
	}

	income := Totals(monthTxns, model.TypeIncome)
	expense := Totals(monthTxns, model.TypeExpense)
	daysInMonth := end.Day()

	return MonthSummary{
		Income:       income,
		Expense:      expense,
		DailyAverage: int64(math.Round(float64(income-expense) / float64(daysInMonth))),
		BestDay:      BestDay(monthTxns),
	}
}
