// Package report computes derived views over a transaction snapshot:
// totals, category breakdowns, day summaries and period rollups. All
// functions are pure; none mutate their input.
package report

import (
	"github.com/andriawan/dompet/internal/model"
)

// Totals sums the amounts of all transactions matching the given type.
func Totals(txns []model.Transaction, t model.TransactionType) int64 {
	var sum int64
	for _, txn := range txns {
		if txn.Type == t {
			sum += txn.Amount
		}
	}
	return sum
}

// Balance is total income minus total expense.
func Balance(txns []model.Transaction) int64 {
	return Totals(txns, model.TypeIncome) - Totals(txns, model.TypeExpense)
}

// TodaySummary aggregates the transactions of a single day.
type TodaySummary struct {
	Income  int64
	Expense int64
	Count   int
}

// Today restricts the snapshot to records dated today and sums them.
func Today(txns []model.Transaction, today string) TodaySummary {
	var s TodaySummary
	for _, txn := range txns {
		if txn.Date != today {
			continue
		}
		if txn.Type == model.TypeIncome {
			s.Income += txn.Amount
		} else {
			s.Expense += txn.Amount
		}
		s.Count++
	}
	return s
}

// DailySummary is one calendar day with its transactions and totals.
type DailySummary struct {
	Date         string
	Income       int64
	Expense      int64
	Net          int64
	Transactions []model.Transaction
}

// Daily collects all records for one date plus derived totals.
func Daily(txns []model.Transaction, date string) DailySummary {
	s := DailySummary{Date: date}
	for _, txn := range txns {
		if txn.Date != date {
			continue
		}
		if txn.Type == model.TypeIncome {
			s.Income += txn.Amount
		} else {
			s.Expense += txn.Amount
		}
		s.Transactions = append(s.Transactions, txn)
	}
	s.Net = s.Income - s.Expense
	model.SortNewestFirst(s.Transactions)
	return s
}
