package report

import (
	"math"
	"sort"

	"github.com/andriawan/dompet/internal/model"
)

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category   string
	Amount     int64
	Percentage float64
}

// CategoryBreakdown groups transactions of one type by category, sums
// their amounts and sorts descending by amount. Percentages are the
// share of the type total, rounded to one decimal; they are 0 when the
// type total is 0. An empty input yields an empty list.
func CategoryBreakdown(txns []model.Transaction, t model.TransactionType) []CategoryTotal {
	sums := make(map[string]int64)
	var order []string
	var total int64

	for _, txn := range txns {
		if txn.Type != t {
			continue
		}
		if _, seen := sums[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		sums[txn.Category] += txn.Amount
		total += txn.Amount
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		amount := sums[category]
		var pct float64
		if total > 0 {
			pct = roundPercent(float64(amount) / float64(total) * 100)
		}
		result = append(result, CategoryTotal{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	return result
}

// roundPercent rounds to one decimal place for display.
func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
