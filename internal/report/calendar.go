package report

import (
	"fmt"
	"time"

	"github.com/andriawan/dompet/internal/model"
)

// DayActivity marks which days of a month carry income or expense
// records, keyed by day of month.
type DayActivity struct {
	HasIncome  bool
	HasExpense bool
}

// MonthActivity scans the snapshot for one calendar month and reports
// per-day activity markers for the calendar view.
func MonthActivity(txns []model.Transaction, year int, month time.Month) map[int]DayActivity {
	activity := make(map[int]DayActivity)
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	for _, txn := range txns {
		if len(txn.Date) != 10 || txn.Date[:8] != prefix {
			continue
		}
		var day int
		if _, err := fmt.Sscanf(txn.Date[8:], "%d", &day); err != nil {
			continue
		}
		a := activity[day]
		if txn.Type == model.TypeIncome {
			a.HasIncome = true
		} else {
			a.HasExpense = true
		}
		activity[day] = a
	}
	return activity
}
