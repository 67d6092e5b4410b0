package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriawan/dompet/internal/model"
)

func TestWeekWindows(t *testing.T) {
	// 2024-01-17 is a Wednesday; its week starts Sunday 2024-01-14.
	now := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)
	windows := WeekWindows(now, 4)

	require.Len(t, windows, 4)
	assert.Equal(t, "2023-12-24", windows[0].Start.Format(model.DateLayout), "oldest week first")
	assert.Equal(t, "2024-01-14", windows[3].Start.Format(model.DateLayout))
	assert.Equal(t, "2024-01-20", windows[3].End.Format(model.DateLayout))
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windows := MonthWindows(now, 6)

	require.Len(t, windows, 6)
	assert.Equal(t, "2023-10-01", windows[0].Start.Format(model.DateLayout))
	assert.Equal(t, "2024-03-01", windows[5].Start.Format(model.DateLayout))
	assert.Equal(t, "2024-03-31", windows[5].End.Format(model.DateLayout))
	assert.Equal(t, "Okt", windows[0].Label)
	assert.Equal(t, "Mar", windows[5].Label)
}

func TestPeriodRollup(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-05", Type: model.TypeIncome, Amount: 1000},
		{Date: "2024-01-20", Type: model.TypeExpense, Amount: 400},
		{Date: "2024-02-10", Type: model.TypeIncome, Amount: 2000},
		{Date: "not-a-date", Type: model.TypeIncome, Amount: 9999},
		{Date: "2023-11-01", Type: model.TypeExpense, Amount: 50}, // outside all windows
	}

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	buckets := PeriodRollup(txns, MonthWindows(now, 2))

	require.Len(t, buckets, 2)
	assert.Equal(t, int64(1000), buckets[0].Income)
	assert.Equal(t, int64(400), buckets[0].Expense)
	assert.Equal(t, int64(2000), buckets[1].Income)
	assert.Equal(t, int64(0), buckets[1].Expense)
}

func TestBestDay(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-10", Type: model.TypeIncome, Amount: 100},
		{Date: "2024-01-10", Type: model.TypeExpense, Amount: 150},
		{Date: "2024-01-12", Type: model.TypeIncome, Amount: 500},
		{Date: "2024-01-14", Type: model.TypeIncome, Amount: 300},
	}

	assert.Equal(t, "2024-01-12", BestDay(txns))
}

func TestBestDayTieAndSentinel(t *testing.T) {
	assert.Equal(t, NoBestDay, BestDay(nil), "no records yields the sentinel")

	tied := []model.Transaction{
		{Date: "2024-01-12", Type: model.TypeIncome, Amount: 500},
		{Date: "2024-01-10", Type: model.TypeIncome, Amount: 500},
	}
	assert.Equal(t, "2024-01-10", BestDay(tied), "ties go to the earliest date")
}

func TestSummarizeMonth(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-05", Type: model.TypeIncome, Amount: 3100000},
		{Date: "2024-01-20", Type: model.TypeExpense, Amount: 310000},
		{Date: "2024-02-01", Type: model.TypeIncome, Amount: 999999}, // other month
	}

	summary := SummarizeMonth(txns, 2024, time.January)

	assert.Equal(t, int64(3100000), summary.Income)
	assert.Equal(t, int64(310000), summary.Expense)
	// (3100000 - 310000) / 31 days = 90000
	assert.Equal(t, int64(90000), summary.DailyAverage)
	assert.Equal(t, "2024-01-05", summary.BestDay)
}

func TestMonthActivity(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-05", Type: model.TypeIncome, Amount: 100},
		{Date: "2024-01-05", Type: model.TypeExpense, Amount: 50},
		{Date: "2024-01-20", Type: model.TypeExpense, Amount: 50},
		{Date: "2024-02-05", Type: model.TypeIncome, Amount: 100},
	}

	activity := MonthActivity(txns, 2024, time.January)

	require.Len(t, activity, 2)
	assert.Equal(t, DayActivity{HasIncome: true, HasExpense: true}, activity[5])
	assert.Equal(t, DayActivity{HasExpense: true}, activity[20])
}

func TestApplyFilter(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", Date: "2024-01-10", Description: "Kopi pagi", Category: "food", Type: model.TypeExpense, Amount: 20000},
		{ID: "2", Date: "2024-01-12", Description: "Bensin", Category: "transport", Type: model.TypeExpense, Amount: 50000},
		{ID: "3", Date: "2024-01-15", Description: "Gaji bulanan", Category: "salary", Type: model.TypeIncome, Amount: 7000000},
	}

	byType := Apply(txns, Filter{Type: model.TypeExpense})
	require.Len(t, byType, 2)
	assert.Equal(t, "2", byType[0].ID, "newest first")

	bySearch := Apply(txns, Filter{Search: "kopi"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "1", bySearch[0].ID)

	// Search also matches the category display name.
	byCategoryName := Apply(txns, Filter{Search: "transportasi"})
	require.Len(t, byCategoryName, 1)
	assert.Equal(t, "2", byCategoryName[0].ID)

	byCategory := Apply(txns, Filter{Category: "salary"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "3", byCategory[0].ID)
}
