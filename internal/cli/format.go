package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/andriawan/dompet/internal/model"
)

// MaskedBalance replaces the balance when the user hides it.
const MaskedBalance = "••••••••"

// FormatIDR renders an integer rupiah amount with id-ID grouping,
// e.g. 1500000 -> "Rp 1.500.000". Amounts are whole rupiah; there is
// no fractional part.
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-Rp " + string(grouped)
	}
	return "Rp " + string(grouped)
}

// FormatSigned renders an amount with its direction sign and style.
func FormatSigned(t model.TransactionType, amount int64) string {
	if t == model.TypeIncome {
		return IncomeStyle.Render("+" + FormatIDR(amount))
	}
	return ExpenseStyle.Render("-" + FormatIDR(amount))
}

var indonesianMonths = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianShortMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatDate renders a YYYY-MM-DD date as "15 Jan 2024". Dates that do
// not parse are shown verbatim.
func FormatDate(dateStr string) string {
	date, err := time.Parse(model.DateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", date.Day(), indonesianShortMonths[int(date.Month())-1], date.Year())
}

// MonthName returns the full Indonesian month name.
func MonthName(month time.Month) string {
	return indonesianMonths[int(month)-1]
}
