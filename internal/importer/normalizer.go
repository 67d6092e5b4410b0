// Package importer turns spreadsheet-like files into validated
// transaction batches: extension dispatch, row extraction, per-row
// normalization and a staged commit into the ledger.
package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andriawan/dompet/internal/model"
)

// Column order of an import row.
const (
	colDate = iota
	colDescription
	colCategory
	colType
	colAmount
	rowWidth
)

// excelEpochOffset is the number of days between the spreadsheet date
// serial epoch and 1970-01-01. Carried over verbatim from the data
// formats this importer has to accept.
const excelEpochOffset = 25569

var nonDigits = regexp.MustCompile(`[^\d]`)

// incomeKeywords classify a free-text type label as income when any of
// them occurs as a substring. Note "masuk" also matches longer words
// such as "termasuk"; that behavior is intentional and kept.
var incomeKeywords = []string{"pemasukan", "income", "masuk"}

// textDateLayouts are tried in order for textual date cells.
var textDateLayouts = []string{
	model.DateLayout,
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// NormalizeRow maps one raw row onto a transaction record. It reports
// false when the row is too short or fails the validation gate; no
// partial records are ever returned. Every accepted row receives a
// freshly generated id regardless of any id the source carried.
func NormalizeRow(cells []string) (model.Transaction, bool) {
	if len(cells) < rowWidth {
		return model.Transaction{}, false
	}

	description := strings.TrimSpace(cells[colDescription])
	description = strings.TrimSuffix(strings.TrimPrefix(description, `"`), `"`)
	description = strings.TrimSpace(description)

	category := strings.TrimSpace(cells[colCategory])
	if category == "" {
		category = model.DefaultCategoryLabel
	}

	amount := parseAmount(cells[colAmount])
	date := parseDate(cells[colDate])
	txnType := inferType(cells[colType])

	// Validation gate: drop the row, never emit a partial record.
	if date == "" || description == "" || amount <= 0 {
		return model.Transaction{}, false
	}

	return model.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		Category:    category,
		Type:        txnType,
		Amount:      amount,
	}, true
}

// parseAmount strips every non-digit character and parses the rest.
// Unparsable input yields 0, which the validation gate rejects.
func parseAmount(cell string) int64 {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(cell), "")
	if digits == "" {
		return 0
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return amount
}

// parseDate handles three shapes: a bare integer is a spreadsheet date
// serial, textual dates are parsed against known layouts, and anything
// else is kept verbatim as a permissive fallback.
func parseDate(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}

	if serial, err := strconv.ParseInt(cell, 10, 64); err == nil {
		seconds := (serial - excelEpochOffset) * 86400
		return time.Unix(seconds, 0).UTC().Format(model.DateLayout)
	}

	for _, layout := range textDateLayouts {
		if parsed, err := time.Parse(layout, cell); err == nil {
			return parsed.Format(model.DateLayout)
		}
	}

	// Unparsable text survives as-is; it is not re-validated.
	return cell
}

func inferType(cell string) model.TransactionType {
	label := strings.ToLower(strings.TrimSpace(cell))
	for _, keyword := range incomeKeywords {
		if strings.Contains(label, keyword) {
			return model.TypeIncome
		}
	}
	return model.TypeExpense
}
