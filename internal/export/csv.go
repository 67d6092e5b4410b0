// Package export generates the interchange formats: CSV, a minimal
// SpreadsheetML workbook, and the JSON backup payload (which restore
// consumes back).
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/andriawan/dompet/internal/model"
)

// CSV column headers, matching the import pipeline's expected order.
var csvHeaders = []string{"Tanggal", "Deskripsi", "Kategori", "Tipe", "Nominal"}

// TypeLabel renders a transaction type the way exports and imports
// spell it.
func TypeLabel(t model.TransactionType) string {
	if t == model.TypeIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

// WriteCSV writes the collection as UTF-8 CSV with a byte order marker.
// Only the description field is quoted; the other columns never contain
// commas.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(csvHeaders, ","))
	b.WriteByte('\n')

	for _, t := range txns {
		fmt.Fprintf(&b, "%s,\"%s\",%s,%s,%d\n",
			t.Date,
			t.Description,
			t.Category,
			TypeLabel(t.Type),
			t.Amount)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
