package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/andriawan/dompet/internal/model"
)

const spreadsheetMLHeader = `<?xml version="1.0" encoding="UTF-8"?>
<?mso-application progid="Excel.Sheet"?>
<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"
 xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
<Worksheet ss:Name="Transaksi">
<Table>
<Row>
<Cell><Data ss:Type="String">Tanggal</Data></Cell>
<Cell><Data ss:Type="String">Deskripsi</Data></Cell>
<Cell><Data ss:Type="String">Kategori</Data></Cell>
<Cell><Data ss:Type="String">Tipe</Data></Cell>
<Cell><Data ss:Type="String">Nominal</Data></Cell>
</Row>`

const spreadsheetMLFooter = `
</Table>
</Worksheet>
</Workbook>`

// WriteSpreadsheetML writes the collection as a minimal SpreadsheetML
// workbook, the format conventionally saved with an .xls extension. The
// import pipeline reads this same dialect back.
func WriteSpreadsheetML(w io.Writer, txns []model.Transaction) error {
	var b strings.Builder
	b.WriteString(spreadsheetMLHeader)

	for _, t := range txns {
		fmt.Fprintf(&b, `
<Row>
<Cell><Data ss:Type="String">%s</Data></Cell>
<Cell><Data ss:Type="String">%s</Data></Cell>
<Cell><Data ss:Type="String">%s</Data></Cell>
<Cell><Data ss:Type="String">%s</Data></Cell>
<Cell><Data ss:Type="Number">%d</Data></Cell>
</Row>`,
			escapeXML(t.Date),
			escapeXML(t.Description),
			escapeXML(t.Category),
			TypeLabel(t.Type),
			t.Amount)
	}

	b.WriteString(spreadsheetMLFooter)
	_, err := io.WriteString(w, b.String())
	return err
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
