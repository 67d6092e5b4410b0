package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowExtractor decodes raw file bytes into rows of cell values. The
// first row is expected to be a header and is skipped by the pipeline.
type RowExtractor func(data []byte) ([][]string, error)

// ExtractorFor picks the extractor for a filename by extension. The
// second return is false for unsupported formats.
func ExtractorFor(filename string) (RowExtractor, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ExtractCSV, true
	case ".xlsx":
		return ExtractXLSX, true
	case ".xls":
		return ExtractSpreadsheetML, true
	default:
		return nil, false
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractCSV splits CSV text into rows, honoring quoted commas. A
// leading UTF-8 byte order marker is tolerated since our own CSV export
// writes one.
func ExtractCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// ExtractXLSX reads the first sheet of an xlsx workbook. Raw cell
// values are requested so date cells arrive as their serial numbers,
// which the normalizer knows how to interpret.
func ExtractXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// SpreadsheetML document shape, the XML dialect our own .xls export
// produces.
type spreadsheetML struct {
	XMLName    xml.Name `xml:"Workbook"`
	Worksheets []struct {
		Rows []struct {
			Cells []struct {
				Data string `xml:"Data"`
			} `xml:"Cell"`
		} `xml:"Table>Row"`
	} `xml:"Worksheet"`
}

// ExtractSpreadsheetML reads rows from a SpreadsheetML (.xls) document.
func ExtractSpreadsheetML(data []byte) ([][]string, error) {
	var workbook spreadsheetML
	if err := xml.Unmarshal(data, &workbook); err != nil {
		return nil, fmt.Errorf("failed to parse spreadsheet xml: %w", err)
	}
	if len(workbook.Worksheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	var rows [][]string
	for _, row := range workbook.Worksheets[0].Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.Data)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
