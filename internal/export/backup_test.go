package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/model"
)

func TestBackupRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Date: "2024-01-15", Description: "Lunch", Category: "food", Type: model.TypeExpense, Amount: 50000, CreatedAt: "2024-01-15T12:00:00Z"},
		{ID: "t2", Date: "2024-01-16", Description: "Gaji", Category: "salary", Type: model.TypeIncome, Amount: 7500000},
	}
	settings := model.DefaultSettings()
	settings.Name = "Andri"
	settings.DailyTarget = 150000

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, txns, settings))

	backup, err := ParseBackup(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, txns, backup.Transactions)
	require.NotNil(t, backup.Settings)
	assert.Equal(t, settings, *backup.Settings)
	assert.NotEmpty(t, backup.BackupDate)
}

func TestParseBackupRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"missing transactions field", `{"settings": {"name": "X"}}`},
		{"null transactions", `{"transactions": null}`},
		{"wrong element shape", `{"transactions": [{"amount": "not a number"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBackup([]byte(tt.payload))
			require.ErrorIs(t, err, common.ErrRestorePayload)
		})
	}
}

func TestParseBackupEmptyCollection(t *testing.T) {
	backup, err := ParseBackup([]byte(`{"transactions": []}`))
	require.NoError(t, err)
	assert.Empty(t, backup.Transactions)
	assert.Nil(t, backup.Settings)
}

func TestWriteCSV(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-15", Description: "Makan siang", Category: "food", Type: model.TypeExpense, Amount: 50000},
		{Date: "2024-01-16", Description: "Gaji", Category: "salary", Type: model.TypeIncome, Amount: 7500000},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txns))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "starts with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Tanggal,Deskripsi,Kategori,Tipe,Nominal", lines[0])
	assert.Equal(t, `2024-01-15,"Makan siang",food,Pengeluaran,50000`, lines[1])
	assert.Equal(t, `2024-01-16,"Gaji",salary,Pemasukan,7500000`, lines[2])
}

func TestWriteSpreadsheetML(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-15", Description: "Beli <barang> & jasa", Category: "shopping", Type: model.TypeExpense, Amount: 125000},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSpreadsheetML(&buf, txns))

	out := buf.String()
	assert.Contains(t, out, `<?mso-application progid="Excel.Sheet"?>`)
	assert.Contains(t, out, `<Worksheet ss:Name="Transaksi">`)
	assert.Contains(t, out, "Beli &lt;barang&gt; &amp; jasa", "cell text is XML-escaped")
	assert.Contains(t, out, `<Cell><Data ss:Type="Number">125000</Data></Cell>`)
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Pemasukan", TypeLabel(model.TypeIncome))
	assert.Equal(t, "Pengeluaran", TypeLabel(model.TypeExpense))
}
