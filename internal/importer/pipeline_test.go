package importer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/export"
	"github.com/andriawan/dompet/internal/ledger"
	"github.com/andriawan/dompet/internal/model"
	"github.com/andriawan/dompet/internal/storage"
)

const sampleCSV = "Tanggal,Deskripsi,Kategori,Tipe,Nominal\n" +
	"2024-01-15,Lunch,food,Pengeluaran,50000\n" +
	"2024-01-16,Gaji,salary,Pemasukan,7500000\n" +
	"2024-01-17,,food,Pengeluaran,10000\n" + // rejected: no description
	"2024-01-18,Snack,food,Pengeluaran,0\n" // rejected: zero amount

func newTestLedger(t *testing.T) *ledger.Store {
	t.Helper()
	store := ledger.NewStore(storage.NewMemoryKV())
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestPipeline_SelectRejectsUnsupported(t *testing.T) {
	p := NewPipeline()

	err := p.Select("statement.pdf")
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Equal(t, StateIdle, p.State())

	require.NoError(t, p.Select("statement.CSV"), "extension check is case-insensitive")
	assert.Equal(t, StateFileSelected, p.State())
}

func TestPipeline_ParseAndPreview(t *testing.T) {
	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(sampleCSV)))
	assert.Equal(t, StateParsed, p.State())
	assert.Equal(t, 2, p.Rejected())

	preview, total := p.Preview()
	assert.Equal(t, StatePreviewed, p.State())
	assert.Equal(t, 2, total)
	require.Len(t, preview, 2)
	assert.Equal(t, "Lunch", preview[0].Description)
	assert.Equal(t, model.TypeIncome, preview[1].Type)
}

func TestPipeline_PreviewCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("Tanggal,Deskripsi,Kategori,Tipe,Nominal\n")
	for i := 0; i < 8; i++ {
		b.WriteString("2024-01-15,Row,food,Pengeluaran,1000\n")
	}

	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(b.String())))

	preview, total := p.Preview()
	assert.Len(t, preview, PreviewSize)
	assert.Equal(t, 8, total)
}

func TestPipeline_ParseHeaderOnly(t *testing.T) {
	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))

	err := p.Parse([]byte("Tanggal,Deskripsi,Kategori,Tipe,Nominal\n"))
	require.ErrorIs(t, err, common.ErrExtraction)
	assert.Equal(t, StateIdle, p.State())
}

func TestPipeline_ParseAllRowsRejected(t *testing.T) {
	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))

	csv := "Tanggal,Deskripsi,Kategori,Tipe,Nominal\n" +
		",,food,Pengeluaran,0\n" +
		"2024-01-15,,food,Pengeluaran,100\n"
	err := p.Parse([]byte(csv))
	require.ErrorIs(t, err, common.ErrEmptyResult)
	assert.Equal(t, StateIdle, p.State())
}

func TestPipeline_ParseGarbage(t *testing.T) {
	p := NewPipeline()
	require.NoError(t, p.Select("data.xlsx"))

	err := p.Parse([]byte("this is not a workbook"))
	require.ErrorIs(t, err, common.ErrExtraction)
	assert.Equal(t, StateIdle, p.State())
}

func TestPipeline_CommitMerge(t *testing.T) {
	store := newTestLedger(t)
	ctx := context.Background()

	_, err := store.Add(ctx, model.Transaction{
		Date: "2024-01-01", Description: "Existing", Category: "food",
		Type: model.TypeExpense, Amount: 1000,
	})
	require.NoError(t, err)

	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(sampleCSV)))

	committed, err := p.Commit(ctx, store, CommitMerge)
	require.NoError(t, err)
	assert.Equal(t, 2, committed)
	assert.Equal(t, 3, store.Count(), "merge keeps existing records")
	assert.Equal(t, StateCommitted, p.State())
}

func TestPipeline_CommitReplace(t *testing.T) {
	store := newTestLedger(t)
	ctx := context.Background()

	_, err := store.Add(ctx, model.Transaction{
		Date: "2024-01-01", Description: "Existing", Category: "food",
		Type: model.TypeExpense, Amount: 1000,
	})
	require.NoError(t, err)

	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(sampleCSV)))

	committed, err := p.Commit(ctx, store, CommitReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, committed)
	assert.Equal(t, 2, store.Count(), "replace discards existing records")
}

func TestPipeline_CommitRequiresStagedBatch(t *testing.T) {
	store := newTestLedger(t)

	p := NewPipeline()
	_, err := p.Commit(context.Background(), store, CommitMerge)
	require.Error(t, err)
	assert.Equal(t, 0, store.Count(), "store is untouched when nothing is staged")
}

func TestPipeline_Cancel(t *testing.T) {
	store := newTestLedger(t)

	p := NewPipeline()
	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(sampleCSV)))
	p.Cancel()

	assert.Equal(t, StateIdle, p.State())
	_, err := p.Commit(context.Background(), store, CommitMerge)
	require.Error(t, err)
	assert.Equal(t, 0, store.Count())
}

func TestPipeline_ProgressCallback(t *testing.T) {
	var calls []int
	p := NewPipeline()
	p.Progress = func(done, total int) {
		assert.Equal(t, 4, total)
		calls = append(calls, done)
	}

	require.NoError(t, p.Select("data.csv"))
	require.NoError(t, p.Parse([]byte(sampleCSV)))
	assert.Equal(t, []int{1, 2, 3, 4}, calls)
}

func TestPipeline_RoundTripCSV(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: "2024-01-15", Description: "Makan, enak", Category: "food", Type: model.TypeExpense, Amount: 50000},
		{ID: "b", Date: "2024-01-16", Description: "Gaji", Category: "salary", Type: model.TypeIncome, Amount: 7500000},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, txns))

	p := NewPipeline()
	require.NoError(t, p.Select("export.csv"))
	require.NoError(t, p.Parse(buf.Bytes()))

	preview, total := p.Preview()
	require.Equal(t, 2, total)
	assert.Equal(t, "Makan, enak", preview[0].Description)
	assert.Equal(t, model.TypeExpense, preview[0].Type)
	assert.Equal(t, int64(50000), preview[0].Amount)
	assert.Equal(t, model.TypeIncome, preview[1].Type)
}

func TestPipeline_RoundTripSpreadsheetML(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: "2024-01-15", Description: "Beli <barang> & jasa", Category: "shopping", Type: model.TypeExpense, Amount: 125000},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteSpreadsheetML(&buf, txns))

	p := NewPipeline()
	require.NoError(t, p.Select("export.xls"))
	require.NoError(t, p.Parse(buf.Bytes()))

	preview, total := p.Preview()
	require.Equal(t, 1, total)
	assert.Equal(t, "2024-01-15", preview[0].Date)
	assert.Equal(t, "Beli <barang> & jasa", preview[0].Description)
	assert.Equal(t, "shopping", preview[0].Category)
	assert.Equal(t, int64(125000), preview[0].Amount)
}
