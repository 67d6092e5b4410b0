package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/model"
)

// State is the import pipeline's position in its lifecycle.
type State int

// Pipeline states, in order of progression.
const (
	StateIdle State = iota
	StateFileSelected
	StateParsed
	StatePreviewed
	StateCommitted
)

// CommitMode decides what happens to the existing collection when a
// batch is committed.
type CommitMode string

const (
	// CommitReplace discards the existing collection.
	CommitReplace CommitMode = "replace"
	// CommitMerge appends the batch to the existing collection.
	CommitMerge CommitMode = "merge"
)

// PreviewSize is how many staged records a preview exposes.
const PreviewSize = 5

// Committer is the subset of the transaction store the pipeline needs
// to finalize a batch.
type Committer interface {
	ReplaceAll(ctx context.Context, records []model.Transaction) error
	MergeAll(ctx context.Context, records []model.Transaction) error
}

// Pipeline stages a single file import. Each instance is single-use;
// selecting a new file means starting a fresh pipeline.
type Pipeline struct {
	// Progress, when set, is called once per data row during parsing.
	Progress func(done, total int)

	state    State
	filename string
	extract  RowExtractor
	batch    []model.Transaction
	rejected int
}

// NewPipeline returns a pipeline in the Idle state.
func NewPipeline() *Pipeline {
	return &Pipeline{state: StateIdle}
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	return p.state
}

// Select validates the file extension and arms the pipeline. Anything
// outside csv/xls/xlsx is rejected before any parsing attempt.
func (p *Pipeline) Select(filename string) error {
	extract, ok := ExtractorFor(filename)
	if !ok {
		p.Cancel()
		return fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filename)
	}

	p.filename = filename
	p.extract = extract
	p.state = StateFileSelected
	return nil
}

// Parse extracts rows from the raw file bytes and normalizes them into
// a staged batch. The header row is always skipped; rejected rows are
// dropped silently and only counted. On any failure the pipeline resets
// to Idle.
func (p *Pipeline) Parse(data []byte) error {
	if p.state != StateFileSelected {
		return fmt.Errorf("no file selected")
	}

	rows, err := p.extract(data)
	if err != nil {
		p.Cancel()
		return fmt.Errorf("%w: %v", common.ErrExtraction, err)
	}

	// Header only (or nothing at all) short-circuits before
	// normalization.
	if len(rows) < 2 {
		p.Cancel()
		return fmt.Errorf("%w: %s", common.ErrExtraction, p.filename)
	}

	dataRows := rows[1:]
	p.batch = nil
	p.rejected = 0
	for i, row := range dataRows {
		if txn, ok := NormalizeRow(row); ok {
			p.batch = append(p.batch, txn)
		} else {
			p.rejected++
		}
		if p.Progress != nil {
			p.Progress(i+1, len(dataRows))
		}
	}

	if len(p.batch) == 0 {
		filename := p.filename
		p.Cancel()
		return fmt.Errorf("%w: %s", common.ErrEmptyResult, filename)
	}

	slog.Debug("parsed import batch",
		"file", p.filename,
		"accepted", len(p.batch),
		"rejected", p.rejected)

	p.state = StateParsed
	return nil
}

// Preview exposes the first few staged records plus the total accepted
// count without touching the store.
func (p *Pipeline) Preview() ([]model.Transaction, int) {
	if p.state != StateParsed && p.state != StatePreviewed {
		return nil, 0
	}
	p.state = StatePreviewed

	n := len(p.batch)
	if n > PreviewSize {
		n = PreviewSize
	}
	preview := make([]model.Transaction, n)
	copy(preview, p.batch[:n])
	return preview, len(p.batch)
}

// Rejected returns how many rows failed normalization.
func (p *Pipeline) Rejected() int {
	return p.rejected
}

// Commit hands the staged batch to the store using the caller's chosen
// mode. The mode is never inferred here.
func (p *Pipeline) Commit(ctx context.Context, store Committer, mode CommitMode) (int, error) {
	if p.state != StateParsed && p.state != StatePreviewed {
		return 0, fmt.Errorf("nothing staged to commit")
	}

	var err error
	switch mode {
	case CommitReplace:
		err = store.ReplaceAll(ctx, p.batch)
	case CommitMerge:
		err = store.MergeAll(ctx, p.batch)
	default:
		return 0, fmt.Errorf("unknown commit mode %q", mode)
	}
	if err != nil {
		return 0, err
	}

	committed := len(p.batch)
	p.state = StateCommitted
	p.batch = nil
	return committed, nil
}

// Cancel discards the staged batch and returns to Idle. It is legal in
// any state; no partial commit ever occurs.
func (p *Pipeline) Cancel() {
	p.state = StateIdle
	p.filename = ""
	p.extract = nil
	p.batch = nil
	p.rejected = 0
}
