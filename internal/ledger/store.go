// Package ledger owns the transaction collection and its persistence
// lifecycle. All mutations go through the Store; consumers only ever see
// snapshots.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/model"
)

// KV is the persistence collaborator. Values are opaque text; the store
// encodes its state as JSON.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Keys under which the store persists its state.
const (
	transactionsKey = "transactions"
	settingsKey     = "settings"
)

// Store holds the in-memory transaction collection and user settings,
// writing the full state back to the KV collaborator on every mutation.
//
// The store is single-writer by design; callers introducing concurrency
// must serialize mutations themselves.
type Store struct {
	kv           KV
	transactions []model.Transaction
	settings     model.Settings
}

// NewStore creates a store bound to the given persistence collaborator.
// Call Load before use.
func NewStore(kv KV) *Store {
	return &Store{
		kv:       kv,
		settings: model.DefaultSettings(),
	}
}

// Load reads persisted state. Absent or malformed payloads degrade to
// an empty collection and default settings rather than failing.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, transactionsKey)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	s.transactions = nil
	if ok {
		var txns []model.Transaction
		if err := json.Unmarshal([]byte(raw), &txns); err != nil {
			slog.Warn("ignoring malformed transaction payload", "error", err)
		} else {
			s.transactions = txns
		}
	}

	raw, ok, err = s.kv.Get(ctx, settingsKey)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s.settings = model.DefaultSettings()
	if ok {
		var settings model.Settings
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			slog.Warn("ignoring malformed settings payload", "error", err)
		} else {
			s.settings = settings
		}
	}

	slog.Debug("loaded store", "transactions", len(s.transactions))
	return nil
}

// All returns a snapshot of the collection in insertion order.
func (s *Store) All() []model.Transaction {
	snapshot := make([]model.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

// Count returns the number of stored transactions.
func (s *Store) Count() int {
	return len(s.transactions)
}

// Get returns the transaction with the given id.
func (s *Store) Get(id string) (model.Transaction, error) {
	for _, txn := range s.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: %s", common.ErrNotFound, id)
}

// Add validates and appends a transaction, assigning a fresh id when
// none is set, then persists the collection.
func (s *Store) Add(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == "" {
		txn.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	s.transactions = append(s.transactions, txn)
	if err := s.persist(ctx); err != nil {
		return model.Transaction{}, err
	}

	slog.Debug("added transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return txn, nil
}

// Update replaces the mutable fields of the transaction with the given
// id, keeping its identity and creation time.
func (s *Store) Update(ctx context.Context, id string, fields model.Transaction) (model.Transaction, error) {
	for i, txn := range s.transactions {
		if txn.ID != id {
			continue
		}

		updated := txn
		updated.Type = fields.Type
		updated.Amount = fields.Amount
		updated.Category = fields.Category
		updated.Description = fields.Description
		updated.Date = fields.Date
		updated.Time = fields.Time
		if err := updated.Validate(); err != nil {
			return model.Transaction{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
		}

		s.transactions[i] = updated
		if err := s.persist(ctx); err != nil {
			return model.Transaction{}, err
		}
		return updated, nil
	}
	return model.Transaction{}, fmt.Errorf("%w: %s", common.ErrNotFound, id)
}

// Remove deletes the transaction with the given id. Removing an unknown
// id is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	for i, txn := range s.transactions {
		if txn.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// ReplaceAll discards the current collection in favor of records.
func (s *Store) ReplaceAll(ctx context.Context, records []model.Transaction) error {
	s.transactions = make([]model.Transaction, len(records))
	copy(s.transactions, records)
	return s.persist(ctx)
}

// MergeAll appends records to the current collection.
func (s *Store) MergeAll(ctx context.Context, records []model.Transaction) error {
	s.transactions = append(s.transactions, records...)
	return s.persist(ctx)
}

// persist writes the entire collection. Every mutation writes
// synchronously; there is no batching.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.kv.Set(ctx, transactionsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	return nil
}
