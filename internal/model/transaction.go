// Package model defines the core domain types for the wallet tracker.
package model

import (
	"fmt"
	"sort"
	"time"
)

// TransactionType indicates whether money flowed in or out.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// Transaction is a single dated income or expense record.
//
// Date carries no time component; Time is an optional HH:MM clock value
// that some data sources provide and others omit.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        string          `json:"time,omitempty"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

// Validate checks the invariants every persisted transaction must hold.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", t.Amount)
	}
	if t.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", t.Date, err)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	return nil
}

// DisplayDescription returns the description, falling back to the
// category display name when the description is empty.
func (t *Transaction) DisplayDescription() string {
	if t.Description != "" {
		return t.Description
	}
	return LookupCategory(t.Type, t.Category).Name
}

// sortKey orders transactions by date then clock time.
func (t *Transaction) sortKey() string {
	return t.Date + " " + t.Time
}

// SortNewestFirst orders transactions for display, newest date first.
// Insertion order is not meaningful; every consumer re-sorts.
func SortNewestFirst(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].sortKey() > txns[j].sortKey()
	})
}
