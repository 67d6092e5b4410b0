package model

import (
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			txn: Transaction{
				ID:          "t1",
				Date:        "2024-01-15",
				Description: "Lunch",
				Category:    "food",
				Type:        TypeExpense,
				Amount:      50000,
			},
			wantErr: false,
		},
		{
			name: "valid income without description",
			txn: Transaction{
				ID:       "t2",
				Date:     "2024-01-25",
				Category: "salary",
				Type:     TypeIncome,
				Amount:   7500000,
			},
			wantErr: false,
		},
		{
			name: "zero amount",
			txn: Transaction{
				Date:   "2024-01-15",
				Type:   TypeExpense,
				Amount: 0,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			txn: Transaction{
				Date:   "2024-01-15",
				Type:   TypeExpense,
				Amount: -5000,
			},
			wantErr: true,
		},
		{
			name: "missing date",
			txn: Transaction{
				Type:   TypeExpense,
				Amount: 1000,
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			txn: Transaction{
				Date:   "15/01/2024",
				Type:   TypeExpense,
				Amount: 1000,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			txn: Transaction{
				Date:   "2024-01-15",
				Type:   "transfer",
				Amount: 1000,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	txns := []Transaction{
		{ID: "a", Date: "2024-01-10", Time: "09:00"},
		{ID: "b", Date: "2024-01-15", Time: "08:00"},
		{ID: "c", Date: "2024-01-15", Time: "12:30"},
		{ID: "d", Date: "2023-12-31"},
	}

	SortNewestFirst(txns)

	want := []string{"c", "b", "a", "d"}
	for i, id := range want {
		if txns[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, txns[i].ID, id)
		}
	}
}

func TestLookupCategory(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		id     string
		wantID string
	}{
		{"known expense", TypeExpense, "food", "food"},
		{"known income", TypeIncome, "salary", "salary"},
		{"unknown expense falls back", TypeExpense, "nonsense", DefaultExpenseCategoryID},
		{"unknown income falls back", TypeIncome, "Lainnya", DefaultIncomeCategoryID},
		{"empty id falls back", TypeExpense, "", DefaultExpenseCategoryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupCategory(tt.txType, tt.id)
			if got.ID != tt.wantID {
				t.Errorf("LookupCategory(%s, %q).ID = %s, want %s", tt.txType, tt.id, got.ID, tt.wantID)
			}
			if got.Type != tt.txType {
				t.Errorf("LookupCategory(%s, %q).Type = %s", tt.txType, tt.id, got.Type)
			}
		})
	}
}

func TestDisplayDescription(t *testing.T) {
	withDesc := Transaction{Description: "Kopi pagi", Category: "food", Type: TypeExpense}
	if got := withDesc.DisplayDescription(); got != "Kopi pagi" {
		t.Errorf("got %q, want description", got)
	}

	withoutDesc := Transaction{Category: "transport", Type: TypeExpense}
	if got := withoutDesc.DisplayDescription(); got != "Transportasi" {
		t.Errorf("got %q, want category name fallback", got)
	}
}
