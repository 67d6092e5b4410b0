package report

import (
	"strings"

	"github.com/andriawan/dompet/internal/model"
)

// Filter narrows a transaction snapshot for list views. Zero values
// match everything.
type Filter struct {
	Search   string
	Type     model.TransactionType
	Category string
}

// Apply returns the matching transactions sorted newest first. Search
// matches case-insensitively against the description and the category
// display name.
func Apply(txns []model.Transaction, f Filter) []model.Transaction {
	search := strings.ToLower(f.Search)

	var filtered []model.Transaction
	for _, txn := range txns {
		if f.Type != "" && txn.Type != f.Type {
			continue
		}
		if f.Category != "" && txn.Category != f.Category {
			continue
		}
		if search != "" {
			categoryName := strings.ToLower(model.LookupCategory(txn.Type, txn.Category).Name)
			description := strings.ToLower(txn.Description)
			if !strings.Contains(description, search) && !strings.Contains(categoryName, search) {
				continue
			}
		}
		filtered = append(filtered, txn)
	}

	model.SortNewestFirst(filtered)
	return filtered
}
