package model

// Category is static reference data: a classification tag scoped to a
// transaction type, with display metadata for rendering.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  TransactionType
}

// Default category IDs used when a lookup fails or data is missing.
const (
	DefaultIncomeCategoryID  = "other_income"
	DefaultExpenseCategoryID = "other_expense"

	// DefaultCategoryLabel is assigned to imported rows with no category.
	DefaultCategoryLabel = "Lainnya"
)

// IncomeCategories is the fixed income category table.
var IncomeCategories = []Category{
	{ID: "salary", Name: "Gaji", Icon: "fa-briefcase", Color: "#48bb78", Type: TypeIncome},
	{ID: "bonus", Name: "Bonus", Icon: "fa-gift", Color: "#38a169", Type: TypeIncome},
	{ID: "investment", Name: "Investasi", Icon: "fa-chart-line", Color: "#2f855a", Type: TypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "fa-laptop", Color: "#276749", Type: TypeIncome},
	{ID: DefaultIncomeCategoryID, Name: "Lainnya", Icon: "fa-plus-circle", Color: "#22543d", Type: TypeIncome},
}

// ExpenseCategories is the fixed expense category table.
var ExpenseCategories = []Category{
	{ID: "food", Name: "Makanan", Icon: "fa-utensils", Color: "#f56565", Type: TypeExpense},
	{ID: "transport", Name: "Transportasi", Icon: "fa-car", Color: "#ed8936", Type: TypeExpense},
	{ID: "shopping", Name: "Belanja", Icon: "fa-shopping-bag", Color: "#ecc94b", Type: TypeExpense},
	{ID: "bills", Name: "Tagihan", Icon: "fa-file-invoice", Color: "#9f7aea", Type: TypeExpense},
	{ID: "entertainment", Name: "Hiburan", Icon: "fa-gamepad", Color: "#667eea", Type: TypeExpense},
	{ID: "health", Name: "Kesehatan", Icon: "fa-medkit", Color: "#fc8181", Type: TypeExpense},
	{ID: "education", Name: "Pendidikan", Icon: "fa-graduation-cap", Color: "#4fd1c5", Type: TypeExpense},
	{ID: DefaultExpenseCategoryID, Name: "Lainnya", Icon: "fa-ellipsis-h", Color: "#a0aec0", Type: TypeExpense},
}

// CategoriesFor returns the category table for a transaction type.
func CategoriesFor(t TransactionType) []Category {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// LookupCategory resolves a category id within a type. Unknown ids fall
// back to the type's designated "Other" category, never an error.
func LookupCategory(t TransactionType, id string) Category {
	table := CategoriesFor(t)
	for _, c := range table {
		if c.ID == id {
			return c
		}
	}
	return table[len(table)-1]
}
