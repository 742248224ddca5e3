package domain

// Filters holds the allow-lists applied by the monthly aggregation.
// A nil or empty list means "no restriction".
type Filters struct {
	ExpenseCategories []string `json:"expense_categories,omitempty"`
	IncomeCategories  []string `json:"income_categories,omitempty"`
	Accounts          []string `json:"accounts,omitempty"`
}

// Allows reports whether the transaction passes the filters.
// The expense list only constrains expenses and the income list only constrains income.
func (f Filters) Allows(tx Transaction) bool {
	if !allowed(f.Accounts, tx.Account) {
		return false
	}
	switch {
	case tx.IsExpense():
		return allowed(f.ExpenseCategories, tx.Category)
	case tx.IsIncome():
		return allowed(f.IncomeCategories, tx.Category)
	}
	return true
}

func allowed(list []string, value string) bool {
	if len(list) == 0 {
		return true
	}
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
