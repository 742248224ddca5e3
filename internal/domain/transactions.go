package domain

import "github.com/shopspring/decimal"

// Flow defines the direction of a transaction (expense or income).
type Flow string

const (
	FlowExpense Flow = "expense"
	FlowIncome  Flow = "income"
	// FlowNone is used for zero-amount rows, which belong to neither flow.
	FlowNone Flow = ""
)

// FlowOf classifies an amount by its sign.
func FlowOf(amount decimal.Decimal) Flow {
	switch amount.Sign() {
	case -1:
		return FlowExpense
	case 1:
		return FlowIncome
	default:
		return FlowNone
	}
}

// Transaction represents one ledger entry of a bank export.
type Transaction struct {
	Date        string          `json:"date"` // raw string, kept verbatim for display
	Amount      decimal.Decimal `json:"amount"`
	Type        Flow            `json:"type"`
	Category    string          `json:"category"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Note        string          `json:"note"`
	Reconciled  string          `json:"reconciled"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == FlowExpense
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Type == FlowIncome
}

// Magnitude returns the absolute value of the amount.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
