package domain

import "github.com/shopspring/decimal"

// DateRange holds the smallest and largest raw date strings of a document.
// Bounds are compared as strings, not as calendar dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FlowSummary aggregates the transactions of a single flow.
type FlowSummary struct {
	TotalAmount      decimal.Decimal            `json:"total_amount"`
	TransactionCount int                        `json:"transaction_count"`
	Categories       []string                   `json:"categories"`
	CategoriesData   map[string]decimal.Decimal `json:"categories_data"`
}

// NewFlowSummary returns an empty summary with non-nil collections.
func NewFlowSummary() FlowSummary {
	return FlowSummary{
		TotalAmount:    decimal.Zero,
		Categories:     []string{},
		CategoriesData: make(map[string]decimal.Decimal),
	}
}

// AnalysisResult is an immutable snapshot of one analyzed bank export.
type AnalysisResult struct {
	IsValid          bool            `json:"is_valid"`
	TransactionCount int             `json:"transaction_count"`
	CategoryCount    int             `json:"category_count"`
	Categories       []string        `json:"categories"`
	DateRange        DateRange       `json:"date_range"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Expenses         FlowSummary     `json:"expenses"`
	Income           FlowSummary     `json:"income"`
	Errors           []string        `json:"errors"`
	Transactions     []Transaction   `json:"transactions"`
}

// InvalidAnalysis builds a failed result carrying the given messages.
func InvalidAnalysis(errs ...string) AnalysisResult {
	if errs == nil {
		errs = []string{}
	}
	return AnalysisResult{
		IsValid:      false,
		Categories:   []string{},
		TotalAmount:  decimal.Zero,
		Expenses:     NewFlowSummary(),
		Income:       NewFlowSummary(),
		Errors:       errs,
		Transactions: []Transaction{},
	}
}
