package domain

import "github.com/shopspring/decimal"

// MonthlyBucket holds the totals of one calendar month.
type MonthlyBucket struct {
	MonthKey         string          `json:"month_key"` // YYYY-MM
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	Expenses         decimal.Decimal `json:"expenses"`
	Income           decimal.Decimal `json:"income"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthlySeries is the ordered monthly view used for charting.
type MonthlySeries struct {
	Months        []MonthlyBucket `json:"months"`
	MaxValue      decimal.Decimal `json:"max_value"`
	MinValue      decimal.Decimal `json:"min_value"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalNet      decimal.Decimal `json:"total_net"`
}

// EmptyMonthlySeries returns a series with no buckets and zero bounds.
func EmptyMonthlySeries() MonthlySeries {
	return MonthlySeries{
		Months:        []MonthlyBucket{},
		MaxValue:      decimal.Zero,
		MinValue:      decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalNet:      decimal.Zero,
	}
}

// CategoryTotal is the summed magnitude of one category.
type CategoryTotal struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionCount int             `json:"transaction_count"`
}
