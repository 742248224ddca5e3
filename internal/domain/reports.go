package domain

import "time"

// Summary provides high-level statistics of an analyzed document.
type Summary struct {
	Source           string `json:"source"`
	Valid            bool   `json:"valid"`
	TransactionCount int    `json:"transaction_count"`
	CategoryCount    int    `json:"category_count"`
	MonthCount       int    `json:"month_count"`
	DateRangeStart   string `json:"date_range_start"`
	DateRangeEnd     string `json:"date_range_end"`
}

// Report is the top-level structure for the final JSON output.
type Report struct {
	ID                 string          `json:"id"`
	GeneratedAt        time.Time       `json:"generated_at"`
	Summary            Summary         `json:"summary"`
	Filters            Filters         `json:"filters"`
	Analysis           AnalysisResult  `json:"analysis"`
	Monthly            MonthlySeries   `json:"monthly"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
	IncomeByCategory   []CategoryTotal `json:"income_by_category"`
}

