package usecase

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"bank-export-analyzer/internal/domain"
)

var (
	// minScale is the floor of the chart maximum.
	minScale = decimal.NewFromInt(1000)
	// headroom is the margin applied to both chart bounds.
	headroom = decimal.RequireFromString("1.1")
)

// MonthlyAggregator groups analyzed transactions by calendar month.
// It holds no derived state: every call recomputes the series from its inputs.
type MonthlyAggregator struct {
	locale Locale
}

// NewMonthlyAggregator creates an aggregator that labels months in the given locale.
func NewMonthlyAggregator(locale Locale) *MonthlyAggregator {
	if locale == "" {
		locale = DefaultLocale
	}
	return &MonthlyAggregator{locale: locale}
}

// Aggregate builds the monthly series of an analysis after applying the filters.
// Transactions whose date cannot be parsed are left out of the series.
func (a *MonthlyAggregator) Aggregate(result domain.AnalysisResult, filters domain.Filters) domain.MonthlySeries {
	if !result.IsValid || len(result.Transactions) == 0 {
		return domain.EmptyMonthlySeries()
	}

	buckets := make(map[string]*domain.MonthlyBucket)
	for _, tx := range result.Transactions {
		if !filters.Allows(tx) {
			continue
		}
		date, ok := parseTransactionDate(tx.Date)
		if !ok {
			continue
		}

		key := monthKey(date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlyBucket{
				MonthKey: key,
				Month:    a.locale.MonthLabel(date.Year(), date.Month()),
				Year:     date.Year(),
				Expenses: decimal.Zero,
				Income:   decimal.Zero,
				Net:      decimal.Zero,
			}
			buckets[key] = bucket
		}

		switch tx.Type {
		case domain.FlowExpense:
			bucket.Expenses = bucket.Expenses.Add(tx.Magnitude())
		case domain.FlowIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		}
		bucket.Net = bucket.Income.Sub(bucket.Expenses)
		bucket.TransactionCount++
	}

	months := make([]domain.MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	slices.SortFunc(months, func(x, y domain.MonthlyBucket) int {
		return strings.Compare(x.MonthKey, y.MonthKey)
	})

	series := domain.MonthlySeries{
		Months:        months,
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
	}
	maxValue, minNet := minScale, decimal.Zero
	for _, m := range months {
		maxValue = decimal.Max(maxValue, m.Expenses, m.Income, m.Net.Abs())
		minNet = decimal.Min(minNet, m.Net)
		series.TotalExpenses = series.TotalExpenses.Add(m.Expenses)
		series.TotalIncome = series.TotalIncome.Add(m.Income)
	}
	series.MaxValue = maxValue.Mul(headroom)
	series.MinValue = minNet.Mul(headroom)
	series.TotalNet = series.TotalIncome.Sub(series.TotalExpenses)
	return series
}

// CategoryBreakdown returns the per-category totals of one flow after applying
// the filters, largest first. Income and expenses are both reported as magnitudes.
func (a *MonthlyAggregator) CategoryBreakdown(result domain.AnalysisResult, flow domain.Flow, filters domain.Filters) []domain.CategoryTotal {
	totals := []domain.CategoryTotal{}
	if !result.IsValid || flow == domain.FlowNone {
		return totals
	}

	index := make(map[string]int)
	for _, tx := range result.Transactions {
		if tx.Type != flow || !filters.Allows(tx) {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Magnitude())
		totals[i].TransactionCount++
	}

	slices.SortStableFunc(totals, func(x, y domain.CategoryTotal) int {
		if c := y.Amount.Cmp(x.Amount); c != 0 {
			return c
		}
		return strings.Compare(x.Category, y.Category)
	})
	return totals
}
