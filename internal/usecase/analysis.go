package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-export-analyzer/internal/domain"
)

const (
	ErrMsgMissingDataLine = "file must contain at least one data line"
	ErrMsgAnalysisFailed  = "error during CSV analysis"
)

// Column labels of the bank export, in export order.
const (
	HeaderDate        = "Date"
	HeaderDescription = "Description"
	HeaderAccount     = "Compte"
	HeaderAmount      = "Montant"
	HeaderCategory    = "Catégorie"
	HeaderSubCategory = "Sous-Catégorie"
	HeaderNote        = "Note"
	HeaderReconciled  = "Pointée"
)

// RequiredHeaders lists every column a bank export must carry.
var RequiredHeaders = []string{
	HeaderDate,
	HeaderDescription,
	HeaderAccount,
	HeaderAmount,
	HeaderCategory,
	HeaderSubCategory,
	HeaderNote,
	HeaderReconciled,
}

// ErrMsgInvalidHeader is reported when a required column is missing.
var ErrMsgInvalidHeader = "invalid header: expected " + strings.Join(RequiredHeaders, ", ")

// columns maps each required header to its position in the header row.
type columns struct {
	date, description, account, amount, category, subCategory, note, reconciled int
}

func resolveColumns(header []string) (columns, []string) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := headerKey(h)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	var missing []string
	lookup := func(label string) int {
		i, ok := index[headerKey(label)]
		if !ok {
			missing = append(missing, label)
		}
		return i
	}

	cols := columns{
		date:        lookup(HeaderDate),
		description: lookup(HeaderDescription),
		account:     lookup(HeaderAccount),
		amount:      lookup(HeaderAmount),
		category:    lookup(HeaderCategory),
		subCategory: lookup(HeaderSubCategory),
		note:        lookup(HeaderNote),
		reconciled:  lookup(HeaderReconciled),
	}
	return cols, missing
}

// transaction builds a transaction from a row. Expenses take their label from
// the Catégorie column and income from the Sous-Catégorie column; this is how
// the export tool encodes categories and must not be unified.
func (c columns) transaction(fields []string, amount decimal.Decimal) domain.Transaction {
	tx := domain.Transaction{
		Date:        fields[c.date],
		Amount:      amount,
		Type:        domain.FlowOf(amount),
		Account:     fields[c.account],
		Description: fields[c.description],
		Note:        fields[c.note],
		Reconciled:  fields[c.reconciled],
	}
	switch tx.Type {
	case domain.FlowExpense:
		tx.Category = fields[c.category]
	case domain.FlowIncome:
		tx.Category = fields[c.subCategory]
	}
	return tx
}

// Analyze validates a raw bank export and classifies its transactions.
// It never fails: problems are reported through an invalid result.
func Analyze(raw string) (result domain.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.InvalidAnalysis(ErrMsgAnalysisFailed)
		}
	}()

	lines := splitLines(raw)
	if len(lines) < 2 {
		return domain.InvalidAnalysis(ErrMsgMissingDataLine)
	}

	header := splitFields(lines[0])
	cols, missing := resolveColumns(header)
	if len(missing) > 0 {
		return domain.InvalidAnalysis(ErrMsgInvalidHeader, fmt.Sprintf("missing headers: %s", strings.Join(missing, ", ")))
	}

	acc := newAnalysisAccumulator()
	for _, line := range lines[1:] {
		fields := splitFields(line)
		if len(fields) < len(header) {
			continue
		}
		amount, err := parseAmount(fields[cols.amount])
		if err != nil {
			continue
		}
		acc.add(cols.transaction(fields, amount))
	}
	return acc.result()
}

// analysisAccumulator collects totals in a single pass over the rows.
type analysisAccumulator struct {
	transactions []domain.Transaction
	total        decimal.Decimal
	categories   domain.CategorySet
	expenseSet   domain.CategorySet
	incomeSet    domain.CategorySet
	expenses     domain.FlowSummary
	income       domain.FlowSummary
	dateRange    domain.DateRange
	hasDate      bool
}

func newAnalysisAccumulator() *analysisAccumulator {
	return &analysisAccumulator{
		transactions: []domain.Transaction{},
		total:        decimal.Zero,
		expenses:     domain.NewFlowSummary(),
		income:       domain.NewFlowSummary(),
	}
}

func (a *analysisAccumulator) add(tx domain.Transaction) {
	a.transactions = append(a.transactions, tx)
	a.total = a.total.Add(tx.Amount)
	a.trackDate(tx.Date)

	switch {
	case tx.IsExpense():
		a.categories.Add(tx.Category)
		a.expenseSet.Add(tx.Category)
		accumulate(&a.expenses, tx.Category, tx.Magnitude())
	case tx.IsIncome():
		a.categories.Add(tx.Category)
		a.incomeSet.Add(tx.Category)
		accumulate(&a.income, tx.Category, tx.Amount)
	}
}

// trackDate keeps the lexicographic bounds of the raw date strings.
func (a *analysisAccumulator) trackDate(date string) {
	if date == "" {
		return
	}
	if !a.hasDate {
		a.dateRange = domain.DateRange{Start: date, End: date}
		a.hasDate = true
		return
	}
	if date < a.dateRange.Start {
		a.dateRange.Start = date
	}
	if date > a.dateRange.End {
		a.dateRange.End = date
	}
}

func accumulate(summary *domain.FlowSummary, category string, value decimal.Decimal) {
	summary.TotalAmount = summary.TotalAmount.Add(value)
	summary.TransactionCount++
	summary.CategoriesData[category] = summary.CategoriesData[category].Add(value)
}

func (a *analysisAccumulator) result() domain.AnalysisResult {
	a.expenses.Categories = a.expenseSet.Labels()
	a.income.Categories = a.incomeSet.Labels()
	return domain.AnalysisResult{
		IsValid:          true,
		TransactionCount: len(a.transactions),
		CategoryCount:    a.categories.Len(),
		Categories:       a.categories.Labels(),
		DateRange:        a.dateRange,
		TotalAmount:      a.total,
		Expenses:         a.expenses,
		Income:           a.income,
		Errors:           []string{},
		Transactions:     a.transactions,
	}
}
