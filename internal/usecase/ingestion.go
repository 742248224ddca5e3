package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bank-export-analyzer/internal/domain"
)

// IngestionUseCase orchestrates reading a bank export and analyzing it.
type IngestionUseCase struct {
	reader     DocumentReader
	aggregator *MonthlyAggregator
	now        func() time.Time
	newID      func() string
}

// Option customizes an IngestionUseCase.
type Option func(*IngestionUseCase)

// WithClock overrides the clock used to timestamp reports.
func WithClock(now func() time.Time) Option {
	return func(uc *IngestionUseCase) { uc.now = now }
}

// WithIDGenerator overrides the generator of report identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(uc *IngestionUseCase) { uc.newID = newID }
}

// NewIngestionUseCase creates a new instance of the usecase.
func NewIngestionUseCase(reader DocumentReader, aggregator *MonthlyAggregator, opts ...Option) *IngestionUseCase {
	uc := &IngestionUseCase{
		reader:     reader,
		aggregator: aggregator,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AnalyzeDocument reads the document at path and analyzes it.
// A read failure is returned as an error; a malformed document yields an invalid result instead.
func (uc *IngestionUseCase) AnalyzeDocument(ctx context.Context, path string) (*domain.AnalysisResult, error) {
	raw, err := uc.reader.ReadDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not read document: %w", err)
	}
	result := Analyze(raw)
	return &result, nil
}

// BuildReport analyzes the document at path and aggregates it by month.
func (uc *IngestionUseCase) BuildReport(ctx context.Context, path string, filters domain.Filters) (*domain.Report, error) {
	result, err := uc.AnalyzeDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	monthly := uc.aggregator.Aggregate(*result, filters)

	return &domain.Report{
		ID:          uc.newID(),
		GeneratedAt: uc.now().UTC(),
		Summary: domain.Summary{
			Source:           path,
			Valid:            result.IsValid,
			TransactionCount: result.TransactionCount,
			CategoryCount:    result.CategoryCount,
			MonthCount:       len(monthly.Months),
			DateRangeStart:   result.DateRange.Start,
			DateRangeEnd:     result.DateRange.End,
		},
		Filters:            filters,
		Analysis:           *result,
		Monthly:            monthly,
		ExpensesByCategory: uc.aggregator.CategoryBreakdown(*result, domain.FlowExpense, filters),
		IncomeByCategory:   uc.aggregator.CategoryBreakdown(*result, domain.FlowIncome, filters),
	}, nil
}
