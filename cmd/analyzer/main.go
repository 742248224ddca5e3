package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"bank-export-analyzer/internal/config"
	"bank-export-analyzer/internal/gateway"
	"bank-export-analyzer/internal/logger"
	"bank-export-analyzer/internal/usecase"
)

func main() {
	// Define command-line flags; set flags override the environment
	envFile := flag.String("env", "", "Path to a .env file (optional)")
	file := flag.String("file", "", "Path to the bank export CSV file (required)")
	expenseCategories := flag.String("expense-categories", "", "Comma-separated expense categories to keep (default: all)")
	incomeCategories := flag.String("income-categories", "", "Comma-separated income categories to keep (default: all)")
	accounts := flag.String("accounts", "", "Comma-separated accounts to keep (default: all)")
	locale := flag.String("locale", "", "Locale of month labels (fr, en)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "expense-categories":
			cfg.ExpenseCategories = config.SplitList(*expenseCategories)
		case "income-categories":
			cfg.IncomeCategories = config.SplitList(*incomeCategories)
		case "accounts":
			cfg.Accounts = config.SplitList(*accounts)
		case "locale":
			cfg.Locale = *locale
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(cfg.LogLevel)
	ctx := logger.WithContext(context.Background(), log)

	monthLocale, err := usecase.ParseLocale(cfg.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid locale")
	}

	// --- Dependency Injection (Wiring the application) ---
	reader := gateway.NewFileDocumentReader()
	aggregator := usecase.NewMonthlyAggregator(monthLocale)
	ingestion := usecase.NewIngestionUseCase(reader, aggregator)

	// --- Execute the Usecase ---
	log.Debug().Str("file", cfg.File).Msg("analyzing bank export")
	report, err := ingestion.BuildReport(ctx, cfg.File, cfg.Filters())
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.File).Msg("analysis failed")
	}
	if !report.Summary.Valid {
		for _, msg := range report.Analysis.Errors {
			log.Error().Str("file", cfg.File).Msg(msg)
		}
	} else {
		log.Info().
			Str("file", cfg.File).
			Int("transactions", report.Summary.TransactionCount).
			Int("categories", report.Summary.CategoryCount).
			Int("months", report.Summary.MonthCount).
			Msg("bank export analyzed")
	}

	// --- Present the Output ---
	decimal.MarshalJSONWithoutQuotes = true
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate JSON report")
	}
	fmt.Println(string(output))

	if !report.Summary.Valid {
		os.Exit(1)
	}
}
