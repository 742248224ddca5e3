package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bank-export-analyzer/internal/domain"
	"bank-export-analyzer/internal/usecase"
)

const (
	EnvFile              = "ANALYZER_FILE"
	EnvLocale            = "ANALYZER_LOCALE"
	EnvLogLevel          = "ANALYZER_LOG_LEVEL"
	EnvExpenseCategories = "ANALYZER_EXPENSE_CATEGORIES"
	EnvIncomeCategories  = "ANALYZER_INCOME_CATEGORIES"
	EnvAccounts          = "ANALYZER_ACCOUNTS"
)

type Config struct {
	// Input
	File string

	// Presentation
	Locale   string
	LogLevel string

	// Allow-lists; empty means no restriction
	ExpenseCategories []string
	IncomeCategories  []string
	Accounts          []string
}

// Load reads the configuration from the environment. When envFile is set it
// must exist; otherwise a ".env" file in the working directory is used if present.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return &Config{
		File:              getEnv(EnvFile, ""),
		Locale:            getEnv(EnvLocale, string(usecase.DefaultLocale)),
		LogLevel:          getEnv(EnvLogLevel, "info"),
		ExpenseCategories: SplitList(os.Getenv(EnvExpenseCategories)),
		IncomeCategories:  SplitList(os.Getenv(EnvIncomeCategories)),
		Accounts:          SplitList(os.Getenv(EnvAccounts)),
	}, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.File == "" {
		errs = append(errs, "input file is required")
	}
	if _, err := usecase.ParseLocale(c.Locale); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Filters returns the allow-lists as domain filters.
func (c *Config) Filters() domain.Filters {
	return domain.Filters{
		ExpenseCategories: c.ExpenseCategories,
		IncomeCategories:  c.IncomeCategories,
		Accounts:          c.Accounts,
	}
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
