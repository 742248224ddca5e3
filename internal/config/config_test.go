package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-export-analyzer/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFile, EnvLocale, EnvLogLevel, EnvExpenseCategories, EnvIncomeCategories, EnvAccounts} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.File)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.ExpenseCategories)
	assert.Nil(t, cfg.IncomeCategories)
	assert.Nil(t, cfg.Accounts)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFile, "/exports/2024.csv")
	t.Setenv(EnvLocale, "en")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvExpenseCategories, "Alimentation, Transport")
	t.Setenv(EnvIncomeCategories, "Salaire")
	t.Setenv(EnvAccounts, "Compte Courant,,Compte Joint")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/exports/2024.csv", cfg.File)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.Filters{
		ExpenseCategories: []string{"Alimentation", "Transport"},
		IncomeCategories:  []string{"Salaire"},
		Accounts:          []string{"Compte Courant", "Compte Joint"},
	}, cfg.Filters())
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "analyzer.env")
	content := "ANALYZER_FILE=/exports/janvier.csv\nANALYZER_LOCALE=fr-FR\nANALYZER_EXPENSE_CATEGORIES=\"Loisirs,Sorties\"\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/exports/janvier.csv", cfg.File)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, []string{"Loisirs", "Sorties"}, cfg.ExpenseCategories)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid configuration",
			cfg:  Config{File: "export.csv", Locale: "fr", LogLevel: "info"},
		},
		{
			name: "empty log level is accepted",
			cfg:  Config{File: "export.csv", Locale: "en"},
		},
		{
			name:    "missing file",
			cfg:     Config{Locale: "fr", LogLevel: "info"},
			wantErr: "input file is required",
		},
		{
			name:    "unsupported locale",
			cfg:     Config{File: "export.csv", Locale: "de", LogLevel: "info"},
			wantErr: `unsupported locale "de"`,
		},
		{
			name:    "invalid log level",
			cfg:     Config{File: "export.csv", Locale: "fr", LogLevel: "loud"},
			wantErr: `invalid log level "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a ,b c,"))
}
