package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid preferences store",
			config: Config{
				Store:          StorePreferences,
				SlotKey:        DefaultSlotKey,
				CurrencySymbol: "$",
			},
		},
		{
			name: "valid sqlite store",
			config: Config{
				Store:          StoreSQLite,
				SlotKey:        DefaultSlotKey,
				SQLiteDBPath:   "./budget.db",
				CurrencySymbol: "€",
			},
		},
		{
			name: "unknown store",
			config: Config{
				Store:          "cloud",
				SlotKey:        DefaultSlotKey,
				CurrencySymbol: "$",
			},
			wantErr:     true,
			errorString: "invalid store 'cloud'",
		},
		{
			name: "sqlite without path",
			config: Config{
				Store:          StoreSQLite,
				SlotKey:        DefaultSlotKey,
				CurrencySymbol: "$",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "blank slot key",
			config: Config{
				Store:          StoreMemory,
				SlotKey:        "  ",
				CurrencySymbol: "$",
			},
			wantErr:     true,
			errorString: "slot key cannot be empty",
		},
		{
			name: "missing currency",
			config: Config{
				Store:   StoreMemory,
				SlotKey: DefaultSlotKey,
			},
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "DEBUG", "BUDGET_STORE", "BUDGET_SLOT_KEY", "BUDGET_USER_NAME", "BUDGET_CURRENCY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromEnv()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, StorePreferences, cfg.Store)
	assert.Equal(t, DefaultSlotKey, cfg.SlotKey)
	assert.Equal(t, "", cfg.UserName)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.NotEmpty(t, cfg.SQLiteDBPath)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "budget.db")
	t.Setenv("BUDGET_STORE", "SQLite")
	t.Setenv("BUDGET_DB_PATH", dbPath)
	t.Setenv("BUDGET_USER_NAME", "Will")
	t.Setenv("BUDGET_CURRENCY", "£")
	t.Setenv("DEBUG", "1")
	t.Setenv("LOG_LEVEL", "info")

	cfg := FromEnv()
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, dbPath, cfg.SQLiteDBPath)
	assert.Equal(t, "Will", cfg.UserName)
	assert.Equal(t, "£", cfg.CurrencySymbol)
	assert.Equal(t, "debug", cfg.EffectiveLogLevel())
}

func TestEffectiveLogLevel_ExplicitLevelWins(t *testing.T) {
	cfg := Config{LogLevel: "error", Debug: true}
	assert.Equal(t, "error", cfg.EffectiveLogLevel())
}
