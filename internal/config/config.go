package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorePreferences = "preferences"
	StoreSQLite      = "sqlite"
	StoreMemory      = "memory"

	DefaultSlotKey = "categoriesData"
)

type Config struct {
	// Logging
	LogLevel string
	Debug    bool

	// Persisted slot
	Store        string
	SlotKey      string
	SQLiteDBPath string

	// Presentation
	UserName       string
	CurrencySymbol string
}

// Load reads configuration from the environment, after applying a .env file
// from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the current environment only.
func FromEnv() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Debug:    getEnv("DEBUG", "") == "1",

		Store:        strings.ToLower(getEnv("BUDGET_STORE", StorePreferences)),
		SlotKey:      getEnv("BUDGET_SLOT_KEY", DefaultSlotKey),
		SQLiteDBPath: getEnv("BUDGET_DB_PATH", defaultDBPath()),

		UserName:       getEnv("BUDGET_USER_NAME", ""),
		CurrencySymbol: getEnv("BUDGET_CURRENCY", "$"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validStores := []string{StorePreferences, StoreSQLite, StoreMemory}
	isValidStore := false
	for _, s := range validStores {
		if c.Store == s {
			isValidStore = true
			break
		}
	}
	if !isValidStore {
		errors = append(errors, fmt.Sprintf("invalid store '%s': must be one of %v", c.Store, validStores))
	}

	if strings.TrimSpace(c.SlotKey) == "" {
		errors = append(errors, "slot key cannot be empty")
	}

	if c.Store == StoreSQLite && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite store")
	}

	if c.CurrencySymbol == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// EffectiveLogLevel resolves LOG_LEVEL with DEBUG=1 as an override when no
// explicit level was requested.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug && (c.LogLevel == "" || c.LogLevel == "info") {
		return "debug"
	}
	return c.LogLevel
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "data", "budget.db")
	}
	return filepath.Join(dir, "willpower-budget", "budget.db")
}
