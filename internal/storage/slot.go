// Package storage provides the persisted key/value slot that holds the
// encoded category list between runs.
package storage

import (
	"fmt"
	"io"

	"budget-assistant/internal/config"

	"fyne.io/fyne/v2"
)

// Slot is a single named location holding one byte blob.
// Reading a slot that was never written yields an empty blob and no error.
type Slot interface {
	Key() string
	Read() ([]byte, error)
	Write(data []byte) error
}

// Open builds the slot selected by cfg. prefs is only consulted for the
// preferences store and may be nil otherwise.
func Open(cfg *config.Config, prefs fyne.Preferences) (Slot, error) {
	switch cfg.Store {
	case config.StorePreferences:
		if prefs == nil {
			return nil, fmt.Errorf("preferences store requested without application preferences")
		}
		return NewPreferencesSlot(prefs, cfg.SlotKey), nil
	case config.StoreSQLite:
		return NewSQLiteSlot(cfg.SQLiteDBPath, cfg.SlotKey)
	case config.StoreMemory:
		return NewMemorySlot(cfg.SlotKey), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Close releases the slot's resources when it holds any.
func Close(slot Slot) error {
	if c, ok := slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
