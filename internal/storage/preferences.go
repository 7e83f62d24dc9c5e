package storage

import "fyne.io/fyne/v2"

// PreferencesSlot stores the blob as a string value in the application's
// Fyne preferences, which the driver persists per application ID.
type PreferencesSlot struct {
	prefs fyne.Preferences
	key   string
}

func NewPreferencesSlot(prefs fyne.Preferences, key string) *PreferencesSlot {
	return &PreferencesSlot{prefs: prefs, key: key}
}

func (p *PreferencesSlot) Key() string {
	return p.key
}

func (p *PreferencesSlot) Read() ([]byte, error) {
	return []byte(p.prefs.String(p.key)), nil
}

func (p *PreferencesSlot) Write(data []byte) error {
	p.prefs.SetString(p.key, string(data))
	return nil
}
