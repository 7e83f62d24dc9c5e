package storage

import "sync"

// MemorySlot keeps the blob in process memory only.
type MemorySlot struct {
	mu   sync.RWMutex
	key  string
	data []byte
}

func NewMemorySlot(key string) *MemorySlot {
	return &MemorySlot{key: key}
}

func (m *MemorySlot) Key() string {
	return m.key
}

func (m *MemorySlot) Read() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySlot) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}
