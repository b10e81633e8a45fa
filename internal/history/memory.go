package history

import (
	"sync"
	"time"
)

// Memory is an in-memory store for tests and sessions without a database.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record stores one calculation.
func (m *Memory) Record(expr string, result int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		Expr:   expr,
		Result: result,
		Ts:     time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// Recent returns up to limit calculations, newest first.
func (m *Memory) Recent(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Entry, 0, limit)
	for i := len(m.entries) - 1; i >= len(m.entries)-limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
