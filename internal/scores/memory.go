package scores

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps records in memory. It backs demos and tests; state is
// lost when the process exits.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
	saved   bool

	// LoadStatus, when set, is returned by Load instead of the stored records.
	LoadStatus Status
	LoadErr    error
	// SaveErr, when set, makes Save fail without storing anything.
	SaveErr error
}

// NewMemoryStore returns an empty store. Until the first Save, Load reports
// StatusNotFound like a missing file would.
func NewMemoryStore(records ...Record) *MemoryStore {
	m := &MemoryStore{records: slices.Clone(records)}
	m.saved = len(records) > 0
	return m
}

// Location returns a fixed name
func (m *MemoryStore) Location() string {
	return "memory"
}

// Load returns a copy of the stored records.
func (m *MemoryStore) Load(_ context.Context) LoadResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadStatus != StatusOK {
		return failedResult(m.LoadStatus, m.LoadErr)
	}
	if !m.saved {
		return failedResult(StatusNotFound, nil)
	}
	return okResult(slices.Clone(m.records))
}

// Save replaces the stored records.
func (m *MemoryStore) Save(_ context.Context, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.records = slices.Clone(records)
	m.saved = true
	return nil
}

// Clear drops every record.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	m.saved = false
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
