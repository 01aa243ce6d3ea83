package storage

import "sync"

// MemorySlot is an in-memory domain.SnapshotSlot used by tests and
// ephemeral runs.
type MemorySlot struct {
	mu    sync.Mutex
	value string
	set   bool

	// FailSave, when set, makes Save return this error. Lets tests
	// exercise the non-fatal write-error path.
	FailSave error
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set, nil
}

func (m *MemorySlot) Save(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.value = value
	m.set = true
	return nil
}

func (m *MemorySlot) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	m.set = false
	return nil
}

// Seed primes the slot with a raw value, bypassing Save semantics.
func (m *MemorySlot) Seed(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
}
