// Package prefs abstracts process-wide preference storage behind a
// small key-value interface so views are not bound to a concrete
// global store.
package prefs

// Store reads and writes string preferences. GetString returns ""
// for absent keys.
type Store interface {
	GetString(key string) (string, error)
	SetString(key, value string) error
}

// MemoryStore is an in-process Store for tests and previews.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) GetString(key string) (string, error) {
	return s.values[key], nil
}

func (s *MemoryStore) SetString(key, value string) error {
	s.values[key] = value
	return nil
}
