package session

import "sync"

// memoryStore keeps the token in process memory. Useful for tests and
// callers that do not want the token to outlive the process.
type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryStore) Save(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Clear() error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) IsAuthenticated() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "", nil
}
