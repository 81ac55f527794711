package storage

import "sync"

// MemoryStore keeps state blobs in process memory. Used when no Supabase
// credentials are configured, and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(userID, slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, ok := m.blobs[userID+"/"+slot]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *MemoryStore) Save(userID, slot string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.blobs[userID+"/"+slot] = stored
	return nil
}
