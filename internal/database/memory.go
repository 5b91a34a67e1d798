package database

import (
	"context"
	"sync"

	"github.com/deppfellow/contact-form/internal/model"
	"github.com/google/uuid"
)

type memoryDocument struct {
	ID      string
	Content model.FormData
}

// MemoryStore keeps documents in process memory. Contents are lost on
// restart.
type MemoryStore struct {
	namespace string
	database  string

	mu          sync.RWMutex
	closed      bool
	collections map[string][]memoryDocument
}

func NewMemoryStore(namespace, database string) *MemoryStore {
	return &MemoryStore{
		namespace:   namespace,
		database:    database,
		collections: make(map[string][]memoryDocument),
	}
}

func (m *MemoryStore) key(collection string) string {
	return m.namespace + "/" + m.database + "/" + collection
}

func (m *MemoryStore) Create(ctx context.Context, collection string, content model.FormData) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := memoryDocument{
		ID:      recordID(collection, uuid.New()),
		Content: content,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	k := m.key(collection)
	m.collections[k] = append(m.collections[k], doc)

	return []model.Record{{ID: doc.ID}}, nil
}

// Count reports how many documents collection holds.
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[m.key(collection)])
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemoryStore) Name() string {
	return "memory"
}
