package store

import (
	"context"
	"sync"
	"time"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// MemoryStore keeps saved inputs for the life of the process.
type MemoryStore struct {
	mu        sync.RWMutex
	freshness time.Duration
	data      map[domain.Kind][]byte
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore(freshness time.Duration) *MemoryStore {
	return &MemoryStore{freshness: freshness, data: make(map[domain.Kind][]byte)}
}

func (m *MemoryStore) Save(ctx context.Context, kind domain.Kind, params any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, _, err := encodeRecord(params)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[kind] = data
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, kind domain.Kind, into any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	data, ok := m.data[kind]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return decodeRecord(data, m.freshness, into)
}

func (m *MemoryStore) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, kind)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
