package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps short links in a mutex-guarded map. It backs tests
// and storeless development runs; nothing survives a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	links map[string]ShortLink
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		links: make(map[string]ShortLink),
	}, nil
}

func (m *MemoryStorage) Insert(_ context.Context, link ShortLink) (*ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.ShortID]; exists {
		return nil, ErrDuplicateShortID
	}

	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	m.links[link.ShortID] = link
	return &link, nil
}

func (m *MemoryStorage) FindByShortID(_ context.Context, shortID string) (*ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.links[shortID]
	if !exists {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (m *MemoryStorage) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, link := range m.links {
		if link.CreatedAt.Before(cutoff) {
			delete(m.links, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
