package requests

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/campusdesk/internal/library/models"
)

// MemoryRepository keeps the collection in memory. SaveErr, when set, is
// returned by Save without storing anything.
type MemoryRepository struct {
	mu      sync.Mutex
	pending []models.Request
	saves   int

	LoadErr error
	SaveErr error
}

func NewMemoryRepository(initial ...models.Request) *MemoryRepository {
	return &MemoryRepository{pending: append([]models.Request(nil), initial...)}
}

func (m *MemoryRepository) Load(ctx context.Context) ([]models.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.Request(nil), m.pending...), nil
}

func (m *MemoryRepository) Save(ctx context.Context, pending []models.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.pending = append([]models.Request(nil), pending...)
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryRepository) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
