package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"travelpins/internal/domain"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

// MemoryPinRepository is a map-backed PinRepository for tests and demos.
// Setting WriteErr or ReadErr makes every write or read fail with it,
// wrapped in the matching store error.
type MemoryPinRepository struct {
	mu    sync.Mutex
	pins  map[uuid.UUID]domain.Pin
	order []uuid.UUID

	WriteErr error
	ReadErr  error
}

func NewMemoryPinRepository() *MemoryPinRepository {
	return &MemoryPinRepository{pins: make(map[uuid.UUID]domain.Pin)}
}

func (m *MemoryPinRepository) Insert(ctx context.Context, pin *domain.Pin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return fmt.Errorf("insert pin: %w: %w", ports.ErrWriteFailure, m.WriteErr)
	}
	if pin == nil {
		return fmt.Errorf("insert pin: pin is nil: %w", ports.ErrWriteFailure)
	}
	if _, ok := m.pins[pin.ID]; ok {
		return fmt.Errorf("insert pin id=%s: duplicate id: %w", pin.ID, ports.ErrWriteFailure)
	}

	m.pins[pin.ID] = *pin
	m.order = append(m.order, pin.ID)
	return nil
}

func (m *MemoryPinRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, fmt.Errorf("find pin id=%s: %w: %w", id, ports.ErrQueryFailure, m.ReadErr)
	}

	pin, ok := m.pins[id]
	if !ok {
		return nil, fmt.Errorf("find pin id=%s: %w", id, ports.ErrPinNotFound)
	}
	return &pin, nil
}

func (m *MemoryPinRepository) List(ctx context.Context) ([]*domain.Pin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, fmt.Errorf("list pins: %w: %w", ports.ErrQueryFailure, m.ReadErr)
	}

	out := make([]*domain.Pin, 0, len(m.order))
	for _, id := range m.order {
		pin := m.pins[id]
		out = append(out, &pin)
	}
	slices.SortStableFunc(out, func(a, b *domain.Pin) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}
