package ports

import (
	"context"
	"errors"
	"travelpins/internal/domain"

	"github.com/google/uuid"
)

var (
	// No pin with the requested ID exists. Not a store failure.
	ErrPinNotFound = errors.New("pin not found")
	// The store could not commit a write.
	ErrWriteFailure = errors.New("pin store write failed")
	// The store could not answer a read.
	ErrQueryFailure = errors.New("pin store query failed")
)

// Port: local persistence for Pin records. Pins are append-only.
type PinRepository interface {
	// Append a new pin. Errors wrap ErrWriteFailure.
	Insert(ctx context.Context, pin *domain.Pin) error
	// Return the pin with the given ID, ErrPinNotFound, or an error wrapping ErrQueryFailure.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	// Return every saved pin, oldest first.
	List(ctx context.Context) ([]*domain.Pin, error)
}
