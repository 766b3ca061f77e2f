package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("pin title must not be empty")

// Represents a named point of interest saved by the user.
// A Pin is created once, when the user saves it, and is never updated
// or deleted afterwards. ID is the only lookup key.
type Pin struct {
	ID          uuid.UUID
	Title       string
	Note        string
	Coordinates Coordinates
	CreatedAt   time.Time
}

// NewPin validates user input and builds a Pin with a fresh random ID.
// CreatedAt is truncated to microseconds so it survives every supported store.
func NewPin(title, note string, coords Coordinates) (*Pin, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("new pin: %w", ErrEmptyTitle)
	}
	if !coords.Valid() {
		return nil, fmt.Errorf("new pin: lat=%v lon=%v: %w", coords.Lat, coords.Lon, ErrInvalidCoordinates)
	}

	return &Pin{
		ID:          uuid.New(),
		Title:       title,
		Note:        strings.TrimSpace(note),
		Coordinates: coords,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}, nil
}

// Report whether two pins carry the same stored fields.
func (p *Pin) Equal(o *Pin) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.ID == o.ID &&
		p.Title == o.Title &&
		p.Note == o.Note &&
		p.Coordinates == o.Coordinates &&
		p.CreatedAt.Equal(o.CreatedAt)
}
