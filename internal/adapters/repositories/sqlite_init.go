package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"travelpins/internal/domain"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_created_at
	ON places(created_at);
	`

	return execSchema(db, createPlacesQuery, createIndexQuery)
}

func execSchema(db *sql.DB, statements ...string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PinSeed struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Note      string  `json:"note"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Populate the store with demo pins from a JSON file.
// Seeds with an id already present are skipped, so seeding is repeatable.
// Returns the number of pins inserted.
func SeedFromJSON(ctx context.Context, repo ports.PinRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed pins: read %q: %w", jsonPath, err)
	}

	var data []PinSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed pins: parse json: %w", err)
	}

	pins := make([]*domain.Pin, 0, len(data))
	for i, item := range data {
		pin, err := domain.NewPin(item.Title, item.Note, domain.Coordinates{Lat: item.Latitude, Lon: item.Longitude})
		if err != nil {
			return 0, fmt.Errorf("seed pins: item at index %d: %w", i+1, err)
		}

		if id := strings.TrimSpace(item.ID); id != "" {
			parsed, err := uuid.Parse(id)
			if err != nil {
				return 0, fmt.Errorf("seed pins: invalid id at index %d: %w", i+1, err)
			}
			pin.ID = parsed
		}
		pins = append(pins, pin)
	}

	inserted := 0
	for _, pin := range pins {
		_, err := repo.FindByID(ctx, pin.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ports.ErrPinNotFound) {
			return inserted, fmt.Errorf("seed pins: lookup id=%s: %w", pin.ID, err)
		}

		if err := repo.Insert(ctx, pin); err != nil {
			return inserted, fmt.Errorf("seed pins: %w", err)
		}
		inserted++
	}

	return inserted, nil
}
