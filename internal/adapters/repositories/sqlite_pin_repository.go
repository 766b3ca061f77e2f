package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"travelpins/internal/domain"
	"travelpins/internal/platform/obs"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

// SQLite-backed implementation of the PinRepository port.
// This is the default on-device store.
type SqlitePinRepository struct{ DB *sql.DB }

func NewSqlitePinRepository(db *sql.DB) *SqlitePinRepository {
	return &SqlitePinRepository{DB: db}
}

// Append a pin to the places table.
func (s *SqlitePinRepository) Insert(ctx context.Context, pin *domain.Pin) (err error) {
	defer obs.Time(ctx, "pins.sqlite.Insert")(&err)

	if s.DB == nil {
		return fmt.Errorf("insert pin: DB is nil: %w", ports.ErrWriteFailure)
	}
	if pin == nil {
		return fmt.Errorf("insert pin: pin is nil: %w", ports.ErrWriteFailure)
	}

	query := `
	INSERT INTO places (
		id,
		title,
		subtitle,
		latitude,
		longitude,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		pin.ID.String(),
		pin.Title,
		pin.Note,
		pin.Coordinates.Lat,
		pin.Coordinates.Lon,
		pin.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert pin id=%s: %w: %w", pin.ID, ports.ErrWriteFailure, err)
	}

	return nil
}

// Return the pin whose canonical id string matches.
func (s *SqlitePinRepository) FindByID(ctx context.Context, id uuid.UUID) (_ *domain.Pin, err error) {
	defer obs.Time(ctx, "pins.sqlite.FindByID")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("find pin: DB is nil: %w", ports.ErrQueryFailure)
	}

	query := `
	SELECT
		id,
		title,
		subtitle,
		latitude,
		longitude,
		created_at
	FROM places
	WHERE id = ?;
	`
	pin, err := scanSqlitePin(s.DB.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find pin id=%s: %w", id, ports.ErrPinNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find pin id=%s: %w: %w", id, ports.ErrQueryFailure, err)
	}

	return pin, nil
}

// Return all pins, oldest first.
func (s *SqlitePinRepository) List(ctx context.Context) (_ []*domain.Pin, err error) {
	defer obs.Time(ctx, "pins.sqlite.List")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("list pins: DB is nil: %w", ports.ErrQueryFailure)
	}

	query := `
	SELECT
		id,
		title,
		subtitle,
		latitude,
		longitude,
		created_at
	FROM places
	ORDER BY created_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pins: query places table: %w: %w", ports.ErrQueryFailure, err)
	}
	defer rows.Close()

	pins := make([]*domain.Pin, 0, 16)
	for rows.Next() {
		pin, err := scanSqlitePin(rows)
		if err != nil {
			return nil, fmt.Errorf("list pins: scan row: %w: %w", ports.ErrQueryFailure, err)
		}
		pins = append(pins, pin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins: row iteration: %w: %w", ports.ErrQueryFailure, err)
	}

	return pins, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSqlitePin(row rowScanner) (*domain.Pin, error) {
	var (
		rawID     string
		pin       domain.Pin
		createdAt int64
	)
	if err := row.Scan(&rawID, &pin.Title, &pin.Note, &pin.Coordinates.Lat, &pin.Coordinates.Lon, &createdAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", rawID, err)
	}
	pin.ID = id
	pin.CreatedAt = time.Unix(0, createdAt).UTC()

	return &pin, nil
}
