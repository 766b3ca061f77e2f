package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"travelpins/internal/domain"
	"travelpins/internal/platform/obs"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

// SQLPinRepository is a Postgres-backed PinRepository (pgx stdlib driver).
type SQLPinRepository struct {
	DB *sql.DB
}

func NewSQLPinRepository(db *sql.DB) *SQLPinRepository {
	return &SQLPinRepository{DB: db}
}

func (s *SQLPinRepository) Insert(ctx context.Context, pin *domain.Pin) (err error) {
	defer obs.Time(ctx, "pins.sql.Insert")(&err)

	if s.DB == nil {
		return fmt.Errorf("insert pin: db is nil: %w", ports.ErrWriteFailure)
	}
	if pin == nil {
		return fmt.Errorf("insert pin: pin is nil: %w", ports.ErrWriteFailure)
	}

	q := `
	INSERT INTO places (id, title, subtitle, latitude, longitude, created_at)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = s.DB.ExecContext(ctx, q,
		pin.ID.String(),
		pin.Title,
		pin.Note,
		pin.Coordinates.Lat,
		pin.Coordinates.Lon,
		pin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pin id=%s: %w: %w", pin.ID, ports.ErrWriteFailure, err)
	}

	return nil
}

func (s *SQLPinRepository) FindByID(ctx context.Context, id uuid.UUID) (_ *domain.Pin, err error) {
	defer obs.Time(ctx, "pins.sql.FindByID")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("find pin: db is nil: %w", ports.ErrQueryFailure)
	}

	q := `
	SELECT id::text, title, subtitle, latitude, longitude, created_at
	FROM places
	WHERE id = $1;
	`
	pin, err := scanSQLPin(s.DB.QueryRowContext(ctx, q, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find pin id=%s: %w", id, ports.ErrPinNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find pin id=%s: %w: %w", id, ports.ErrQueryFailure, err)
	}

	return pin, nil
}

func (s *SQLPinRepository) List(ctx context.Context) (_ []*domain.Pin, err error) {
	defer obs.Time(ctx, "pins.sql.List")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("list pins: db is nil: %w", ports.ErrQueryFailure)
	}

	q := `
	SELECT id::text, title, subtitle, latitude, longitude, created_at
	FROM places
	ORDER BY created_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list pins: query places table: %w: %w", ports.ErrQueryFailure, err)
	}
	defer rows.Close()

	pins := make([]*domain.Pin, 0, 16)
	for rows.Next() {
		pin, err := scanSQLPin(rows)
		if err != nil {
			return nil, fmt.Errorf("list pins: scan rows: %w: %w", ports.ErrQueryFailure, err)
		}
		pins = append(pins, pin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins: row iteration: %w: %w", ports.ErrQueryFailure, err)
	}

	return pins, nil
}

func scanSQLPin(row rowScanner) (*domain.Pin, error) {
	var (
		rawID string
		pin   domain.Pin
	)
	if err := row.Scan(&rawID, &pin.Title, &pin.Note, &pin.Coordinates.Lat, &pin.Coordinates.Lon, &pin.CreatedAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", rawID, err)
	}
	pin.ID = id
	pin.CreatedAt = pin.CreatedAt.UTC()

	return &pin, nil
}
