package repositories

import (
	"database/sql"
	"errors"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_created_at
	ON places(created_at);
	`

	return execSchema(db, createPlacesQuery, createIndexQuery)
}
