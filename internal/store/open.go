package store

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"travelpins/internal/adapters/repositories"
	"travelpins/internal/platform/db"
	"travelpins/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Config selects the backing database. A non-empty DatabaseURL selects
// Postgres; otherwise the local SQLite file at SQLitePath is used.
type Config struct {
	SQLitePath  string
	DatabaseURL string
}

// Store is an opened PinRepository together with its database handle.
type Store struct {
	Repo   ports.PinRepository
	DB     *sql.DB
	Driver string
}

func (s *Store) Close() error { return s.DB.Close() }

// Open connects to the configured database and ensures the schema exists.
func Open(cfg Config) (*Store, error) {
	if url := strings.TrimSpace(cfg.DatabaseURL); url != "" {
		conn, err := db.Open(url)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		log.Println("store: using postgres")
		return &Store{Repo: repositories.NewSQLPinRepository(conn), DB: conn, Driver: "postgres"}, nil
	}

	conn, err := db.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Printf("store: using sqlite path=%s", cfg.SQLitePath)
	return &Store{Repo: repositories.NewSqlitePinRepository(conn), DB: conn, Driver: "sqlite"}, nil
}
