package store

import (
	"context"
	"path/filepath"
	"testing"
	"travelpins/internal/domain"
)

func TestOpenDefaultsToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.db")

	s, err := Open(Config{SQLitePath: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Driver != "sqlite" {
		t.Fatalf("driver = %q", s.Driver)
	}

	pin, err := domain.NewPin("Cafe", "", domain.Coordinates{Lat: 1, Lon: 2})
	if err != nil {
		t.Fatalf("new pin: %v", err)
	}
	if err := s.Repo.Insert(context.Background(), pin); err != nil {
		t.Fatalf("insert: %v", err)
	}
	s.Close()

	// The file survives a reopen.
	s, err = Open(Config{SQLitePath: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if _, err := s.Repo.FindByID(context.Background(), pin.ID); err != nil {
		t.Fatalf("find after reopen: %v", err)
	}
}
