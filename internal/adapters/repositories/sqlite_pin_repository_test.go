package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"travelpins/internal/domain"
	"travelpins/internal/platform/db"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

func newTestRepo(t *testing.T) (*SqlitePinRepository, *sql.DB) {
	t.Helper()

	conn, err := db.OpenSQLite(db.MemoryPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqlitePinRepository(conn), conn
}

func mustPin(t *testing.T, title, note string, lat, lon float64) *domain.Pin {
	t.Helper()
	pin, err := domain.NewPin(title, note, domain.Coordinates{Lat: lat, Lon: lon})
	if err != nil {
		t.Fatalf("new pin: %v", err)
	}
	return pin
}

func TestSqlitePinRepositoryRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	pin := mustPin(t, "Cafe", "Great coffee", 37.77, -122.41)
	if err := repo.Insert(ctx, pin); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.FindByID(ctx, pin.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if got.Title != "Cafe" || got.Note != "Great coffee" {
		t.Errorf("got title=%q note=%q", got.Title, got.Note)
	}
	if got.Coordinates.Lat != 37.77 || got.Coordinates.Lon != -122.41 {
		t.Errorf("got coordinates %+v", got.Coordinates)
	}
	if !got.Equal(pin) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, pin)
	}
}

func TestSqlitePinRepositoryFindMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ports.ErrPinNotFound) {
		t.Fatalf("err = %v, want ErrPinNotFound", err)
	}
	if errors.Is(err, ports.ErrQueryFailure) {
		t.Fatalf("not-found must not be reported as a query failure: %v", err)
	}
}

func TestSqlitePinRepositoryIdenticalPinsPersistIndependently(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := mustPin(t, "Bench", "Sunset view", 48.85, 2.35)
	b := mustPin(t, "Bench", "Sunset view", 48.85, 2.35)
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids")
	}

	for _, p := range []*domain.Pin{a, b} {
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", p.ID, err)
		}
	}

	for _, p := range []*domain.Pin{a, b} {
		got, err := repo.FindByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("find %s: %v", p.ID, err)
		}
		if got.ID != p.ID {
			t.Errorf("find %s returned %s", p.ID, got.ID)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list returned %d pins, want 2", len(all))
	}
}

func TestSqlitePinRepositoryDuplicateIDIsWriteFailure(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	pin := mustPin(t, "Museum", "", 40.0, -3.7)
	if err := repo.Insert(ctx, pin); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := repo.Insert(ctx, pin)
	if !errors.Is(err, ports.ErrWriteFailure) {
		t.Fatalf("err = %v, want ErrWriteFailure", err)
	}
}

func TestSqlitePinRepositoryQueryFailure(t *testing.T) {
	repo, conn := newTestRepo(t)

	if _, err := conn.Exec(`DROP TABLE places;`); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ports.ErrQueryFailure) {
		t.Fatalf("err = %v, want ErrQueryFailure", err)
	}
	if errors.Is(err, ports.ErrPinNotFound) {
		t.Fatalf("query failure reported as not found: %v", err)
	}

	if err := repo.Insert(context.Background(), mustPin(t, "x", "", 0, 0)); !errors.Is(err, ports.ErrWriteFailure) {
		t.Fatalf("insert err = %v, want ErrWriteFailure", err)
	}
}

func TestSqlitePinRepositoryListOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := mustPin(t, "first", "", 1, 1)
	second := mustPin(t, "second", "", 2, 2)
	second.CreatedAt = first.CreatedAt.Add(1)

	// Insert out of order; List sorts by creation time.
	for _, p := range []*domain.Pin{second, first} {
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	pins, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pins) != 2 || pins[0].Title != "first" || pins[1].Title != "second" {
		t.Fatalf("unexpected order: %+v", pins)
	}
}

func TestNilDBReturnsTypedErrors(t *testing.T) {
	repo := &SqlitePinRepository{}
	ctx := context.Background()

	if err := repo.Insert(ctx, mustPin(t, "x", "", 0, 0)); !errors.Is(err, ports.ErrWriteFailure) {
		t.Errorf("insert err = %v", err)
	}
	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, ports.ErrQueryFailure) {
		t.Errorf("find err = %v", err)
	}
	if _, err := repo.List(ctx); !errors.Is(err, ports.ErrQueryFailure) {
		t.Errorf("list err = %v", err)
	}
}
