package export

import (
	"encoding/json"
	"testing"
	"time"
	"travelpins/internal/domain"
)

func TestSnapshotKey(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	if got := SnapshotKey(at); got != "snapshots/places-20260304T040607Z.json" {
		t.Fatalf("SnapshotKey = %q", got)
	}
}

func TestEncodeSnapshotUsesPlacesLayout(t *testing.T) {
	pin, err := domain.NewPin("Cafe", "Great coffee", domain.Coordinates{Lat: 37.77, Lon: -122.41})
	if err != nil {
		t.Fatalf("new pin: %v", err)
	}

	data, err := EncodeSnapshot([]*domain.Pin{pin}, time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded struct {
		Places []map[string]any `json:"places"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Places) != 1 {
		t.Fatalf("places = %d, want 1", len(decoded.Places))
	}

	p := decoded.Places[0]
	if p["id"] != pin.ID.String() || p["title"] != "Cafe" || p["subtitle"] != "Great coffee" {
		t.Fatalf("unexpected place %v", p)
	}
}

func TestEncodeSnapshotEmpty(t *testing.T) {
	data, err := EncodeSnapshot(nil, time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded struct {
		Places []any `json:"places"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Places == nil {
		t.Fatal("expected empty array, got null")
	}
}

func TestNewMinioExporterRequiresCredentials(t *testing.T) {
	if _, err := NewMinioExporter(MinioConfig{Endpoint: "localhost:9000"}); err == nil {
		t.Fatal("expected error without credentials")
	}
}
