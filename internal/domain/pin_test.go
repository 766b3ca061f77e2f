package domain

import (
	"errors"
	"testing"
)

func TestNewPin(t *testing.T) {
	pin, err := NewPin("  Cafe ", "Great coffee", Coordinates{Lat: 37.77, Lon: -122.41})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pin.Title != "Cafe" {
		t.Errorf("title = %q, want %q", pin.Title, "Cafe")
	}
	if pin.Note != "Great coffee" {
		t.Errorf("note = %q, want %q", pin.Note, "Great coffee")
	}
	if pin.Coordinates.Lat != 37.77 || pin.Coordinates.Lon != -122.41 {
		t.Errorf("coordinates = %+v", pin.Coordinates)
	}
	if pin.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestNewPinAssignsDistinctIDs(t *testing.T) {
	c := Coordinates{Lat: 1, Lon: 2}
	a, err := NewPin("same", "same", c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewPin("same", "same", c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %s", a.ID)
	}
}

func TestNewPinRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		coords Coordinates
		want   error
	}{
		{"blank title", "   ", Coordinates{Lat: 0, Lon: 0}, ErrEmptyTitle},
		{"latitude too high", "x", Coordinates{Lat: 90.1, Lon: 0}, ErrInvalidCoordinates},
		{"latitude too low", "x", Coordinates{Lat: -91, Lon: 0}, ErrInvalidCoordinates},
		{"longitude too high", "x", Coordinates{Lat: 0, Lon: 180.5}, ErrInvalidCoordinates},
		{"longitude too low", "x", Coordinates{Lat: 0, Lon: -181}, ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPin(tt.title, "", tt.coords)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCoordinatesBoundsAreInclusive(t *testing.T) {
	for _, c := range []Coordinates{{90, 180}, {-90, -180}, {0, 0}} {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{Lat: 37.77, Lon: -122.41}
	if got := c.String(); got != "37.77,-122.41" {
		t.Fatalf("String() = %q", got)
	}
}
