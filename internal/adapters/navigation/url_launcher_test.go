package navigation

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"travelpins/internal/domain"
)

func TestDirectionsURL(t *testing.T) {
	raw, err := DirectionsURL(domain.Coordinates{Lat: 37.77, Lon: -122.41}, "Cafe & Co")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if u.Host != "maps.apple.com" {
		t.Errorf("host = %q", u.Host)
	}

	q := u.Query()
	if got := q.Get("daddr"); got != "37.77,-122.41" {
		t.Errorf("daddr = %q", got)
	}
	if got := q.Get("q"); got != "Cafe & Co" {
		t.Errorf("q = %q", got)
	}
	if got := q.Get("dirflg"); got != "d" {
		t.Errorf("dirflg = %q", got)
	}
}

func TestDirectionsURLOmitsBlankName(t *testing.T) {
	raw, err := DirectionsURL(domain.Coordinates{Lat: 1, Lon: 2}, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(raw)
	if u.Query().Has("q") {
		t.Fatalf("expected no q param in %q", raw)
	}
}

func TestLaunchPassesURLToOpener(t *testing.T) {
	var opened string
	l := NewURLLauncher(func(ctx context.Context, rawURL string) error {
		opened = rawURL
		return nil
	})

	if err := l.Launch(context.Background(), domain.Coordinates{Lat: 1, Lon: 2}, "Pier"); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if opened == "" {
		t.Fatal("opener not called")
	}
}

func TestLaunchRejectsInvalidCoordinates(t *testing.T) {
	l := NewURLLauncher(func(ctx context.Context, rawURL string) error {
		t.Fatal("opener should not be called")
		return nil
	})

	err := l.Launch(context.Background(), domain.Coordinates{Lat: 100, Lon: 0}, "x")
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("err = %v, want ErrInvalidCoordinates", err)
	}
}
