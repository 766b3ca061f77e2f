package navigation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"travelpins/internal/domain"
)

const appleMapsBase = "https://maps.apple.com/"

// Opener hands a URL to whatever can open it (a browser, the OS, a client).
type Opener func(ctx context.Context, rawURL string) error

// URLLauncher implements ports.NavigationLauncher by building a driving
// directions URL for the system maps app and passing it to an Opener.
type URLLauncher struct {
	open Opener
}

// NewURLLauncher returns a launcher using open. A nil open logs the URL.
func NewURLLauncher(open Opener) *URLLauncher {
	if open == nil {
		open = logOpener
	}
	return &URLLauncher{open: open}
}

func (l *URLLauncher) Launch(ctx context.Context, dest domain.Coordinates, name string) error {
	u, err := DirectionsURL(dest, name)
	if err != nil {
		return fmt.Errorf("launch navigation: %w", err)
	}

	if err := l.open(ctx, u); err != nil {
		return fmt.Errorf("launch navigation: open %q: %w", u, err)
	}

	return nil
}

// DirectionsURL returns a driving-directions link to dest labelled with name.
func DirectionsURL(dest domain.Coordinates, name string) (string, error) {
	if !dest.Valid() {
		return "", fmt.Errorf("directions url: %w", domain.ErrInvalidCoordinates)
	}

	params := url.Values{}
	params.Set("daddr", dest.String())
	params.Set("dirflg", "d")
	if name = strings.TrimSpace(name); name != "" {
		params.Set("q", name)
	}

	return appleMapsBase + "?" + params.Encode(), nil
}

func logOpener(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return errors.New("empty url")
	}
	log.Printf("navigation url=%s", rawURL)
	return nil
}
