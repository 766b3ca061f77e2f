package ports

import (
	"context"
	"travelpins/internal/domain"
)

// Screen position of a gesture on the map view.
type Point struct {
	X, Y float64
}

// A marker drawn on the map.
type Annotation struct {
	Coordinates domain.Coordinates
	Title       string
	Subtitle    string
}

// Contract for the platform map view. Rendering is owned by the platform;
// the core only asks it to convert gestures and move the viewport.
type MapSurface interface {
	PointToCoordinate(p Point) (domain.Coordinates, error)
	SetRegion(r domain.Region)
	ShowAnnotation(a Annotation)
}

// Contract for the platform positioning service.
type LocationSource interface {
	// Stream current-location fixes until ctx is done or the source stops.
	Updates(ctx context.Context) <-chan domain.Coordinates
}
