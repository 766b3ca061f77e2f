package surface

import (
	"context"
	"fmt"
	"sync"
	"travelpins/internal/domain"
	"travelpins/internal/ports"
)

// MockMapSurface is an in-memory MapSurface. Screen points map to
// coordinates through a fixed table; every viewport change and annotation
// is recorded for inspection.
type MockMapSurface struct {
	mu          sync.Mutex
	points      map[ports.Point]domain.Coordinates
	regions     []domain.Region
	annotations []ports.Annotation
}

func NewMockMapSurface(points map[ports.Point]domain.Coordinates) *MockMapSurface {
	m := make(map[ports.Point]domain.Coordinates, len(points))
	for p, c := range points {
		m[p] = c
	}
	return &MockMapSurface{points: m}
}

func (s *MockMapSurface) PointToCoordinate(p ports.Point) (domain.Coordinates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.points[p]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("no coordinate for point (%v, %v)", p.X, p.Y)
	}
	return c, nil
}

func (s *MockMapSurface) SetRegion(r domain.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = append(s.regions, r)
}

func (s *MockMapSurface) ShowAnnotation(a ports.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.annotations = append(s.annotations, a)
}

func (s *MockMapSurface) Regions() []domain.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Region(nil), s.regions...)
}

func (s *MockMapSurface) Annotations() []ports.Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.Annotation(nil), s.annotations...)
}

// StaticLocationSource replays a fixed list of fixes and then closes the stream.
type StaticLocationSource struct {
	Fixes []domain.Coordinates
}

func (s StaticLocationSource) Updates(ctx context.Context) <-chan domain.Coordinates {
	out := make(chan domain.Coordinates)

	go func() {
		defer close(out)
		for _, c := range s.Fixes {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
