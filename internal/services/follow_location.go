package services

import (
	"context"
	"log"
	"travelpins/internal/domain"
	"travelpins/internal/ports"
)

// FollowLocation recenters the map on every location fix until ctx is
// cancelled or the source closes its stream. Out-of-range fixes are skipped.
func FollowLocation(ctx context.Context, src ports.LocationSource, surface ports.MapSurface) error {
	updates := src.Updates(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-updates:
			if !ok {
				return nil
			}
			if !c.Valid() {
				log.Printf("follow location: skipping invalid fix lat=%v lon=%v", c.Lat, c.Lon)
				continue
			}
			surface.SetRegion(domain.RegionAround(c))
		}
	}
}
