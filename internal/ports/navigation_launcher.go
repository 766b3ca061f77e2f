package ports

import (
	"context"
	"travelpins/internal/domain"
)

// Contract for handing a destination to an external navigation app.
// Launching is fire-and-forget; the error only reports a failed handoff.
type NavigationLauncher interface {
	Launch(ctx context.Context, dest domain.Coordinates, name string) error
}
