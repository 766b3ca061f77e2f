package services

import (
	"context"
	"errors"
	"fmt"
	"travelpins/internal/domain"
	"travelpins/internal/ports"
)

var (
	ErrWrongMode            = errors.New("operation not allowed in this mode")
	ErrNoCoordinateSelected = errors.New("no coordinate selected")
	ErrPinNotLoaded         = errors.New("pin not loaded")
	ErrFlowDone             = errors.New("flow already finished")
)

// DetailFlow drives the pin detail screen.
//
// In create mode the user long-presses the map to choose a coordinate,
// enters a title and note, and saves; the flow is then done and the user
// is back on the map. In view mode the flow loads an existing pin, centers
// the map on it and can hand it to the navigation app. There is no path
// from view mode back to editing.
type DetailFlow struct {
	mode     domain.Mode
	pins     *PinService
	surface  ports.MapSurface
	launcher ports.NavigationLauncher

	selected *domain.Coordinates
	pin      *domain.Pin
	done     bool
}

func NewDetailFlow(
	mode domain.Mode,
	pins *PinService,
	surface ports.MapSurface,
	launcher ports.NavigationLauncher,
) *DetailFlow {
	return &DetailFlow{
		mode:     mode,
		pins:     pins,
		surface:  surface,
		launcher: launcher,
	}
}

func (f *DetailFlow) Mode() domain.Mode { return f.mode }

// Done reports whether a create flow has saved its pin.
func (f *DetailFlow) Done() bool { return f.done }

// Pin returns the saved or loaded pin, if any.
func (f *DetailFlow) Pin() *domain.Pin { return f.pin }

// PlaceAt handles a long press: it converts the screen point to a
// coordinate, drops a marker there and remembers it for Save.
// Pressing again moves the selection.
func (f *DetailFlow) PlaceAt(p ports.Point) (domain.Coordinates, error) {
	if !f.mode.IsCreate() {
		return domain.Coordinates{}, fmt.Errorf("place pin: %s: %w", f.mode, ErrWrongMode)
	}
	if f.done {
		return domain.Coordinates{}, fmt.Errorf("place pin: %w", ErrFlowDone)
	}

	c, err := f.surface.PointToCoordinate(p)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("place pin: convert point: %w", err)
	}
	if !c.Valid() {
		return domain.Coordinates{}, fmt.Errorf("place pin: %w", domain.ErrInvalidCoordinates)
	}

	f.selected = &c
	f.surface.ShowAnnotation(ports.Annotation{Coordinates: c})
	return c, nil
}

// Save persists the selected coordinate with title and note and waits for
// the store to confirm. On failure the flow stays open so the user can retry.
func (f *DetailFlow) Save(ctx context.Context, title, note string) (*domain.Pin, error) {
	if !f.mode.IsCreate() {
		return nil, fmt.Errorf("save pin: %s: %w", f.mode, ErrWrongMode)
	}
	if f.done {
		return nil, fmt.Errorf("save pin: %w", ErrFlowDone)
	}
	if f.selected == nil {
		return nil, fmt.Errorf("save pin: %w", ErrNoCoordinateSelected)
	}

	res, err := await(ctx, f.pins.Save(ctx, PinDraft{
		Title:       title,
		Note:        note,
		Coordinates: *f.selected,
	}))
	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return nil, res.Err
	}

	f.pin = res.Pin
	f.done = true
	return res.Pin, nil
}

// Enter loads the pin being viewed and centers the map on it.
// A missing pin returns an error wrapping ports.ErrPinNotFound.
func (f *DetailFlow) Enter(ctx context.Context) (*domain.Pin, error) {
	id, ok := f.mode.PinID()
	if !ok {
		return nil, fmt.Errorf("enter pin view: %s: %w", f.mode, ErrWrongMode)
	}

	res, err := await(ctx, f.pins.Find(ctx, id))
	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return nil, res.Err
	}

	pin := res.Pin
	f.pin = pin
	f.surface.SetRegion(domain.RegionAround(pin.Coordinates))
	f.surface.ShowAnnotation(ports.Annotation{
		Coordinates: pin.Coordinates,
		Title:       pin.Title,
		Subtitle:    pin.Note,
	})

	return pin, nil
}

// Navigate opens turn-by-turn directions to the loaded pin.
func (f *DetailFlow) Navigate(ctx context.Context) error {
	if f.mode.IsCreate() {
		return fmt.Errorf("navigate: %s: %w", f.mode, ErrWrongMode)
	}
	if f.pin == nil {
		return fmt.Errorf("navigate: %w", ErrPinNotLoaded)
	}

	if err := f.launcher.Launch(ctx, f.pin.Coordinates, f.pin.Title); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	return nil
}

func await[T any](ctx context.Context, ch <-chan T) (T, error) {
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
