package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"travelpins/internal/domain"
	"travelpins/internal/ports"

	"github.com/google/uuid"
)

var ErrServiceClosed = errors.New("pin service closed")

// User input for a new pin, before an ID is assigned.
type PinDraft struct {
	Title       string
	Note        string
	Coordinates domain.Coordinates
}

// Outcome of a single pin operation. Exactly one of Pin and Err is set.
type PinResult struct {
	Pin *domain.Pin
	Err error
}

// Outcome of listing pins.
type ListResult struct {
	Pins []*domain.Pin
	Err  error
}

// PinService runs every store call on one background goroutine so callers
// on an event loop never block on I/O. Each call returns a channel that
// receives exactly one result.
type PinService struct {
	repo ports.PinRepository

	mu     sync.RWMutex
	closed bool
	jobs   chan func()
	wg     sync.WaitGroup
}

// NewPinService starts the worker. queue bounds how many calls may wait
// before callers block on submission.
func NewPinService(repo ports.PinRepository, queue int) *PinService {
	if queue < 1 {
		queue = 1
	}

	s := &PinService{
		repo: repo,
		jobs: make(chan func(), queue),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for job := range s.jobs {
			job()
		}
	}()

	return s
}

// Close stops accepting work, runs what is already queued, and waits for the worker.
func (s *PinService) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.jobs)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Save validates the draft, assigns a new ID and persists it.
// Write failures are delivered to the caller instead of being dropped.
func (s *PinService) Save(ctx context.Context, d PinDraft) <-chan PinResult {
	out := make(chan PinResult, 1)

	pin, err := domain.NewPin(d.Title, d.Note, d.Coordinates)
	if err != nil {
		out <- PinResult{Err: fmt.Errorf("save pin: %w", err)}
		return out
	}

	err = s.submit(ctx, func() {
		if err := ctx.Err(); err != nil {
			out <- PinResult{Err: fmt.Errorf("save pin: %w", err)}
			return
		}
		if err := s.repo.Insert(ctx, pin); err != nil {
			log.Printf("save pin failed: id=%s err=%v", pin.ID, err)
			out <- PinResult{Err: fmt.Errorf("save pin: %w", err)}
			return
		}
		out <- PinResult{Pin: pin}
	})
	if err != nil {
		out <- PinResult{Err: fmt.Errorf("save pin: %w", err)}
	}

	return out
}

// Find looks up a pin by ID. A missing pin yields ports.ErrPinNotFound;
// store failures yield an error wrapping ports.ErrQueryFailure.
func (s *PinService) Find(ctx context.Context, id uuid.UUID) <-chan PinResult {
	out := make(chan PinResult, 1)

	err := s.submit(ctx, func() {
		if err := ctx.Err(); err != nil {
			out <- PinResult{Err: fmt.Errorf("find pin: %w", err)}
			return
		}
		pin, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, ports.ErrPinNotFound) {
				log.Printf("find pin failed: id=%s err=%v", id, err)
			}
			out <- PinResult{Err: fmt.Errorf("find pin: %w", err)}
			return
		}
		out <- PinResult{Pin: pin}
	})
	if err != nil {
		out <- PinResult{Err: fmt.Errorf("find pin: %w", err)}
	}

	return out
}

// List returns every saved pin, oldest first.
func (s *PinService) List(ctx context.Context) <-chan ListResult {
	out := make(chan ListResult, 1)

	err := s.submit(ctx, func() {
		if err := ctx.Err(); err != nil {
			out <- ListResult{Err: fmt.Errorf("list pins: %w", err)}
			return
		}
		pins, err := s.repo.List(ctx)
		if err != nil {
			log.Printf("list pins failed: err=%v", err)
			out <- ListResult{Err: fmt.Errorf("list pins: %w", err)}
			return
		}
		out <- ListResult{Pins: pins}
	})
	if err != nil {
		out <- ListResult{Err: fmt.Errorf("list pins: %w", err)}
	}

	return out
}

// submit queues job, or reports why it could not. A nil return means job
// will run exactly once.
func (s *PinService) submit(ctx context.Context, job func()) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrServiceClosed
	}

	select {
	case s.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
