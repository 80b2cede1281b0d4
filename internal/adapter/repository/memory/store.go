// Package memory provides an in-process destination repository. It backs the
// offline CLI and doubles as a configurable fake (delay, error, call count)
// for use case and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
)

// Store holds destinations in memory, sorted by id.
type Store struct {
	mu           sync.Mutex
	destinations []domain.Destination
	err          error
	delay        time.Duration
	callCount    int
	closed       bool
}

var _ domain.DestinationRepository = (*Store)(nil)

// New creates a store holding a copy of destinations.
func New(destinations []domain.Destination) *Store {
	s := &Store{}
	s.Replace(destinations)
	return s
}

// Replace swaps the stored destinations.
func (s *Store) Replace(destinations []domain.Destination) {
	sorted := append([]domain.Destination(nil), destinations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	s.mu.Lock()
	s.destinations = sorted
	s.mu.Unlock()
}

// WithError makes every read fail with err.
func (s *Store) WithError(err error) *Store {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	return s
}

// WithDelay makes every read wait d before answering.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
	return s
}

// ListDestinations returns a copy of every destination.
func (s *Store) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Destination(nil), s.destinations...), nil
}

// GetDestinations returns the destinations with the given ids ordered by id.
func (s *Store) GetDestinations(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = false
	}

	s.mu.Lock()
	var out []domain.Destination
	for _, d := range s.destinations {
		if _, ok := want[d.ID]; ok {
			want[d.ID] = true
			out = append(out, d)
		}
	}
	s.mu.Unlock()

	var missing []string
	for id, found := range want {
		if !found {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", domain.ErrDestinationNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

// begin counts the call, applies the configured delay and error.
func (s *Store) begin(ctx context.Context) error {
	s.mu.Lock()
	s.callCount++
	delay, err, closed := s.delay, s.err, s.closed
	s.mu.Unlock()

	if closed {
		return domain.NewStoreError("read", fmt.Errorf("store closed"))
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// CallCount returns how many reads were attempted.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Close marks the store closed; later reads fail.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
