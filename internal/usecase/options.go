// Package usecase contains the ranking business logic. It fetches destination
// data, turns it into MABAC alternatives and announces completed runs.
package usecase

import (
	"time"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/events"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/logger"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/timeutil"
)

// RankOptions contains optional parameters for ranking stored destinations.
type RankOptions struct {
	// DestinationIDs restricts the ranking to these destinations (default: all)
	DestinationIDs []string

	// Filter narrows the fetched destinations before ranking (optional)
	Filter *domain.FilterOptions

	// RecommendedTop overrides how many leading ranks are flagged recommended
	RecommendedTop int
}

// Option customises the ranking use case's collaborators.
type Option func(*rankingUseCase)

// WithPublisher sets where ranking notifications are sent.
func WithPublisher(p events.Publisher) Option {
	return func(uc *rankingUseCase) { uc.publisher = p }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(uc *rankingUseCase) { uc.recorder = r }
}

// WithClock sets the clock used for run timestamps and durations.
func WithClock(c timeutil.Clock) Option {
	return func(uc *rankingUseCase) { uc.clock = c }
}

// WithLocation sets the timezone run timestamps are reported in.
func WithLocation(loc *time.Location) Option {
	return func(uc *rankingUseCase) { uc.loc = loc }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(uc *rankingUseCase) { uc.log = l }
}

// WithIDGenerator sets the run id generator.
func WithIDGenerator(fn func() string) Option {
	return func(uc *rankingUseCase) { uc.newID = fn }
}
