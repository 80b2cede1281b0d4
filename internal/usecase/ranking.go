package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/events"
	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/logger"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/retry"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/timeutil"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

// DefaultTimeout bounds a stored ranking, store fetch included.
const DefaultTimeout = 5 * time.Second

// RankingUseCase defines the ranking operations.
type RankingUseCase interface {
	// RankStored ranks destinations from the store with the active criteria catalog.
	RankStored(ctx context.Context, opts RankOptions) (*domain.RankingRun, error)

	// RankCustom ranks caller-supplied criteria and alternatives.
	RankCustom(ctx context.Context, criteria []mabac.Criterion, alternatives []mabac.Alternative) (*domain.RankingRun, error)

	// Criteria returns the active catalog definitions.
	Criteria() []criteria.Definition
}

// Recorder receives one observation per calculation.
type Recorder interface {
	ObserveCalculation(source string, alternatives int, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, int, time.Duration, error) {}

// Config contains configuration options for the use case.
type Config struct {
	Timeout        time.Duration
	RecommendedTop int
	SubjectPrefix  string
	StoreRetry     retry.Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        DefaultTimeout,
		RecommendedTop: domain.DefaultRecommendedTop,
		SubjectPrefix:  events.DefaultSubjectPrefix,
		StoreRetry:     retry.StoreConfig(domain.IsRetryable),
	}
}

type rankingUseCase struct {
	repo      domain.DestinationRepository
	catalog   *criteria.Catalog
	cfg       Config
	publisher events.Publisher
	recorder  Recorder
	clock     timeutil.Clock
	loc       *time.Location
	log       *logger.Logger
	newID     func() string
}

// NewRankingUseCase creates a RankingUseCase. A nil catalog uses the built-in
// defaults; a nil config uses DefaultConfig.
func NewRankingUseCase(repo domain.DestinationRepository, catalog *criteria.Catalog, config *Config, opts ...Option) RankingUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Timeout > 0 {
			cfg.Timeout = config.Timeout
		}
		if config.RecommendedTop > 0 {
			cfg.RecommendedTop = config.RecommendedTop
		}
		if config.SubjectPrefix != "" {
			cfg.SubjectPrefix = config.SubjectPrefix
		}
		if config.StoreRetry.MaxAttempts > 0 {
			cfg.StoreRetry = config.StoreRetry
		}
	}
	if catalog == nil {
		catalog = criteria.Default()
	}

	uc := &rankingUseCase{
		repo:      repo,
		catalog:   catalog,
		cfg:       cfg,
		publisher: events.NopPublisher{},
		recorder:  nopRecorder{},
		clock:     timeutil.NewRealClock(),
		loc:       time.UTC,
		log:       logger.Nop(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.cfg.StoreRetry = uc.cfg.StoreRetry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		uc.log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying destination store read")
	})
	return uc
}

func (uc *rankingUseCase) Criteria() []criteria.Definition {
	return append([]criteria.Definition(nil), uc.catalog.Definitions...)
}

func (uc *rankingUseCase) RankStored(ctx context.Context, opts RankOptions) (*domain.RankingRun, error) {
	start := uc.clock.Now()
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	destinations, err := uc.fetch(ctx, opts.DestinationIDs)
	if err != nil {
		uc.recorder.ObserveCalculation(string(domain.SourceStored), 0, timeutil.Since(uc.clock, start), err)
		return nil, fmt.Errorf("fetch destinations: %w", err)
	}
	destinations = ApplyFilters(destinations, opts.Filter)
	if len(destinations) == 0 {
		uc.recorder.ObserveCalculation(string(domain.SourceStored), 0, timeutil.Since(uc.clock, start), domain.ErrNoDestinations)
		return nil, domain.ErrNoDestinations
	}

	top := uc.cfg.RecommendedTop
	if opts.RecommendedTop > 0 {
		top = opts.RecommendedTop
	}

	return uc.calculate(ctx, domain.SourceStored, uc.catalog.Criteria(), uc.catalog.Alternatives(destinations), top, start)
}

func (uc *rankingUseCase) RankCustom(ctx context.Context, crit []mabac.Criterion, alternatives []mabac.Alternative) (*domain.RankingRun, error) {
	start := uc.clock.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.calculate(ctx, domain.SourceCustom, crit, alternatives, uc.cfg.RecommendedTop, start)
}

func (uc *rankingUseCase) fetch(ctx context.Context, ids []string) ([]domain.Destination, error) {
	return retry.DoWithResult(ctx, uc.cfg.StoreRetry, func(ctx context.Context) ([]domain.Destination, error) {
		if len(ids) > 0 {
			return uc.repo.GetDestinations(ctx, ids)
		}
		return uc.repo.ListDestinations(ctx)
	})
}

func (uc *rankingUseCase) calculate(
	ctx context.Context,
	source domain.RankingSource,
	crit []mabac.Criterion,
	alternatives []mabac.Alternative,
	recommendedTop int,
	start time.Time,
) (*domain.RankingRun, error) {
	result, err := mabac.Calculate(crit, alternatives)
	elapsed := timeutil.Since(uc.clock, start)
	uc.recorder.ObserveCalculation(string(source), len(alternatives), elapsed, err)
	if err != nil {
		uc.log.Debug().Err(err).Str("source", string(source)).Msg("MABAC calculation rejected")
		return nil, err
	}

	run := &domain.RankingRun{
		ID:             uc.newID(),
		Source:         source,
		CalculatedAt:   uc.clock.Now().In(uc.loc),
		Result:         result,
		RecommendedTop: recommendedTop,
	}

	winner, _ := run.Winner()
	uc.log.WithRun(run.ID).Info().
		Str("source", string(source)).
		Int("alternatives", len(alternatives)).
		Int("criteria", len(crit)).
		Str("top_id", winner.AlternativeID).
		Float64("top_score", winner.Score).
		Dur("duration", elapsed).
		Msg("MABAC ranking computed")

	uc.announce(ctx, run, elapsed)
	return run, nil
}

// announce publishes a summary of run. Failures are logged, never returned.
func (uc *rankingUseCase) announce(ctx context.Context, run *domain.RankingRun, elapsed time.Duration) {
	winner, _ := run.Winner()

	codes := make([]string, len(run.Result.Criteria))
	for i, c := range run.Result.Criteria {
		codes[i] = c.Code
	}
	recommended := make([]string, 0, run.RecommendedTop)
	for _, r := range run.Result.Top(run.RecommendedTop) {
		recommended = append(recommended, r.AlternativeID)
	}

	event := events.RankingComputed{
		RunID:        run.ID,
		Source:       string(run.Source),
		CalculatedAt: run.CalculatedAt,
		Alternatives: len(run.Result.Alternatives),
		Criteria:     codes,
		TopID:        winner.AlternativeID,
		TopName:      winner.Name,
		TopScore:     winner.Score,
		Recommended:  recommended,
		DurationMs:   elapsed.Milliseconds(),
	}

	if err := uc.publisher.Publish(ctx, events.SubjectRankingComputed(uc.cfg.SubjectPrefix), event); err != nil {
		uc.log.WithRun(run.ID).Warn().Err(err).Msg("Failed to publish ranking event")
	}
}
