// Package postgres stores destination attribute data in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
)

// Store implements domain.DestinationRepository on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

var _ domain.DestinationRepository = (*Store)(nil)

// New connects to databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS destinations (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  price DOUBLE PRECISION NOT NULL DEFAULT 0,
  toilet INTEGER NOT NULL DEFAULT 0,
  parking INTEGER NOT NULL DEFAULT 0,
  rest_area INTEGER NOT NULL DEFAULT 0,
  restaurant INTEGER NOT NULL DEFAULT 0,
  average_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
  total_reviews INTEGER NOT NULL DEFAULT 0,
  accessibility DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c1 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c2 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c3 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c4 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c5 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c6 DOUBLE PRECISION NOT NULL DEFAULT 0,
  review_c7 DOUBLE PRECISION NOT NULL DEFAULT 0
)`

// EnsureSchema creates the destinations table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return wrapErr("ensure schema", err)
	}
	return nil
}

const columns = `id, name, address, price, toilet, parking, rest_area, restaurant,
	average_rating, total_reviews, accessibility,
	review_c1, review_c2, review_c3, review_c4, review_c5, review_c6, review_c7`

// UpsertMany inserts or updates destinations in a single batch transaction.
func (s *Store) UpsertMany(ctx context.Context, items []domain.Destination) error {
	batch := &pgx.Batch{}
	for _, d := range items {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("destination %q: %w", d.ID, err)
		}
		r := d.ReviewScores
		batch.Queue(`
			INSERT INTO destinations (`+columns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, address = EXCLUDED.address, price = EXCLUDED.price,
				toilet = EXCLUDED.toilet, parking = EXCLUDED.parking,
				rest_area = EXCLUDED.rest_area, restaurant = EXCLUDED.restaurant,
				average_rating = EXCLUDED.average_rating, total_reviews = EXCLUDED.total_reviews,
				accessibility = EXCLUDED.accessibility,
				review_c1 = EXCLUDED.review_c1, review_c2 = EXCLUDED.review_c2,
				review_c3 = EXCLUDED.review_c3, review_c4 = EXCLUDED.review_c4,
				review_c5 = EXCLUDED.review_c5, review_c6 = EXCLUDED.review_c6,
				review_c7 = EXCLUDED.review_c7`,
			d.ID, d.Name, d.Address, d.Price, d.Toilet, d.Parking, d.RestArea, d.Restaurant,
			d.AverageRating, d.TotalReviews, d.Accessibility,
			r.Cleanliness, r.Facilities, r.Access, r.Safety, r.Scenery, r.Service, r.Value,
		)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return wrapErr("upsert destinations", err)
	}
	return nil
}

// ListDestinations returns every destination ordered by id.
func (s *Store) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM destinations ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list destinations", err)
	}
	return collect(rows, "list destinations")
}

// GetDestinations returns the destinations with the given ids ordered by id.
func (s *Store) GetDestinations(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+columns+` FROM destinations WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, wrapErr("get destinations", err)
	}
	out, err := collect(rows, "get destinations")
	if err != nil {
		return nil, err
	}

	if missing := missingIDs(ids, out); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDestinationNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

func collect(rows pgx.Rows, op string) ([]domain.Destination, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Destination, error) {
		var d domain.Destination
		r := &d.ReviewScores
		err := row.Scan(
			&d.ID, &d.Name, &d.Address, &d.Price, &d.Toilet, &d.Parking, &d.RestArea, &d.Restaurant,
			&d.AverageRating, &d.TotalReviews, &d.Accessibility,
			&r.Cleanliness, &r.Facilities, &r.Access, &r.Safety, &r.Scenery, &r.Service, &r.Value,
		)
		return d, err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

// wrapErr marks network timeouts and errors pgx reports as safe to retry as
// retryable. Context errors are never retried.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewStoreError(op, err)
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return domain.NewRetryableStoreError(op, err)
	}
	return domain.NewStoreError(op, err)
}

func missingIDs(ids []string, found []domain.Destination) []string {
	have := make(map[string]struct{}, len(found))
	for _, d := range found {
		have[d.ID] = struct{}{}
	}
	seen := make(map[string]struct{})
	var missing []string
	for _, id := range ids {
		if _, ok := have[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	sort.Strings(missing)
	return missing
}
