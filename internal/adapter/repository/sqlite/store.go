// Package sqlite stores destination attribute data in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
)

// Store implements domain.DestinationRepository on SQLite.
type Store struct {
	db *sql.DB
}

var _ domain.DestinationRepository = (*Store)(nil)

// Open opens (creating if needed) the database at path with WAL journaling
// and foreign keys enabled, and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, pragma := range []string{`PRAGMA journal_mode=WAL;`, `PRAGMA foreign_keys=ON;`} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.EnsureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS destinations (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL DEFAULT 0,
  toilet INTEGER NOT NULL DEFAULT 0,
  parking INTEGER NOT NULL DEFAULT 0,
  rest_area INTEGER NOT NULL DEFAULT 0,
  restaurant INTEGER NOT NULL DEFAULT 0,
  average_rating REAL NOT NULL DEFAULT 0,
  total_reviews INTEGER NOT NULL DEFAULT 0,
  accessibility REAL NOT NULL DEFAULT 0,
  review_c1 REAL NOT NULL DEFAULT 0,
  review_c2 REAL NOT NULL DEFAULT 0,
  review_c3 REAL NOT NULL DEFAULT 0,
  review_c4 REAL NOT NULL DEFAULT 0,
  review_c5 REAL NOT NULL DEFAULT 0,
  review_c6 REAL NOT NULL DEFAULT 0,
  review_c7 REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_destinations_name ON destinations(name);
`

// EnsureSchema creates the destinations table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const columns = `id, name, address, price, toilet, parking, rest_area, restaurant,
  average_rating, total_reviews, accessibility,
  review_c1, review_c2, review_c3, review_c4, review_c5, review_c6, review_c7`

// UpsertMany inserts or replaces destinations in one transaction.
func (s *Store) UpsertMany(ctx context.Context, items []domain.Destination) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("begin upsert", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO destinations (`+columns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return wrapErr("prepare upsert", err)
	}
	defer stmt.Close()

	for _, d := range items {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("destination %q: %w", d.ID, err)
		}
		r := d.ReviewScores
		if _, err := stmt.ExecContext(ctx,
			d.ID, d.Name, d.Address, d.Price, d.Toilet, d.Parking, d.RestArea, d.Restaurant,
			d.AverageRating, d.TotalReviews, d.Accessibility,
			r.Cleanliness, r.Facilities, r.Access, r.Safety, r.Scenery, r.Service, r.Value,
		); err != nil {
			return wrapErr("upsert destination", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("commit upsert", err)
	}
	return nil
}

// Count returns the number of stored destinations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return 0, wrapErr("count destinations", err)
	}
	return n, nil
}

// ListDestinations returns every destination ordered by id.
func (s *Store) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM destinations ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list destinations", err)
	}
	return scanAll(rows, "list destinations")
}

// GetDestinations returns the destinations with the given ids ordered by id.
func (s *Store) GetDestinations(ctx context.Context, ids []string) ([]domain.Destination, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+columns+` FROM destinations WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
	if err != nil {
		return nil, wrapErr("get destinations", err)
	}
	out, err := scanAll(rows, "get destinations")
	if err != nil {
		return nil, err
	}
	if err := checkMissing(ids, out); err != nil {
		return nil, err
	}
	return out, nil
}

func scanAll(rows *sql.Rows, op string) ([]domain.Destination, error) {
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		r := &d.ReviewScores
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Address, &d.Price, &d.Toilet, &d.Parking, &d.RestArea, &d.Restaurant,
			&d.AverageRating, &d.TotalReviews, &d.Accessibility,
			&r.Cleanliness, &r.Facilities, &r.Access, &r.Safety, &r.Scenery, &r.Service, &r.Value,
		); err != nil {
			return nil, wrapErr(op, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

// wrapErr marks busy and locked databases as retryable.
func wrapErr(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
		return domain.NewRetryableStoreError(op, err)
	}
	return domain.NewStoreError(op, err)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkMissing(ids []string, found []domain.Destination) error {
	have := make(map[string]struct{}, len(found))
	for _, d := range found {
		have[d.ID] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDestinationNotFound, strings.Join(missing, ", "))
	}
	return nil
}
