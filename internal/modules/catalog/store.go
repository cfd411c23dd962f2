// README: Destination store backed by PostgreSQL (one JSONB document per record).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripfit/internal/modules/pricing"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListFrom(ctx context.Context, from string) ([]pricing.Destination, error) {
	rows, err := s.db.Query(ctx, `
		SELECT doc
		FROM destinations
		WHERE from_city = $1
		ORDER BY id`, from,
	)
	if err != nil {
		return nil, err
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, err
	}

	dests := make([]pricing.Destination, 0, len(docs))
	for _, doc := range docs {
		var d pricing.Destination
		if err := json.Unmarshal(doc, &d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, nil
}

func (s *Store) Cities(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT from_city FROM destinations ORDER BY from_city`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *Store) Insert(ctx context.Context, d pricing.Destination) error {
	return insert(ctx, s.db, d)
}

// Seed replaces the whole catalog in one transaction.
func (s *Store) Seed(ctx context.Context, dests []pricing.Destination) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM destinations`); err != nil {
		return err
	}
	for _, d := range dests {
		if err := insert(ctx, tx, d); err != nil {
			return fmt.Errorf("seed %s: %w", d.City, err)
		}
	}
	return tx.Commit(ctx)
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insert(ctx context.Context, db execer, d pricing.Destination) error {
	if err := d.Validate(); err != nil {
		return err
	}
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `
		INSERT INTO destinations (city, from_city, doc)
		VALUES ($1, $2, $3)`,
		d.City, d.From, doc,
	)
	return err
}
