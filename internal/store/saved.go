package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SavedQuery is a named, reusable query definition.
type SavedQuery struct {
	// Name uniquely identifies the saved query.
	Name string `json:"name"`

	// Dataset and Variable select what to query.
	Dataset  string `json:"dataset"`
	Variable string `json:"variable"`

	// Start and End are the clamped range bounds, formatted at the
	// dataset resolution.
	Start string `json:"start"`
	End   string `json:"end"`

	// Filter is the normalized filter payload.
	Filter map[string]any `json:"filter,omitempty"`

	// Token and Seq identify the build that produced this definition.
	Token string `json:"token"`
	Seq   int64  `json:"seq"`

	// CreatedAt is the UTC creation time as recorded by SQLite.
	// Empty until the record has been stored.
	CreatedAt string `json:"created_at,omitempty"`
}

// Save inserts or replaces a saved query by name.
func (s *Store) Save(ctx context.Context, q SavedQuery) error {
	filterJSON, err := marshalFilter(q.Filter)
	if err != nil {
		return fmt.Errorf("save query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_queries
		(name, dataset, variable, start_date, end_date, filter, token, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			dataset    = excluded.dataset,
			variable   = excluded.variable,
			start_date = excluded.start_date,
			end_date   = excluded.end_date,
			filter     = excluded.filter,
			token      = excluded.token,
			seq        = excluded.seq
	`,
		q.Name,
		q.Dataset,
		q.Variable,
		q.Start,
		q.End,
		filterJSON,
		q.Token,
		q.Seq,
	)
	if err != nil {
		return fmt.Errorf("save query: %w", err)
	}

	return nil
}

// GetByName returns the saved query with the given name.
// Returns a NotFoundError if no such query exists.
func (s *Store) GetByName(ctx context.Context, name string) (*SavedQuery, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, dataset, variable, start_date, end_date, filter, token, seq, created_at
		FROM saved_queries
		WHERE name = ?
	`, name)

	q, err := scanSavedQuery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("get query %q: %w", name, err)
	}
	return q, nil
}

// List returns all saved queries ordered by name.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) List(ctx context.Context) ([]SavedQuery, error) {
	return s.list(ctx, `
		SELECT name, dataset, variable, start_date, end_date, filter, token, seq, created_at
		FROM saved_queries
		ORDER BY name ASC
	`)
}

// ListByDataset returns the saved queries for one dataset, ordered by name.
func (s *Store) ListByDataset(ctx context.Context, dataset string) ([]SavedQuery, error) {
	return s.list(ctx, `
		SELECT name, dataset, variable, start_date, end_date, filter, token, seq, created_at
		FROM saved_queries
		WHERE dataset = ?
		ORDER BY name ASC
	`, dataset)
}

func (s *Store) list(ctx context.Context, querySQL string, args ...any) ([]SavedQuery, error) {
	rows, err := s.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	defer rows.Close()

	queries := []SavedQuery{}
	for rows.Next() {
		q, err := scanSavedQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("list queries: %w", err)
		}
		queries = append(queries, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queries: %w", err)
	}

	return queries, nil
}

// Delete removes the saved query with the given name.
// Returns a NotFoundError if no such query exists.
func (s *Store) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_queries WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete query %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete query %q: %w", name, err)
	}
	if affected == 0 {
		return &NotFoundError{Name: name}
	}
	return nil
}

// MaxSeq returns the highest request seq recorded in the store, or 0 when
// empty. Used to resume a request clock across sessions.
func (s *Store) MaxSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM saved_queries`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("max seq: %w", err)
	}
	return seq, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSavedQuery(row scanner) (*SavedQuery, error) {
	var q SavedQuery
	var filterJSON string
	err := row.Scan(
		&q.Name,
		&q.Dataset,
		&q.Variable,
		&q.Start,
		&q.End,
		&filterJSON,
		&q.Token,
		&q.Seq,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Filter, err = unmarshalFilter(filterJSON)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
