// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rangecal/internal/selection"
)

// timestampLayout is fixed width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const selectColumns = `SELECT id, mode, start_date, end_date, label, created_at FROM selections`

// SQLite implements selection.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ selection.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Save stores a selection, replacing any row with the same ID.
func (s *SQLite) Save(ctx context.Context, sel *selection.Saved) error {
	if sel.Start.IsZero() {
		return selection.ErrEmptySelection
	}
	if sel.ID == uuid.Nil {
		sel.ID = uuid.New()
	}
	if sel.CreatedAt.IsZero() {
		sel.CreatedAt = time.Now()
	}

	query := `
		INSERT OR REPLACE INTO selections (id, mode, start_date, end_date, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var end sql.NullString
	if sel.End != nil {
		end = sql.NullString{String: sel.End.Format("2006-01-02"), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		sel.ID.String(),
		sel.Mode.String(),
		sel.Start.Format("2006-01-02"),
		end,
		sel.Label,
		sel.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting selection: %w", err)
	}
	return nil
}

// Get retrieves a selection by ID.
func (s *SQLite) Get(ctx context.Context, id uuid.UUID) (*selection.Saved, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id.String())
	sel, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", selection.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying selection: %w", err)
	}
	return sel, nil
}

// List returns saved selections, newest first.
func (s *SQLite) List(ctx context.Context, limit int) ([]*selection.Saved, error) {
	query := selectColumns + ` ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*selection.Saved
	for rows.Next() {
		sel, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		out = append(out, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}
	return out, nil
}

// Latest returns the most recently saved selection.
func (s *SQLite) Latest(ctx context.Context) (*selection.Saved, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` ORDER BY created_at DESC LIMIT 1`)
	sel, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, selection.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest selection: %w", err)
	}
	return sel, nil
}

// Delete removes a selection.
func (s *SQLite) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM selections WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting selection: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", selection.ErrNotFound, id)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSaved(sc scanner) (*selection.Saved, error) {
	var (
		id, mode, start, label, createdAt string
		end                               sql.NullString
	)
	if err := sc.Scan(&id, &mode, &start, &end, &label, &createdAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing id: %w", err)
	}
	sel := &selection.Saved{ID: parsedID, Label: label}
	if mode == selection.Range.String() {
		sel.Mode = selection.Range
	}

	if sel.Start, err = parseDate(start); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if end.Valid {
		e, err := parseDate(end.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}
		sel.End = &e
	}
	// Stores created before created_at became TEXT hand it back through the
	// driver's DATETIME conversion, which drops trailing zeros.
	if sel.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return sel, nil
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"; keep the date
	// part as local midnight.
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
