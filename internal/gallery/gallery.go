package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dshills/paintr/internal/engine/history"
)

const schema = `
CREATE TABLE IF NOT EXISTS canvases (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	snapshot BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Entry describes one saved canvas.
type Entry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Size    int       `json:"size"`
	Created time.Time `json:"created"`
}

// Gallery is the named snapshot store.
type Gallery struct {
	db *sql.DB
}

// Open creates an empty in-memory gallery.
func Open(ctx context.Context) (*Gallery, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open gallery: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init gallery: %w", err)
	}
	return &Gallery{db: db}, nil
}

// Close releases the database and discards every entry.
func (g *Gallery) Close() error {
	return g.db.Close()
}

// Save stores snap under name and returns the new entry.
// Invalid or duplicate names return a *NameError.
func (g *Gallery) Save(ctx context.Context, name string, snap history.Snapshot) (Entry, error) {
	n, err := NormalizeName(name)
	if err != nil {
		return Entry{}, err
	}
	if snap.IsZero() {
		return Entry{}, ErrEmptySnapshot
	}

	var exists int
	err = g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM canvases WHERE name = ?`, n).Scan(&exists)
	if err != nil {
		return Entry{}, fmt.Errorf("check name: %w", err)
	}
	if exists > 0 {
		return Entry{}, &NameError{Name: name, Err: ErrDuplicateName}
	}

	e := Entry{
		ID:      uuid.NewString(),
		Name:    n,
		Size:    snap.Len(),
		Created: snap.Time(),
	}
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	_, err = g.db.ExecContext(ctx,
		`INSERT INTO canvases (id, name, snapshot, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Name, snap.Bytes(), e.Created.UnixNano())
	if err != nil {
		return Entry{}, fmt.Errorf("save canvas: %w", err)
	}
	return e, nil
}

// Load returns the entry and snapshot stored under id.
func (g *Gallery) Load(ctx context.Context, id string) (Entry, history.Snapshot, error) {
	var (
		e    Entry
		data []byte
		ts   int64
	)
	err := g.db.QueryRowContext(ctx,
		`SELECT id, name, snapshot, created_at FROM canvases WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &data, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, history.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, history.Snapshot{}, fmt.Errorf("load canvas: %w", err)
	}
	e.Size = len(data)
	e.Created = time.Unix(0, ts)
	return e, history.NewSnapshot(data), nil
}

// List returns every entry, oldest first.
func (g *Gallery) List(ctx context.Context) ([]Entry, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT id, name, length(snapshot), created_at FROM canvases ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list canvases: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Size, &ts); err != nil {
			return nil, fmt.Errorf("scan canvas: %w", err)
		}
		e.Created = time.Unix(0, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Len returns the number of saved canvases.
func (g *Gallery) Len(ctx context.Context) (int, error) {
	var n int
	if err := g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM canvases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count canvases: %w", err)
	}
	return n, nil
}
