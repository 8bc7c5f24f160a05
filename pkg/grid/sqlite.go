package grid

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// SQLite is a grid persisted in a single SQLite table.
type SQLite struct {
	db     *sql.DB
	lookup *sql.Stmt
	path   string
	err    error
}

// OpenSQLite opens or creates the grid database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS voxels (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		z INTEGER NOT NULL,
		content TEXT NOT NULL,
		PRIMARY KEY (x, y, z)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create voxels table: %w", err)
	}
	lookup, err := db.Prepare(`SELECT content FROM voxels WHERE x = ? AND y = ? AND z = ?`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare lookup: %w", err)
	}
	return &SQLite{db: db, lookup: lookup, path: path}, nil
}

// Put stores content at c. Empty content deletes the voxel.
func (s *SQLite) Put(ctx context.Context, c voxel.Coord, content string) error {
	return s.PutAll(ctx, map[voxel.Coord]string{c: content})
}

// PutAll stores every entry of cells in one transaction.
func (s *SQLite) PutAll(ctx context.Context, cells map[voxel.Coord]string) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for c, content := range cells {
		if IsEmpty(content) {
			_, err = tx.ExecContext(ctx, `DELETE FROM voxels WHERE x = ? AND y = ? AND z = ?`, c.X, c.Y, c.Z)
		} else {
			_, err = tx.ExecContext(ctx, `INSERT INTO voxels(x,y,z,content) VALUES(?,?,?,?)
				ON CONFLICT(x,y,z) DO UPDATE SET content=excluded.content`, c.X, c.Y, c.Z, content)
		}
		if err != nil {
			return fmt.Errorf("write %v: %w", c, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ContentAt queries one voxel. A failed query reads as empty; the first
// failure is kept and returned by Err.
func (s *SQLite) ContentAt(c voxel.Coord) (string, bool) {
	var content string
	err := s.lookup.QueryRow(c.X, c.Y, c.Z).Scan(&content)
	switch {
	case err == nil:
		return content, true
	case errors.Is(err, sql.ErrNoRows):
		return "", false
	default:
		if s.err == nil {
			s.err = fmt.Errorf("lookup %v: %w", c, err)
			log.WithError(err).WithField("voxel", c).Warn("grid lookup failed")
		}
		return "", false
	}
}

// Err returns the first lookup failure of ContentAt.
func (s *SQLite) Err() error {
	return s.err
}

// Region loads every non-empty voxel inside b into memory.
func (s *SQLite) Region(ctx context.Context, b voxel.Bounds) (*Memory, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT x, y, z, content FROM voxels
		WHERE x BETWEEN ? AND ? AND y BETWEEN ? AND ? AND z BETWEEN ? AND ?`,
		b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z)
	if err != nil {
		return nil, fmt.Errorf("select region: %w", err)
	}
	defer func() { _ = rows.Close() }()

	m := NewMemory()
	for rows.Next() {
		var c voxel.Coord
		var content string
		if err := rows.Scan(&c.X, &c.Y, &c.Z, &content); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		m.Set(c, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate region: %w", err)
	}
	return m, nil
}

// Path returns the database path.
func (s *SQLite) Path() string { return s.path }

// Close releases the database.
func (s *SQLite) Close() error {
	_ = s.lookup.Close()
	return s.db.Close()
}
