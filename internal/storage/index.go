package storage

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Index is a SQLite catalog of saved runs. The CSV/JSON files under the run
// directories stay the source of truth; the index only serves listing and
// parameter-range queries.
type Index struct {
	conn *sqlx.DB
}

// OpenIndex opens or creates the index database at the given path.
func OpenIndex(path string) (*Index, error) {
	// modernc.org/sqlite takes pragmas in _pragma=name(value) form
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	idx := &Index{conn: conn}
	if err := idx.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate index: %w", err)
	}
	return idx, nil
}

func (idx *Index) Close() error {
	return idx.conn.Close()
}

func (idx *Index) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		created_at TEXT NOT NULL,
		alpha REAL NOT NULL,
		r REAL NOT NULL,
		halfwidth REAL NOT NULL,
		resolution INTEGER NOT NULL,
		normalized INTEGER NOT NULL,
		overlap REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_r ON runs(r);
	CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
	`
	_, err := idx.conn.Exec(schema)
	return err
}

type runRow struct {
	ID         string  `db:"id"`
	Kind       string  `db:"kind"`
	CreatedAt  string  `db:"created_at"`
	Alpha      float64 `db:"alpha"`
	R          float64 `db:"r"`
	HalfWidth  float64 `db:"halfwidth"`
	Resolution int     `db:"resolution"`
	Normalized bool    `db:"normalized"`
	Overlap    float64 `db:"overlap"`
}

func (r runRow) metadata() RunMetadata {
	ts, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		slog.Warn("run index has unparseable timestamp", "run", r.ID, "value", r.CreatedAt)
	}
	return RunMetadata{
		ID:         r.ID,
		Kind:       r.Kind,
		Timestamp:  ts,
		Alpha:      r.Alpha,
		R:          r.R,
		HalfWidth:  r.HalfWidth,
		Resolution: r.Resolution,
		Normalized: r.Normalized,
		Overlap:    r.Overlap,
	}
}

// Insert records a run in the index.
func (idx *Index) Insert(meta RunMetadata) error {
	_, err := idx.conn.Exec(
		`INSERT INTO runs (id, kind, created_at, alpha, r, halfwidth, resolution, normalized, overlap)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Kind, meta.Timestamp.Format(time.RFC3339Nano),
		meta.Alpha, meta.R, meta.HalfWidth, meta.Resolution, meta.Normalized, meta.Overlap,
	)
	if err != nil {
		return fmt.Errorf("index run %s: %w", meta.ID, err)
	}
	return nil
}

// List returns every indexed run, newest first.
func (idx *Index) List() ([]RunMetadata, error) {
	var rows []runRow
	if err := idx.conn.Select(&rows, `SELECT * FROM runs ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	runs := make([]RunMetadata, len(rows))
	for i, r := range rows {
		runs[i] = r.metadata()
	}
	return runs, nil
}

// ListByR returns runs with R inside [rmin, rmax], newest first.
func (idx *Index) ListByR(rmin, rmax float64) ([]RunMetadata, error) {
	var rows []runRow
	err := idx.conn.Select(&rows,
		`SELECT * FROM runs WHERE r >= ? AND r <= ? ORDER BY created_at DESC`, rmin, rmax)
	if err != nil {
		return nil, err
	}
	runs := make([]RunMetadata, len(rows))
	for i, r := range rows {
		runs[i] = r.metadata()
	}
	return runs, nil
}
