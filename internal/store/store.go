// Package store keeps a SQLite history of projection runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/paradise-calc/paradise/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("run not found")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// RunRecord is one saved projection.
type RunRecord struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Input     domain.ProjectionInput

	ParadiseReached    bool
	ParadiseAge        int
	YearsUntilParadise int
	FinalAge           int
	FinalAssets        int64
}

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a run and returns its id.
func (s *Store) SaveRun(ctx context.Context, name string, in domain.ProjectionInput, summary domain.ScenarioSummary) (int64, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("encoding input: %w", err)
	}

	var paradiseAge, yearsUntil sql.NullInt64
	if summary.ParadiseReached {
		paradiseAge = sql.NullInt64{Int64: int64(summary.ParadiseAge), Valid: true}
		yearsUntil = sql.NullInt64{Int64: int64(summary.YearsUntilParadise), Valid: true}
	}
	reached := 0
	if summary.ParadiseReached {
		reached = 1
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO runs
		(name, created_at, input_json, paradise_reached, paradise_age, years_until_paradise, final_age, final_assets)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, nowFunc().UTC().Format(time.RFC3339Nano), string(payload), reached,
		paradiseAge, yearsUntil, summary.FinalAge, summary.FinalAssets,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

const selectRun = `SELECT id, name, created_at, input_json, paradise_reached, paradise_age,
	years_until_paradise, final_age, final_assets FROM runs`

// ListRuns returns the most recent runs first. A limit of 0 or less returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := selectRun + " ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun loads one run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (RunRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRun+" WHERE id = ?", id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("run %d: %w", id, ErrNotFound)
	}
	return r, err
}

// DeleteRun removes one run by id.
func (s *Store) DeleteRun(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var (
		r                       RunRecord
		createdAt, payload      string
		reached                 int
		paradiseAge, yearsUntil sql.NullInt64
	)
	if err := sc.Scan(&r.ID, &r.Name, &createdAt, &payload, &reached, &paradiseAge, &yearsUntil, &r.FinalAge, &r.FinalAssets); err != nil {
		return RunRecord{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return RunRecord{}, fmt.Errorf("run %d: parsing created_at: %w", r.ID, err)
	}
	r.CreatedAt = t
	if err := json.Unmarshal([]byte(payload), &r.Input); err != nil {
		return RunRecord{}, fmt.Errorf("run %d: decoding input: %w", r.ID, err)
	}
	r.ParadiseReached = reached == 1
	r.ParadiseAge = int(paradiseAge.Int64)
	r.YearsUntilParadise = int(yearsUntil.Int64)
	return r, nil
}
