package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// HistoryStore persists the outcome of cell runs.
type HistoryStore interface {
	SaveRun(ctx context.Context, record m.RunRecord) (m.RunRecord, error)
	ListRuns(ctx context.Context, notebook m.Path, limit int) ([]m.RunRecord, error)
	Close() error
}

// SQLiteHistoryStore is a HistoryStore backed by a SQLite file. The database
// is opened on first use so commands that never touch history leave no file.
type SQLiteHistoryStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteHistoryStore constructs a store for the database at path.
func NewSQLiteHistoryStore(path m.Path) *SQLiteHistoryStore {
	return &SQLiteHistoryStore{path: string(path)}
}

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	notebook TEXT NOT NULL,
	cell_index INTEGER NOT NULL,
	state TEXT NOT NULL,
	outcome TEXT NOT NULL,
	exit_code INTEGER NOT NULL,
	diagnostic_count INTEGER NOT NULL,
	diagnostics TEXT NOT NULL,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_notebook ON runs(notebook, started_at);
`

func (s *SQLiteHistoryStore) open() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}

	s.db = db

	return db, nil
}

// SaveRun stores record, assigning an ID when it has none.
func (s *SQLiteHistoryStore) SaveRun(ctx context.Context, record m.RunRecord) (m.RunRecord, error) {
	db, err := s.open()
	if err != nil {
		return record, err
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	diagnostics, err := json.Marshal(record.Diagnostics)
	if err != nil {
		return record, fmt.Errorf("encode diagnostics: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, notebook, cell_index, state, outcome, exit_code, diagnostic_count, diagnostics, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, string(record.Notebook), record.CellIndex, record.State.String(), string(record.Outcome),
		record.ExitCode, len(record.Diagnostics), string(diagnostics),
		record.StartedAt.UTC(), record.FinishedAt.UTC(),
	)
	if err != nil {
		return record, fmt.Errorf("insert run: %w", err)
	}

	return record, nil
}

// ListRuns returns the newest runs first. An empty notebook lists all runs;
// a non-positive limit lists everything.
func (s *SQLiteHistoryStore) ListRuns(ctx context.Context, notebook m.Path, limit int) ([]m.RunRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, notebook, cell_index, state, outcome, exit_code, diagnostics, started_at, finished_at FROM runs`
	args := []any{}

	if notebook != "" {
		query += ` WHERE notebook = ?`

		args = append(args, string(notebook))
	}

	query += ` ORDER BY started_at DESC`

	if limit > 0 {
		query += ` LIMIT ?`

		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var records []m.RunRecord

	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return records, nil
}

func scanRun(rows *sql.Rows) (m.RunRecord, error) {
	var (
		record      m.RunRecord
		notebook    string
		state       string
		outcome     string
		diagnostics string
		startedAt   time.Time
		finishedAt  time.Time
	)

	err := rows.Scan(&record.ID, &notebook, &record.CellIndex, &state, &outcome,
		&record.ExitCode, &diagnostics, &startedAt, &finishedAt)
	if err != nil {
		return record, fmt.Errorf("scan run: %w", err)
	}

	record.Notebook = m.Path(notebook)
	record.Outcome = m.RunOutcome(outcome)
	record.StartedAt = startedAt
	record.FinishedAt = finishedAt

	if record.State, err = m.ParseRunState(state); err != nil {
		return record, err
	}

	if err := json.Unmarshal([]byte(diagnostics), &record.Diagnostics); err != nil {
		return record, fmt.Errorf("decode diagnostics: %w", err)
	}

	return record, nil
}

// Close releases the database if it was opened.
func (s *SQLiteHistoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}
