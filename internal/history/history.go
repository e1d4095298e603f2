// Package history persists a log of extraction runs to SQLite, asynchronously
// so request handling never waits on the database.
package history

import (
	"database/sql"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the extraction_runs table, applied by Store.Init.
const Schema = `
CREATE TABLE IF NOT EXISTS extraction_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id TEXT,
	tool TEXT NOT NULL,
	path TEXT NOT NULL,
	sha256 TEXT NOT NULL,
	findings_info INTEGER NOT NULL,
	findings_warning INTEGER NOT NULL,
	findings_error INTEGER NOT NULL,
	duration_us INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extraction_runs_created ON extraction_runs(created_at);
CREATE INDEX IF NOT EXISTS idx_extraction_runs_sha ON extraction_runs(sha256);
`

// Run is one extraction of one file by one tool. The JSON field names match
// the table columns so API responses mirror the stored rows.
type Run struct {
	RequestID  string `json:"request_id"`
	Tool       string `json:"tool"`
	Path       string `json:"path"`
	SHA256     string `json:"sha256"`
	Info       int    `json:"findings_info"`
	Warning    int    `json:"findings_warning"`
	Error      int    `json:"findings_error"`
	DurationUS int64  `json:"duration_us"`
	CreatedAt  int64  `json:"created_at"`
}

// Store batches run records into SQLite from a background goroutine.
// RecordAsync never blocks; when the buffer is full the record is dropped,
// trading completeness of the log for request latency.
type Store struct {
	db     *sql.DB
	ch     chan Run
	done   chan struct{}
	once   sync.Once
	ownsDB bool
}

// Open opens (or creates) the history database at path and starts the flush
// goroutine.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := NewStore(db)
	s.ownsDB = true
	if err := s.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore creates a store backed by an existing database connection.
func NewStore(db *sql.DB) *Store {
	s := &Store{
		db:   db,
		ch:   make(chan Run, 1024),
		done: make(chan struct{}),
	}
	go s.flushLoop()
	return s
}

// Init creates the extraction_runs table if it doesn't exist.
func (s *Store) Init() error {
	_, err := s.db.Exec(Schema)
	return err
}

// RecordAsync queues a run for persistence. Non-blocking; drops if the
// buffer is full.
func (s *Store) RecordAsync(r Run) {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	select {
	case s.ch <- r:
	default:
	}
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(`SELECT request_id, tool, path, sha256,
		findings_info, findings_warning, findings_error, duration_us, created_at
		FROM extraction_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RequestID, &r.Tool, &r.Path, &r.SHA256,
			&r.Info, &r.Warning, &r.Error, &r.DurationUS, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close drains the buffer and stops the flush goroutine. Stores opened with
// Open also close their database; NewStore leaves the connection to its
// owner.
func (s *Store) Close() error {
	s.once.Do(func() {
		close(s.ch)
		<-s.done
	})
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

func (s *Store) flushLoop() {
	defer close(s.done)

	batch := make([]Run, 0, 64)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case r, ok := <-s.ch:
			if !ok {
				s.flushBatch(batch)
				return
			}
			batch = append(batch, r)
			if len(batch) >= 64 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *Store) flushBatch(batch []Run) {
	if len(batch) == 0 {
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		slog.Error("history store: begin tx", "error", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO extraction_runs
		(request_id, tool, path, sha256, findings_info, findings_warning, findings_error, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		slog.Error("history store: prepare", "error", err)
		return
	}
	defer stmt.Close()

	for _, r := range batch {
		if _, err := stmt.Exec(r.RequestID, r.Tool, r.Path, r.SHA256,
			r.Info, r.Warning, r.Error, r.DurationUS, r.CreatedAt); err != nil {
			slog.Error("history store: insert", "error", err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("history store: commit", "error", err)
	}
}
