package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"ttc-rider-server/models"
)

const ridershipSchema = `
CREATE TABLE IF NOT EXISTS ridership (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    station  TEXT NOT NULL,
    line     TEXT NOT NULL,
    day_type TEXT NOT NULL,
    hour_raw TEXT NOT NULL,
    riders   REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ridership_station ON ridership(station);
CREATE INDEX IF NOT EXISTS idx_ridership_day_type ON ridership(day_type);
`

// RidershipStore persists the long-format historical ridership data in
// SQLite. It feeds offline training and the options enumeration; it is
// never touched by the per-request feature path.
type RidershipStore struct {
	conn    *sql.DB
	writeMu sync.Mutex // SQLite allows one writer at a time
}

// OpenRidershipStore opens (and bootstraps) the store at dbPath. Use
// "file::memory:?cache=shared" for an in-memory store in tests.
func OpenRidershipStore(dbPath string) (*RidershipStore, error) {
	// sqlite will not create missing parent directories itself, and the
	// default data/ directory does not exist on a fresh checkout
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory %q: %w", dir, err)
		}
	}

	dsn := dbPath + "?_journal=WAL&_fk=1&_busy_timeout=5000"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ridership db: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping ridership db: %w", err)
	}
	if _, err := conn.Exec(ridershipSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create ridership schema: %w", err)
	}

	log.Printf("[RidershipStore] connected: %s", dbPath)
	return &RidershipStore{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *RidershipStore) Close() error {
	return s.conn.Close()
}

// ReplaceAll swaps the store's contents for the given rows in one
// transaction. Used by the CSV import so re-imports don't duplicate.
func (s *RidershipStore) ReplaceAll(rows []models.RidershipRow) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import tx: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM ridership`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear ridership: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO ridership (station, line, day_type, hour_raw, riders) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.Station, row.Line, row.DayType, row.HourRaw, row.Riders); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert ridership row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	log.Printf("[RidershipStore] imported %d rows", len(rows))
	return nil
}

// AllRows returns every stored row, insertion-ordered. Training input.
func (s *RidershipStore) AllRows() ([]models.RidershipRow, error) {
	rows, err := s.conn.Query(`SELECT station, line, day_type, hour_raw, riders FROM ridership ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ridership rows: %w", err)
	}
	defer rows.Close()

	var out []models.RidershipRow
	for rows.Next() {
		var r models.RidershipRow
		if err := rows.Scan(&r.Station, &r.Line, &r.DayType, &r.HourRaw, &r.Riders); err != nil {
			return nil, fmt.Errorf("failed to scan ridership row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DistinctStations lists distinct trimmed station names, sorted.
func (s *RidershipStore) DistinctStations() ([]string, error) {
	return s.distinct(`SELECT DISTINCT TRIM(station) FROM ridership WHERE TRIM(station) <> '' ORDER BY 1`)
}

// DistinctLines lists distinct trimmed line labels, sorted.
func (s *RidershipStore) DistinctLines() ([]string, error) {
	return s.distinct(`SELECT DISTINCT TRIM(line) FROM ridership WHERE TRIM(line) <> '' ORDER BY 1`)
}

// DistinctDayTypes lists distinct lowercased day categories, sorted.
func (s *RidershipStore) DistinctDayTypes() ([]string, error) {
	return s.distinct(`SELECT DISTINCT LOWER(TRIM(day_type)) FROM ridership WHERE TRIM(day_type) <> '' ORDER BY 1`)
}

func (s *RidershipStore) distinct(query string) ([]string, error) {
	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct values: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
