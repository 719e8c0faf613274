// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	Preset    string // "beginner", "expert", layout name, ...
	Width     int
	Height    int
	Mines     int
	Won       bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			won INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_preset ON results(preset);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(preset, won, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (preset, width, height, mines, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Width, r.Height, r.Mines, r.Won, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestTimes returns the fastest wins for preset, fastest first.
func (s *Store) BestTimes(preset string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, preset, width, height, mines, won, duration_ms, created_at
		 FROM results
		 WHERE preset = ? AND won = 1
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Preset, &r.Width, &r.Height, &r.Mines, &r.Won, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ClearResults deletes all results for preset.
func (s *Store) ClearResults(preset string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE preset = ?", preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated results for one preset.
type Stats struct {
	Preset     string
	Played     int
	Won        int
	BestTime   time.Duration // Zero if never won
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, or 0 if none were played.
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// PresetStats retrieves aggregated statistics for one preset.
func (s *Store) PresetStats(preset string) (*Stats, error) {
	st := &Stats{Preset: preset}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        MIN(CASE WHEN won = 1 THEN duration_ms END), MAX(created_at)
		 FROM results WHERE preset = ?`,
		preset,
	).Scan(&st.Played, &st.Won, &best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	if best.Valid {
		st.BestTime = time.Duration(best.Int64) * time.Millisecond
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), SUM(won),
		        MIN(CASE WHEN won = 1 THEN duration_ms END), MAX(created_at)
		 FROM results
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&st.Preset, &st.Played, &st.Won, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			st.BestTime = time.Duration(best.Int64) * time.Millisecond
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Preset] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
