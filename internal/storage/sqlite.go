// Package storage keeps a history of finished dodge rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is a log for the history command only. Running games never read
// from it, so the in-game high score always starts from zero.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Store manages the SQLite database connection for the round history.
type Store struct {
	db *sql.DB
}

// RoundEntry is one recorded round.
type RoundEntry struct {
	ID            int64
	Session       string
	Round         int
	Score         int
	Elapsed       int // Seconds
	EnemySpeed    float64
	TargetEnemies int
	HighScore     int
	CreatedAt     time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Rounds     int
	BestScore  int
	AvgScore   float64
	Longest    int // Seconds
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
	// One writer at a time; SSH sessions share the store
	db.SetMaxOpenConns(1)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL DEFAULT '',
			round_number INTEGER NOT NULL,
			score INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			enemy_speed REAL NOT NULL,
			target_enemies INTEGER NOT NULL,
			high_score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session);
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

// SaveRound appends a finished round. It implements dodge.RoundRecorder.
func (s *Store) SaveRound(ctx context.Context, r dodge.RoundResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds
		 (session, round_number, score, elapsed_secs, enemy_speed, target_enemies, high_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Session, r.Number, r.Score, r.Elapsed, r.EnemySpeed, r.TargetEnemies, r.HighScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

var _ dodge.RoundRecorder = (*Store)(nil)

// TopRounds returns the best rounds, highest score first. Ties go to the
// earlier round.
func (s *Store) TopRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, session, round_number, score, elapsed_secs, enemy_speed, target_enemies, high_score, created_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRounds(
		`SELECT id, session, round_number, score, elapsed_secs, enemy_speed, target_enemies, high_score, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionRounds returns every round recorded for one session in play order.
func (s *Store) SessionRounds(session string) ([]RoundEntry, error) {
	return s.queryRounds(
		`SELECT id, session, round_number, score, elapsed_secs, enemy_speed, target_enemies, high_score, created_at
		 FROM rounds
		 WHERE session = ?
		 ORDER BY id ASC`,
		session,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Session,
			&e.Round,
			&e.Score,
			&e.Elapsed,
			&e.EnemySpeed,
			&e.TargetEnemies,
			&e.HighScore,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestScore returns the highest recorded score, or 0 for an empty history.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the whole history.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(elapsed_secs), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.BestScore, &st.AvgScore, &st.Longest, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both driver representations of DATETIME columns.
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
