// Package storage keeps a leaderboard of finished rounds for the lifetime of
// the process. Uses the pure-Go modernc.org/sqlite driver on an in-memory
// database, so nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const memoryDSN = ":memory:"

// Store manages the in-memory SQLite database of rounds.
type Store struct {
	db *sql.DB
}

// Round is a single finished round.
type Round struct {
	ID        string
	Session   string // Local run or SSH session that played the round
	Player    string
	Score     int
	Elapsed   time.Duration
	Spawned   int
	Scored    int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded rounds.
type Stats struct {
	Rounds    int
	HighScore int
	AvgScore  float64
	Sessions  int
}

// Open creates a fresh in-memory store and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database. Pin one and keep it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			spawned INTEGER NOT NULL DEFAULT 0,
			scored INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. All rounds are discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its generated ID.
func (s *Store) SaveRound(r Round) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, session, player, score, elapsed_ms, spawned, scored)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, r.Session, r.Player, r.Score, r.Elapsed.Milliseconds(), r.Spawned, r.Scored,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// TopRounds retrieves the best N rounds across all sessions.
// Ties keep insertion order.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, player, score, elapsed_ms, spawned, scored, created_at
		 FROM rounds
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// SessionRounds retrieves the most recent rounds of one session.
func (s *Store) SessionRounds(session string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, player, score, elapsed_ms, spawned, scored, created_at
		 FROM rounds
		 WHERE session = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	return scanRounds(rows)
}

// SessionTopRounds retrieves the best N rounds of one session.
// Ties keep insertion order.
func (s *Store) SessionTopRounds(session string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, player, score, elapsed_ms, spawned, scored, created_at
		 FROM rounds
		 WHERE session = ?
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	return scanRounds(rows)
}

// BestScore returns the highest score recorded so far.
// Returns 0 if no rounds exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns aggregated statistics over all rounds.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COUNT(DISTINCT session)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.HighScore, &st.AvgScore, &st.Sessions)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Session, &r.Player, &r.Score, &elapsedMS, &r.Spawned, &r.Scored, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTime handles the driver returning either time.Time or text.
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
