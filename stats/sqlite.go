package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore records round results in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the stats database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		round_id TEXT PRIMARY KEY,
		winner TEXT NOT NULL DEFAULT '',
		draw INTEGER NOT NULL DEFAULT 0,
		blackjack INTEGER NOT NULL DEFAULT 0,
		player_score INTEGER NOT NULL,
		dealer_score INTEGER NOT NULL,
		played_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_winner ON rounds(winner);
	`

	_, err := db.Exec(schema)
	return err
}

// Record inserts one finished round. Round IDs are unique; recording the
// same round twice is an error.
func (s *SQLiteStore) Record(result Result) error {
	playedAt := result.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO rounds (round_id, winner, draw, blackjack, player_score, dealer_score, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.RoundID, result.Winner, result.Draw, result.Natural,
		result.PlayerScore, result.DealerScore, playedAt)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

// Totals aggregates all recorded rounds.
func (s *SQLiteStore) Totals() (Totals, error) {
	var t Totals

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 'dealer' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(draw), 0),
			COALESCE(SUM(blackjack), 0)
		FROM rounds
	`).Scan(&t.Rounds, &t.Wins, &t.Losses, &t.Draws, &t.Blackjacks)

	if err != nil {
		return Totals{}, fmt.Errorf("failed to total rounds: %w", err)
	}
	return t, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
