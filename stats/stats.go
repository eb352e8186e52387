package stats

import "time"

// Result is one finished round as recorded in the session history. Scores
// use the engine's sentinel encoding: 0 for a bust, 1-21 for points, 22 for
// a natural.
type Result struct {
	RoundID     string
	Winner      string // "player", "dealer", or empty on a draw
	Draw        bool
	Natural     bool // the player held a two-card blackjack
	PlayerScore int
	DealerScore int
	PlayedAt    time.Time
}

// Totals aggregates every recorded round from the player's side.
type Totals struct {
	Rounds     int
	Wins       int
	Losses     int
	Draws      int
	Blackjacks int
}

// Store persists round results between runs.
type Store interface {
	Record(result Result) error
	Totals() (Totals, error)
	Close() error
}
