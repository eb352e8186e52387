package blackjack

import "blackjack/cards"

// RoundStarted represents the event when a round begins with a fresh shoe.
type RoundStarted struct {
	RoundID  string
	Packs    int
	ShoeSize int
}

func (e RoundStarted) EventName() string { return "round-started" }

// CardDealt represents the event when a card lands in a participant's hand.
type CardDealt struct {
	RoundID  string
	Seat     Participant
	Card     cards.Card
	HandSize int
}

func (e CardDealt) EventName() string { return "card-dealt" }

// TurnStarted represents the event when a participant's turn begins.
type TurnStarted struct {
	RoundID string
	Seat    Participant
}

func (e TurnStarted) EventName() string { return "turn-started" }

// TurnEnded represents the event when a participant's turn ends with a
// final score.
type TurnEnded struct {
	RoundID string
	Seat    Participant
	Score   Score
}

func (e TurnEnded) EventName() string { return "turn-ended" }

// RoundEnded represents the event when the round's outcome is decided.
type RoundEnded struct {
	RoundID     string
	Winner      Participant
	Draw        bool
	PlayerScore Score
	DealerScore Score
}

func (e RoundEnded) EventName() string { return "round-ended" }
