package blackjack

import (
	"errors"
	"fmt"
	"strconv"

	"blackjack/cards"
)

var (
	// ErrInvalidRank means a card carried a rank outside the defined set.
	ErrInvalidRank = errors.New("invalid card rank")
	// ErrEmptyHand means a score was requested for a hand with no cards.
	ErrEmptyHand = errors.New("cannot score an empty hand")
)

// CardValue returns the Blackjack value of a single card: Ace counts 11,
// court cards count 10, numeric ranks count their face value.
func CardValue(card cards.Card) (int, error) {
	switch card.Rank {
	case cards.Ace:
		return 11, nil
	case cards.Jack, cards.Queen, cards.King:
		return 10, nil
	default:
		n, err := strconv.Atoi(string(card.Rank))
		if err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRank, card.Rank)
		}
		return n, nil
	}
}

// Score is a hand total folded into a single ordering: Bust (0) loses to
// any points total, points run 1..21, and a natural (22) beats everything
// including an ordinary 21.
type Score int

const (
	Bust           Score = 0
	BlackjackScore Score = 22
)

// IsBust reports whether the hand went over 21.
func (s Score) IsBust() bool { return s == Bust }

// IsBlackjack reports whether the hand is a two-card natural.
func (s Score) IsBlackjack() bool { return s == BlackjackScore }

// Points returns the numeric hand total: 21 for a natural, 0 for a bust.
func (s Score) Points() int {
	if s == BlackjackScore {
		return 21
	}
	return int(s)
}

func (s Score) String() string {
	switch s {
	case Bust:
		return "Bust"
	case BlackjackScore:
		return "Blackjack"
	default:
		return strconv.Itoa(int(s))
	}
}

// Compare orders two final scores: 1 if s wins, -1 if it loses, 0 for a
// draw. Bust vs Bust compares equal and is a draw.
func (s Score) Compare(other Score) int {
	switch {
	case s > other:
		return 1
	case s < other:
		return -1
	default:
		return 0
	}
}

// Score totals the hand under Blackjack rules. Every Ace is first counted
// as 11, then Aces are dropped to 1 one at a time until the total is 21 or
// less or no high Aces remain. A two-card 21 scores as BlackjackScore.
func (h *Hand) Score() (Score, error) {
	if h == nil || len(h.cards) == 0 {
		return Bust, ErrEmptyHand
	}

	total := 0
	highAces := 0
	for _, card := range h.cards {
		value, err := CardValue(card)
		if err != nil {
			return Bust, err
		}
		if card.Rank == cards.Ace {
			highAces++
		}
		total += value
	}

	// Soft-ace reduction, repeated until it can no longer help.
	for total > 21 && highAces > 0 {
		total -= 10
		highAces--
	}

	if total > 21 {
		return Bust, nil
	}
	if len(h.cards) == 2 && total == 21 {
		return BlackjackScore, nil
	}
	return Score(total), nil
}
