package cards

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Suit represents a card suit as its one-letter display code
type Suit string

const (
	Spades   Suit = "S"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Hearts   Suit = "H"
)

// Suits lists every suit in new-deck order
var Suits = []Suit{Spades, Diamonds, Clubs, Hearts}

// Symbol returns the Unicode glyph for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank in new-deck order, Ace low
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// Code returns the fixed-width display code for the card: the rank token
// right-aligned to two characters followed by the suit letter, e.g. " AS"
// or "10H". The code is always three characters wide.
func (c Card) Code() string {
	rank := string(c.Rank)
	if len(rank) == 1 {
		rank = " " + rank
	}
	return rank + string(c.Suit)
}

// String returns the compact representation used in logs and dumps, e.g. "A♠"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Rank: Ten, Suit: Spades}
// The padded codes produced by Code round-trip: " AS" -> Card{Rank: Ace, Suit: Spades}
func CardFromString(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	// The suit is the trailing rune; suit glyphs are multi-byte.
	last, size := utf8.DecodeLastRuneInString(s)

	var suit Suit
	switch string(last) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", string(last))
	}

	var rank Rank
	switch strings.ToUpper(s[:len(s)-size]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %q", s[:len(s)-size])
	}

	return Card{Rank: rank, Suit: suit}, nil
}
