package cards

import (
	"errors"
	"math/rand"
	"strings"
)

// StandardPackSize is the number of cards in one standard pack.
const StandardPackSize = 52

// Display row widths: hands render up to 7 cards per row, full deck
// dumps up to 13.
const (
	HandRow = 7
	DeckRow = 13
)

// ErrPackCount indicates a shoe was requested with fewer than one pack.
var ErrPackCount = errors.New("shoe needs at least one pack")

// ErrEmptyDeck indicates a deal was requested from an exhausted deck.
var ErrEmptyDeck = errors.New("no cards remain in the deck")

// ErrNilRand indicates a shuffle was requested without a random source.
var ErrNilRand = errors.New("shuffle needs a random source")

// Deck is an ordered sequence of cards dealt from the top. A head cursor
// marks the next card to deal; dealt cards are never revisited, and a
// shuffle only reorders the cards still to come.
type Deck struct {
	cards []Card
	head  int
}

// NewDeck creates a single standard pack in new-deck order.
func NewDeck() *Deck {
	return &Deck{cards: appendPack(make([]Card, 0, StandardPackSize))}
}

// NewShoe creates a deck from the given number of standard packs laid pack
// after pack in new-deck order: suits Spades, Diamonds, Clubs, Hearts, and
// ranks Ace through King within each suit.
func NewShoe(packs int) (*Deck, error) {
	if packs < 1 {
		return nil, ErrPackCount
	}
	all := make([]Card, 0, StandardPackSize*packs)
	for p := 0; p < packs; p++ {
		all = appendPack(all)
	}
	return &Deck{cards: all}, nil
}

// DeckOf creates a deck that deals the given cards in order. Used to rig
// deals in tests.
func DeckOf(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

func appendPack(cards []Card) []Card {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Shuffle reorders the undealt portion of the deck in place using the
// Fisher-Yates algorithm driven by rng. Cards already dealt are outside
// the shuffle range.
func (d *Deck) Shuffle(rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRand
	}
	undealt := d.cards[d.head:]
	rng.Shuffle(len(undealt), func(i, j int) {
		undealt[i], undealt[j] = undealt[j], undealt[i]
	})
	return nil
}

// Deal removes and returns the next card from the top of the deck. On
// ErrEmptyDeck the deck is left untouched.
func (d *Deck) Deal() (Card, error) {
	if d.head >= len(d.cards) {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[d.head]
	d.head++
	return card, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.head
}

// Undealt returns a copy of the cards not yet dealt, in deal order.
func (d *Deck) Undealt() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.head:])
	return out
}

// FormatRows renders the display codes of cards in rows of at most perRow
// cards each, single-space separated.
func FormatRows(cards []Card, perRow int) []string {
	if perRow < 1 || len(cards) == 0 {
		return nil
	}
	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		codes := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			codes = append(codes, c.Code())
		}
		rows = append(rows, strings.Join(codes, " "))
	}
	return rows
}
