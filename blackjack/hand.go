package blackjack

import "blackjack/cards"

// Hand is the ordered collection of cards held by one participant for a
// round. Cards are appended as they are dealt, so the most recent card is
// last.
type Hand struct {
	cards []cards.Card
}

// NewHand creates a hand holding the given cards, in order.
func NewHand(cs ...cards.Card) *Hand {
	h := &Hand{}
	for _, c := range cs {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(card cards.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the hand's cards in insertion order.
func (h *Hand) Cards() []cards.Card {
	if h == nil {
		return nil
	}
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	if h == nil {
		return 0
	}
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards.
func (h *Hand) IsEmpty() bool {
	return h.Len() == 0
}

// Rows renders the hand as display-code lines of at most seven cards each.
func (h *Hand) Rows() []string {
	if h == nil {
		return nil
	}
	return cards.FormatRows(h.cards, cards.HandRow)
}
