package cards

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeckCompleteness(t *testing.T) {
	deck := NewDeck()
	if deck.Remaining() != StandardPackSize {
		t.Fatalf("Remaining() = %d, want %d", deck.Remaining(), StandardPackSize)
	}

	seen := make(map[Card]int)
	for _, c := range deck.Undealt() {
		seen[c]++
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			card := Card{Rank: rank, Suit: suit}
			if seen[card] != 1 {
				t.Errorf("card %s appears %d times, want 1", card.Code(), seen[card])
			}
		}
	}
}

func TestNewDeckOrder(t *testing.T) {
	deck := NewDeck()
	undealt := deck.Undealt()

	// Suits in fixed order, each running Ace through King.
	i := 0
	for _, suit := range Suits {
		for _, rank := range Ranks {
			want := Card{Rank: rank, Suit: suit}
			if undealt[i] != want {
				t.Fatalf("card %d = %s, want %s", i, undealt[i].Code(), want.Code())
			}
			i++
		}
	}
}

func TestNewShoe(t *testing.T) {
	tests := []struct {
		packs   int
		want    int
		wantErr error
	}{
		{1, 52, nil},
		{2, 104, nil},
		{6, 312, nil},
		{0, 0, ErrPackCount},
		{-1, 0, ErrPackCount},
	}

	for _, tt := range tests {
		shoe, err := NewShoe(tt.packs)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewShoe(%d) error = %v, want %v", tt.packs, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewShoe(%d) error = %v", tt.packs, err)
		}
		if shoe.Remaining() != tt.want {
			t.Errorf("NewShoe(%d).Remaining() = %d, want %d", tt.packs, shoe.Remaining(), tt.want)
		}
	}
}

func TestNewShoeMultiplicity(t *testing.T) {
	const packs = 3
	shoe, err := NewShoe(packs)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[Card]int)
	for _, c := range shoe.Undealt() {
		seen[c]++
	}
	if len(seen) != StandardPackSize {
		t.Fatalf("distinct cards = %d, want %d", len(seen), StandardPackSize)
	}
	for card, n := range seen {
		if n != packs {
			t.Errorf("card %s appears %d times, want %d", card.Code(), n, packs)
		}
	}

	// Packs are appended whole: card 52 restarts the sequence.
	undealt := shoe.Undealt()
	want := Card{Rank: Ace, Suit: Spades}
	if undealt[StandardPackSize] != want {
		t.Errorf("card %d = %s, want %s", StandardPackSize, undealt[StandardPackSize].Code(), want.Code())
	}
}

func TestDealConservation(t *testing.T) {
	deck := NewDeck()

	var dealt []Card
	for deck.Remaining() > 0 {
		card, err := deck.Deal()
		if err != nil {
			t.Fatalf("Deal() error = %v with %d remaining", err, deck.Remaining())
		}
		dealt = append(dealt, card)
	}

	if len(dealt) != StandardPackSize {
		t.Fatalf("dealt %d cards, want %d", len(dealt), StandardPackSize)
	}
	seen := make(map[Card]bool)
	for _, c := range dealt {
		if seen[c] {
			t.Errorf("card %s dealt twice", c.Code())
		}
		seen[c] = true
	}
}

func TestDealEmptyDeck(t *testing.T) {
	deck := DeckOf(Card{Rank: Ace, Suit: Spades})
	if _, err := deck.Deal(); err != nil {
		t.Fatal(err)
	}

	_, err := deck.Deal()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("Deal() on empty deck error = %v, want %v", err, ErrEmptyDeck)
	}

	// A failed deal must not disturb the deck.
	if deck.Remaining() != 0 {
		t.Errorf("Remaining() = %d after failed deal, want 0", deck.Remaining())
	}
	if _, err := deck.Deal(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("second failed Deal() error = %v, want %v", err, ErrEmptyDeck)
	}
}

func TestDeckOf(t *testing.T) {
	first := Card{Rank: King, Suit: Hearts}
	second := Card{Rank: Five, Suit: Clubs}
	deck := DeckOf(first, second)

	got, err := deck.Deal()
	if err != nil {
		t.Fatal(err)
	}
	if got != first {
		t.Errorf("first deal = %s, want %s", got.Code(), first.Code())
	}
	got, err = deck.Deal()
	if err != nil {
		t.Fatal(err)
	}
	if got != second {
		t.Errorf("second deal = %s, want %s", got.Code(), second.Code())
	}
}

func TestShufflePermutes(t *testing.T) {
	deck := NewDeck()
	before := deck.Undealt()

	if err := deck.Shuffle(rand.New(rand.NewSource(42))); err != nil {
		t.Fatal(err)
	}
	after := deck.Undealt()

	if len(after) != len(before) {
		t.Fatalf("Remaining() changed from %d to %d", len(before), len(after))
	}
	count := func(cs []Card) map[Card]int {
		m := make(map[Card]int)
		for _, c := range cs {
			m[c]++
		}
		return m
	}
	if !reflect.DeepEqual(count(before), count(after)) {
		t.Error("shuffle changed the multiset of cards")
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := NewDeck()
	b := NewDeck()

	if err := a.Shuffle(rand.New(rand.NewSource(7))); err != nil {
		t.Fatal(err)
	}
	if err := b.Shuffle(rand.New(rand.NewSource(7))); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.Undealt(), b.Undealt()) {
		t.Error("same seed produced different orders")
	}

	c := NewDeck()
	if err := c.Shuffle(rand.New(rand.NewSource(8))); err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.Undealt(), c.Undealt()) {
		t.Error("different seeds produced identical orders")
	}
}

func TestShuffleOnlyUndealt(t *testing.T) {
	deck := NewDeck()

	var dealt []Card
	for i := 0; i < 10; i++ {
		card, err := deck.Deal()
		if err != nil {
			t.Fatal(err)
		}
		dealt = append(dealt, card)
	}

	if err := deck.Shuffle(rand.New(rand.NewSource(99))); err != nil {
		t.Fatal(err)
	}

	if deck.Remaining() != StandardPackSize-len(dealt) {
		t.Fatalf("Remaining() = %d after shuffle, want %d", deck.Remaining(), StandardPackSize-len(dealt))
	}

	// Dealt cards stay dealt: none may come back out of the deck.
	dealtSet := make(map[Card]bool, len(dealt))
	for _, c := range dealt {
		dealtSet[c] = true
	}
	for _, c := range deck.Undealt() {
		if dealtSet[c] {
			t.Errorf("dealt card %s reappeared after shuffle", c.Code())
		}
	}
}

func TestShuffleNilRand(t *testing.T) {
	deck := NewDeck()
	if err := deck.Shuffle(nil); !errors.Is(err, ErrNilRand) {
		t.Fatalf("Shuffle(nil) error = %v, want %v", err, ErrNilRand)
	}
}

func TestFormatRows(t *testing.T) {
	tests := []struct {
		name   string
		cards  []Card
		perRow int
		want   []string
	}{
		{
			name:   "empty",
			cards:  nil,
			perRow: 7,
			want:   nil,
		},
		{
			name:   "invalid width",
			cards:  []Card{{Rank: Ace, Suit: Spades}},
			perRow: 0,
			want:   nil,
		},
		{
			name: "single partial row",
			cards: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: Ten, Suit: Hearts},
			},
			perRow: 7,
			want:   []string{" AS 10H"},
		},
		{
			name: "wraps at row width",
			cards: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: Two, Suit: Spades},
				{Rank: Three, Suit: Spades},
				{Rank: Four, Suit: Spades},
			},
			perRow: 3,
			want:   []string{" AS  2S  3S", " 4S"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRows(tt.cards, tt.perRow)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatRows() = %q, want %q", got, tt.want)
			}
		})
	}
}
