package blackjack

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"blackjack/cards"
	"blackjack/events"
)

// Participant identifies a seat in the round.
type Participant string

const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

// dealerStandsAt is the dealer's fixed stand threshold: the dealer draws
// until reaching 17 or busting, on soft and hard totals alike.
const dealerStandsAt Score = 17

// Round holds the state of a single player-versus-dealer round: one shoe,
// one hand per seat, and the log of everything that happened. A round is
// created, played, and discarded; nothing carries over to the next one.
type Round struct {
	ID         string
	Packs      int
	Deck       *cards.Deck
	PlayerHand *Hand
	DealerHand *Hand
	Events     []events.Event

	eventHandlers []events.EventHandler
}

// NewRound builds a shuffled shoe of the given pack count and empty hands
// for both seats. The random source is injected so shuffles are
// reproducible under test.
func NewRound(rng *rand.Rand, packs int) (*Round, error) {
	deck, err := cards.NewShoe(packs)
	if err != nil {
		return nil, err
	}
	if err := deck.Shuffle(rng); err != nil {
		return nil, err
	}

	return &Round{
		ID:         uuid.NewString(),
		Packs:      packs,
		Deck:       deck,
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
	}, nil
}

// NewRiggedRound builds a round over a fixed, unshuffled deck. Tests use it
// to force specific deals.
func NewRiggedRound(deck *cards.Deck) *Round {
	return &Round{
		ID:         uuid.NewString(),
		Deck:       deck,
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
	}
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (r *Round) RegisterEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (r *Round) emitEvent(event events.Event) {
	// Add event to round's event log
	r.Events = append(r.Events, event)

	// Notify all handlers
	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

// dealTo moves one card from the deck into a hand. Either the deal succeeds
// and both are updated, or it fails and neither is touched.
func (r *Round) dealTo(seat Participant) error {
	hand := r.hand(seat)
	card, err := r.Deck.Deal()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", seat, err)
	}
	hand.Add(card)

	r.emitEvent(CardDealt{
		RoundID:  r.ID,
		Seat:     seat,
		Card:     card,
		HandSize: hand.Len(),
	})
	return nil
}

func (r *Round) hand(seat Participant) *Hand {
	if seat == Dealer {
		return r.DealerHand
	}
	return r.PlayerHand
}

// DealOpeningHands deals two cards to each seat, one at a time, player
// first.
func (r *Round) DealOpeningHands() error {
	r.emitEvent(RoundStarted{
		RoundID:  r.ID,
		Packs:    r.Packs,
		ShoeSize: r.Deck.Remaining(),
	})

	for i := 0; i < 2; i++ {
		if err := r.dealTo(Player); err != nil {
			return err
		}
		if err := r.dealTo(Dealer); err != nil {
			return err
		}
	}
	return nil
}

// PlayPlayerTurn drives the player's turn, pulling actions from src until
// the player sticks or busts. Anything other than Hit or Stick is rejected
// without touching the hand.
func (r *Round) PlayPlayerTurn(src ActionSource) (Score, error) {
	if src == nil {
		return Bust, errors.New("nil action source")
	}

	r.emitEvent(TurnStarted{RoundID: r.ID, Seat: Player})

	score, err := r.PlayerHand.Score()
	if err != nil {
		return Bust, err
	}

	for !score.IsBust() {
		action, err := src.NextAction(r.PlayerHand, score)
		if err != nil {
			return Bust, err
		}
		if action == Stick {
			break
		}
		if action != Hit {
			return Bust, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}

		if err := r.dealTo(Player); err != nil {
			return Bust, err
		}
		if score, err = r.PlayerHand.Score(); err != nil {
			return Bust, err
		}
	}

	r.emitEvent(TurnEnded{RoundID: r.ID, Seat: Player, Score: score})
	return score, nil
}

// PlayDealerTurn plays the dealer's fixed policy: draw while the score is
// below 17, stand otherwise. Deck exhaustion surfaces as an error rather
// than looping.
func (r *Round) PlayDealerTurn() (Score, error) {
	r.emitEvent(TurnStarted{RoundID: r.ID, Seat: Dealer})

	score, err := r.DealerHand.Score()
	if err != nil {
		return Bust, err
	}

	for !score.IsBust() && score < dealerStandsAt {
		if err := r.dealTo(Dealer); err != nil {
			return Bust, err
		}
		if score, err = r.DealerHand.Score(); err != nil {
			return Bust, err
		}
	}

	r.emitEvent(TurnEnded{RoundID: r.ID, Seat: Dealer, Score: score})
	return score, nil
}

// Outcome is the final classification of a round.
type Outcome struct {
	RoundID     string
	Winner      Participant // empty on a draw
	Draw        bool
	PlayerScore Score
	DealerScore Score
}

// Outcome scores both hands and declares the result. Both turns must have
// been played first: the dealer plays even after a player bust, so a
// Bust-versus-Bust draw is reachable.
func (r *Round) Outcome() (Outcome, error) {
	playerScore, err := r.PlayerHand.Score()
	if err != nil {
		return Outcome{}, fmt.Errorf("scoring player hand: %w", err)
	}
	dealerScore, err := r.DealerHand.Score()
	if err != nil {
		return Outcome{}, fmt.Errorf("scoring dealer hand: %w", err)
	}

	out := Outcome{
		RoundID:     r.ID,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
	}
	switch playerScore.Compare(dealerScore) {
	case 1:
		out.Winner = Player
	case -1:
		out.Winner = Dealer
	default:
		out.Draw = true
	}

	r.emitEvent(RoundEnded{
		RoundID:     r.ID,
		Winner:      out.Winner,
		Draw:        out.Draw,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
	})
	return out, nil
}
