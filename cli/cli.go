// Package cli owns the console side of the game: prompts, hand rendering,
// pacing, and the replay loop. The engine never prints; everything the
// player sees goes through the writer injected here.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sanity-io/litter"

	"blackjack/blackjack"
	"blackjack/cards"
	"blackjack/config"
	"blackjack/events"
	"blackjack/stats"
)

// CLI drives rounds of Blackjack over a line-based console.
type CLI struct {
	in     *bufio.Scanner
	out    io.Writer
	cfg    *config.Config
	rng    *rand.Rand
	store  stats.Store
	events events.EventStore
	logger *log.Logger

	// newRound is swapped out by tests to force specific deals.
	newRound func() (*blackjack.Round, error)
}

// New wires a CLI to its reader, writer, and stores. The reader and writer
// are injected so games can be scripted under test.
func New(in io.Reader, out io.Writer, cfg *config.Config, rng *rand.Rand, store stats.Store, eventStore events.EventStore) *CLI {
	c := &CLI{
		in:     bufio.NewScanner(in),
		out:    out,
		cfg:    cfg,
		rng:    rng,
		store:  store,
		events: eventStore,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	c.newRound = func() (*blackjack.Round, error) {
		return blackjack.NewRound(c.rng, c.cfg.Packs)
	}
	return c
}

// Run plays rounds until the player declines another one. It returns an
// error only when input fails mid-round; a drained shoe just ends the
// round.
func (c *CLI) Run() error {
	fmt.Fprintln(c.out, "Welcome to Blackjack!")
	fmt.Fprintf(c.out, "Shoe of %d pack(s). Closest to 21 wins; dealer stands on 17.\n", c.cfg.Packs)

	for {
		if err := c.playRound(); err != nil {
			return err
		}
		if !c.promptYes("\nPlay again y/n? ") {
			break
		}
	}

	fmt.Fprintln(c.out, "Thanks for playing!")
	return nil
}

func (c *CLI) playRound() error {
	round, err := c.newRound()
	if err != nil {
		return fmt.Errorf("starting round: %w", err)
	}

	round.RegisterEventHandler(c.storeEvent)
	round.RegisterEventHandler(c.renderDealerHits(round))
	if c.cfg.Debug {
		round.RegisterEventHandler(c.debugEvent)
	}

	fmt.Fprintln(c.out, "\n--- New round ---")
	if c.cfg.Debug {
		c.dumpShoe(round)
	}

	if err := round.DealOpeningHands(); err != nil {
		return c.endRound(err)
	}

	playerScore, err := round.PlayPlayerTurn(c)
	if err != nil {
		return c.endRound(err)
	}
	fmt.Fprintln(c.out, "\nYour final hand:")
	c.renderRows(round.PlayerHand.Rows())
	fmt.Fprintf(c.out, "You finish on %s.\n", playerScore)

	fmt.Fprintln(c.out, "\nDealer's turn.")
	if _, err := round.PlayDealerTurn(); err != nil {
		return c.endRound(err)
	}

	out, err := round.Outcome()
	if err != nil {
		return fmt.Errorf("scoring round: %w", err)
	}

	c.announce(round, out)
	c.recordResult(out)
	c.printTotals()

	if c.cfg.Debug {
		c.printStoredEventCount(round.ID)
	}
	return nil
}

// endRound decides whether a mid-round failure is fatal. Running out of
// cards ends the round with a message; anything else propagates.
func (c *CLI) endRound(err error) error {
	if errors.Is(err, cards.ErrEmptyDeck) {
		fmt.Fprintln(c.out, "\nThe shoe is out of cards; the round is void.")
		return nil
	}
	return err
}

// NextAction renders the player's hand and prompts until a legal action
// token comes in. Invalid tokens get a hint and a fresh prompt; no card is
// dealt and no turn is consumed.
func (c *CLI) NextAction(hand *blackjack.Hand, score blackjack.Score) (blackjack.Action, error) {
	fmt.Fprintln(c.out, "\nYour hand:")
	c.renderRows(hand.Rows())
	fmt.Fprintf(c.out, "Score: %s\n", score)

	for {
		fmt.Fprint(c.out, "Hit or stick (h/s)? ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		action, err := blackjack.ParseAction(line)
		if err != nil {
			fmt.Fprintln(c.out, `Please answer "hit" (h) or "stick" (s).`)
			continue
		}
		return action, nil
	}
}

// renderDealerHits replays the dealer's draws one by one, paced by the
// configured delay. It wakes up on the dealer's TurnStarted so the opening
// deal stays silent.
func (c *CLI) renderDealerHits(round *blackjack.Round) events.EventHandler {
	dealerPlaying := false
	return func(e events.Event) {
		switch ev := e.(type) {
		case blackjack.TurnStarted:
			dealerPlaying = ev.Seat == blackjack.Dealer
		case blackjack.CardDealt:
			if !dealerPlaying || ev.Seat != blackjack.Dealer {
				return
			}
			time.Sleep(c.cfg.DealerDelay)
			fmt.Fprintf(c.out, "Dealer draws %s:\n", ev.Card)
			c.renderRows(round.DealerHand.Rows())
		}
	}
}

func (c *CLI) announce(round *blackjack.Round, out blackjack.Outcome) {
	fmt.Fprintln(c.out, "\nDealer's final hand:")
	c.renderRows(round.DealerHand.Rows())
	fmt.Fprintf(c.out, "Dealer finishes on %s.\n", out.DealerScore)

	switch {
	case out.Draw:
		fmt.Fprintln(c.out, "It's a draw.")
	case out.Winner == blackjack.Player:
		fmt.Fprintf(c.out, "You win with %s!\n", out.PlayerScore)
	default:
		fmt.Fprintf(c.out, "Dealer wins with %s.\n", out.DealerScore)
	}
}

func (c *CLI) recordResult(out blackjack.Outcome) {
	if c.store == nil {
		return
	}

	result := stats.Result{
		RoundID:     out.RoundID,
		Winner:      string(out.Winner),
		Draw:        out.Draw,
		Natural:     out.PlayerScore.IsBlackjack(),
		PlayerScore: int(out.PlayerScore),
		DealerScore: int(out.DealerScore),
		PlayedAt:    time.Now(),
	}
	if err := c.store.Record(result); err != nil {
		c.logger.Printf("record round: %v", err)
	}
}

func (c *CLI) printTotals() {
	if c.store == nil {
		return
	}

	totals, err := c.store.Totals()
	if err != nil {
		c.logger.Printf("load totals: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Session: %d played, %d won, %d lost, %d drawn, %d blackjack(s).\n",
		totals.Rounds, totals.Wins, totals.Losses, totals.Draws, totals.Blackjacks)
}

func (c *CLI) storeEvent(e events.Event) {
	if c.events == nil {
		return
	}
	if err := c.events.Append(e); err != nil {
		c.logger.Printf("append event: %v", err)
	}
}

func (c *CLI) debugEvent(e events.Event) {
	fmt.Fprintln(c.out, "---")
	fmt.Fprintln(c.out, "event:", e.EventName())
	fmt.Fprintln(c.out, litter.Sdump(e))
}

func (c *CLI) dumpShoe(round *blackjack.Round) {
	fmt.Fprintf(c.out, "Shoe (%d cards):\n", round.Deck.Remaining())
	c.renderRows(cards.FormatRows(round.Deck.Undealt(), cards.DeckRow))
}

func (c *CLI) printStoredEventCount(roundID string) {
	if c.events == nil {
		return
	}
	stored, err := c.events.LoadEvents(roundID)
	if err != nil {
		c.logger.Printf("load events: %v", err)
		return
	}
	fmt.Fprintf(c.out, "%d events recorded for this round.\n", len(stored))
}

func (c *CLI) renderRows(rows []string) {
	for _, row := range rows {
		fmt.Fprintln(c.out, row)
	}
}

func (c *CLI) promptYes(prompt string) bool {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine()
	if err != nil {
		// End of input means no more rounds.
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *CLI) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
