package blackjack

import (
	"errors"
	"fmt"
	"strings"
)

// Action is one of the two moves a player may make on their turn.
type Action string

const (
	Hit   Action = "hit"
	Stick Action = "stick"
)

// ErrUnknownAction means an input token did not name a legal action.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction maps a console token to an Action. Tokens are matched
// case-insensitively and may be abbreviated to their first letter.
func ParseAction(token string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "hit", "h":
		return Hit, nil
	case "stick", "s":
		return Stick, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, token)
	}
}

// ActionSource supplies the player's next action given their current hand
// and score. The CLI implements it with a prompt loop; tests use scripted
// sources.
type ActionSource interface {
	NextAction(hand *Hand, score Score) (Action, error)
}
