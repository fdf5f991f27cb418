package bot

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBotLevel = errors.New("unknown bot level")

// BotLevel selects the policy a simulated player uses on the board.
type BotLevel int

const (
	// BotLevelGreedy takes the first proposal: the house heuristic.
	BotLevelGreedy BotLevel = iota + 1
	// BotLevelThrifty prefers the action that empties the hand fastest.
	BotLevelThrifty
	// BotLevelTactical scores the hand each action leaves behind.
	BotLevelTactical
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelGreedy:
		return "greedy"
	case BotLevelThrifty:
		return "thrifty"
	case BotLevelTactical:
		return "tactical"
	default:
		return fmt.Sprintf("BotLevel(%d)", int(l))
	}
}

// ParseBotLevel accepts a level name or its number. An empty string is greedy.
func ParseBotLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "greedy", "1":
		return BotLevelGreedy, nil
	case "thrifty", "2":
		return BotLevelThrifty, nil
	case "tactical", "3":
		return BotLevelTactical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBotLevel, s)
	}
}
