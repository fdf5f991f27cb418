package bot

import (
	"fmt"

	"rummikub/internal/engine"
)

// NewPolicy creates the board policy for the specified level.
func NewPolicy(level BotLevel) (engine.Policy, error) {
	switch level {
	case BotLevelGreedy:
		return engine.FirstMatch{}, nil
	case BotLevelThrifty:
		return NewRuledPolicy("thrifty", &FavorPointsRule{}, &FavorTilesPlayedRule{}, &AvoidRestructureRule{}), nil
	case BotLevelTactical:
		return &TacticalPolicy{Tuning: DefaultTuning}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBotLevel, level)
	}
}
