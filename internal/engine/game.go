package engine

import (
	"github.com/heroiclabs/nakama-common/runtime"

	"rummikub/internal/domain"
	"rummikub/internal/logging"
)

// GameLoop plays rounds in seating order until a hand empties or a round ends
// with an empty deck.
type GameLoop struct {
	turns  *TurnController
	logger runtime.Logger

	// OnTurn, when set, receives every turn report as it completes.
	OnTurn func(TurnReport)
}

func NewGameLoop(turns *TurnController, logger runtime.Logger) *GameLoop {
	if logger == nil {
		logger = logging.Nop()
	}
	return &GameLoop{turns: turns, logger: logger}
}

// Run drives game to a terminal phase and returns its outcome. Every turn
// either plays from the hand, draws, or finds the deck already empty, so the
// loop always terminates.
func (l *GameLoop) Run(game *domain.Game) domain.Outcome {
	game.Phase = domain.PhaseInProgress
	l.logger.Debug("Game %s: %d players, policy %s", game.ID, len(game.Players), l.turns.Policy().Name())
	for !game.Finished() {
		game.Round++
		for _, p := range game.Players {
			report := l.turns.PlayTurn(game, p)
			if l.OnTurn != nil {
				l.OnTurn(report)
			}
			if len(p.Hand) == 0 {
				game.Phase = domain.PhaseWonByEmptyHand
				game.Winners = []string{p.Name}
				l.logger.Debug("Game %s: %s emptied their hand in round %d", game.ID, p.Name, game.Round)
				break
			}
		}
		if !game.Finished() && game.Deck.Empty() {
			game.Phase = domain.PhaseWonByDeckExhaustion
			game.Winners = ResolveDeckExhaustion(game.Players)
			l.logger.Debug("Game %s: deck exhausted after round %d, winners %v", game.ID, game.Round, game.Winners)
		}
	}
	return OutcomeOf(game)
}

// OutcomeOf summarises a finished game.
func OutcomeOf(game *domain.Game) domain.Outcome {
	names := make([]string, len(game.Players))
	for i, p := range game.Players {
		names[i] = p.Name
	}
	return domain.Outcome{
		GameID:         game.ID,
		Phase:          game.Phase,
		Winners:        append([]string(nil), game.Winners...),
		FirstColdStart: game.FirstColdStart,
		Rounds:         game.Round,
		Players:        names,
	}
}

// ResolveDeckExhaustion returns the players holding the fewest tiles; among
// those, the ones with the lowest rank sum. Several names mean a genuine tie.
// Names keep seating order.
func ResolveDeckExhaustion(players []*domain.Player) []string {
	if len(players) == 0 {
		return nil
	}
	fewest := len(players[0].Hand)
	for _, p := range players[1:] {
		if len(p.Hand) < fewest {
			fewest = len(p.Hand)
		}
	}

	var candidates []*domain.Player
	lowest := -1
	for _, p := range players {
		if len(p.Hand) != fewest {
			continue
		}
		candidates = append(candidates, p)
		if sum := domain.SumRanks(p.Hand); lowest < 0 || sum < lowest {
			lowest = sum
		}
	}

	var winners []string
	for _, p := range candidates {
		if domain.SumRanks(p.Hand) == lowest {
			winners = append(winners, p.Name)
		}
	}
	return winners
}
