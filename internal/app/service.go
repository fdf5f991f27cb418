package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"rummikub/internal/domain"
	"rummikub/internal/engine"
)

// Service contains Rummikub use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers    = errors.New("not enough players to start")
	ErrInvalidPlayer    = errors.New("invalid player name")
	ErrNotEnoughTiles   = errors.New("deck cannot cover the starting hands")
	ErrInvalidGameCount = errors.New("game count must be positive")
)

// StartGame shuffles a fresh deck and deals opts.HandSize tiles to every name
// in seating order. The game ID is drawn from the service rng so a seeded
// service reproduces the same game.
func (s *Service) StartGame(names []string, opts domain.Options) (*domain.Game, []Event, error) {
	if len(names) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, nil, fmt.Errorf("%w: empty name", ErrInvalidPlayer)
		}
		if seen[name] {
			return nil, nil, fmt.Errorf("%w: duplicate %q", ErrInvalidPlayer, name)
		}
		seen[name] = true
	}
	if opts.HandSize < 1 || opts.HandSize*len(names) > domain.DeckSize {
		return nil, nil, fmt.Errorf("%w: %d players x %d tiles", ErrNotEnoughTiles, len(names), opts.HandSize)
	}

	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	game := &domain.Game{
		ID:      id.String(),
		Options: opts,
		Deck:    domain.NewDeck(s.rng),
		Phase:   domain.PhaseInProgress,
	}

	events := make([]Event, 0, len(names)+1)

	// Deal in seat order
	for seat, name := range names {
		pl := &domain.Player{
			Name: name,
			Seat: seat,
			Hand: game.Deck.Draw(opts.HandSize),
		}
		game.Players = append(game.Players, pl)

		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Player: pl.Name,
				Hand:   domain.CloneTiles(pl.Hand),
			},
			Recipients: []string{pl.Name},
		})
	}

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:  game.ID,
			Players: append([]string(nil), names...),
			Options: opts,
			Deck:    game.Deck.Len(),
		},
	})

	return game, events, nil
}

// PlayGame runs game to completion with policy and returns its outcome together
// with the event transcript of every turn.
func (s *Service) PlayGame(game *domain.Game, policy engine.Policy, logger runtime.Logger) (domain.Outcome, []Event) {
	var events []Event
	loop := engine.NewGameLoop(engine.NewTurnController(policy, logger), logger)
	loop.OnTurn = func(r engine.TurnReport) {
		events = append(events, TurnEvents(r, len(game.PlayerByName(r.Player).Hand))...)
	}

	outcome := loop.Run(game)
	events = append(events, Event{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			GameID:         outcome.GameID,
			Phase:          outcome.Phase,
			Winners:        outcome.Winners,
			FirstColdStart: outcome.FirstColdStart,
			Rounds:         outcome.Rounds,
		},
	})
	return outcome, events
}

// TurnEvents converts a turn report into events. handLeft is the player's
// hand size after the turn.
func TurnEvents(r engine.TurnReport, handLeft int) []Event {
	var events []Event

	if r.Rejected > 0 {
		events = append(events, Event{
			Kind:    EventProposalRejected,
			Payload: ProposalRejectedPayload{Player: r.Player, Round: r.Round, Rejected: r.Rejected},
		})
	}

	switch {
	case r.PassedColdStart:
		events = append(events, Event{
			Kind: EventColdStartPassed,
			Payload: ColdStartPassedPayload{
				Player: r.Player,
				Round:  r.Round,
				Points: r.ColdStart.Points,
				Melds:  r.ColdStart.Melds,
				First:  r.FirstColdStart,
			},
		})
	case r.ColdStart != nil:
		events = append(events, Event{
			Kind:    EventColdStartMissed,
			Payload: ColdStartMissedPayload{Player: r.Player, Round: r.Round, Points: r.ColdStart.Points},
		})
	default:
		for _, a := range r.Actions {
			events = append(events, Event{
				Kind: EventTilesPlayed,
				Payload: TilesPlayedPayload{
					Player:   r.Player,
					Round:    r.Round,
					Kind:     a.Kind,
					Tiles:    domain.CloneTiles(a.FromHand),
					Groups:   a.Groups(),
					HandLeft: handLeft,
				},
			})
		}
	}

	switch {
	case r.Drew:
		events = append(events, Event{
			Kind:       EventTileDrawn,
			Payload:    TileDrawnPayload{Player: r.Player, Round: r.Round, Tile: r.Drawn},
			Recipients: []string{r.Player},
		})
	case r.Skipped:
		events = append(events, Event{
			Kind:    EventTurnSkipped,
			Payload: TurnSkippedPayload{Player: r.Player, Round: r.Round},
		})
	}
	return events
}
