package engine

import (
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"rummikub/internal/domain"
	"rummikub/internal/logging"
)

// TurnState is a step of a player's turn.
type TurnState int

const (
	ColdStartPending TurnState = iota
	FreePlay
	Drawing
	TurnDone
)

func (s TurnState) String() string {
	switch s {
	case ColdStartPending:
		return "cold_start_pending"
	case FreePlay:
		return "free_play"
	case Drawing:
		return "drawing"
	case TurnDone:
		return "turn_done"
	default:
		return "unknown"
	}
}

// TurnReport records everything a turn did.
type TurnReport struct {
	Player string
	Round  int
	Start  TurnState

	// ColdStart is set when the cold-start gate was evaluated.
	ColdStart       *ColdStartResult
	PassedColdStart bool
	FirstColdStart  bool

	Actions  []Action
	Rejected int

	Drew    bool
	Drawn   domain.Tile
	Skipped bool // nothing to play and nothing to draw
}

// TurnController runs one player's turn to completion.
type TurnController struct {
	policy Policy
	logger runtime.Logger
}

// NewTurnController uses FirstMatch when policy is nil.
func NewTurnController(policy Policy, logger runtime.Logger) *TurnController {
	if policy == nil {
		policy = FirstMatch{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &TurnController{policy: policy, logger: logger}
}

// Policy returns the policy the controller plays with.
func (tc *TurnController) Policy() Policy {
	return tc.policy
}

// PlayTurn mutates the player's hand, the board and the deck of game.
func (tc *TurnController) PlayTurn(game *domain.Game, player *domain.Player) TurnReport {
	report := TurnReport{Player: player.Name, Round: game.Round}

	state := FreePlay
	if game.Options.ColdStartEnabled && !player.HasPassedColdStart {
		state = ColdStartPending
	}
	report.Start = state

	for state != TurnDone {
		switch state {
		case ColdStartPending:
			state = tc.coldStart(game, player, &report)
		case FreePlay:
			state = tc.freePlay(game, player, &report)
		case Drawing:
			state = tc.draw(game, player, &report)
		default:
			state = TurnDone
		}
	}
	return report
}

// TryColdStart evaluates the gate for player and commits a pass. A player who
// already passed is left untouched.
func (tc *TurnController) TryColdStart(game *domain.Game, player *domain.Player) (ColdStartResult, bool) {
	if player.HasPassedColdStart {
		return ColdStartResult{Remaining: domain.CloneTiles(player.Hand)}, false
	}
	res := EvaluateColdStart(player.Hand, game.Options.ColdStartThreshold)
	if !res.Passed {
		return res, false
	}

	next, _, err := ApplyColdStart(NewSnapshot(player.Hand, game.Board), res)
	if err != nil {
		tc.logger.Warn("ColdStart: %s could not publish melds: %v", player.Name, err)
		res.Passed = false
		return res, false
	}
	player.Hand = next.Hand
	game.Board = next.Board
	player.HasPassedColdStart = true
	return res, true
}

func (tc *TurnController) coldStart(game *domain.Game, player *domain.Player, report *TurnReport) TurnState {
	res, passed := tc.TryColdStart(game, player)
	report.ColdStart = &res
	if !passed {
		tc.logger.Debug("%s missed the cold start with %d points", player.Name, res.Points)
		return Drawing
	}

	report.PassedColdStart = true
	report.Actions = append(report.Actions, res.Actions()...)
	report.FirstColdStart = game.ClaimFirstColdStart(player.Name)
	tc.logger.Debug("%s passed the cold start with %d points: %s", player.Name, res.Points, domain.Board(res.Melds))
	if report.FirstColdStart {
		tc.logger.Debug("%s is the first to pass the cold start", player.Name)
	}
	return TurnDone
}

func (tc *TurnController) freePlay(game *domain.Game, player *domain.Player, report *TurnReport) TurnState {
	applied := 0
	for {
		snap := NewSnapshot(player.Hand, game.Board)
		snap.DeckLeft = game.Deck.Len()
		next, action, ok := tc.step(snap, report)
		if !ok {
			break
		}
		player.Hand = next.Hand
		game.Board = next.Board
		report.Actions = append(report.Actions, action)
		applied++
		tc.logger.Debug("%s %s", player.Name, action)
	}
	if applied == 0 {
		return Drawing
	}
	return TurnDone
}

// step applies the policy's pick. A proposal that fails to apply is logged,
// dropped and the policy is asked again.
func (tc *TurnController) step(snap Snapshot, report *TurnReport) (Snapshot, Action, bool) {
	proposals := ProposeAll(snap)
	for len(proposals) > 0 {
		i, ok := tc.policy.Choose(snap, proposals)
		if !ok || i < 0 || i >= len(proposals) {
			return snap, Action{}, false
		}
		next, err := proposals[i].Apply(snap)
		if err == nil {
			return next, proposals[i], true
		}
		report.Rejected++
		if errors.Is(err, ErrStaleAction) {
			tc.logger.Warn("FreePlay: skipping %s for %s: %v", proposals[i], report.Player, err)
		} else {
			tc.logger.Error("FreePlay: rejected %s for %s: %v", proposals[i], report.Player, err)
		}
		proposals = append(proposals[:i:i], proposals[i+1:]...)
	}
	return snap, Action{}, false
}

func (tc *TurnController) draw(game *domain.Game, player *domain.Player, report *TurnReport) TurnState {
	tile, err := game.Deck.DrawOne()
	if err != nil {
		report.Skipped = true
		tc.logger.Debug("%s has nothing to play and the deck is empty", player.Name)
		return TurnDone
	}
	player.Hand = append(player.Hand, tile)
	report.Drew = true
	report.Drawn = tile
	tc.logger.Debug("%s drew %s", player.Name, tile)
	return TurnDone
}
