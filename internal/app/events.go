package app

import (
	"rummikub/internal/domain"
	"rummikub/internal/engine"
)

// EventKind identifies emitted domain events for dispatch and transcripts.
type EventKind string

const (
	EventGameStarted      EventKind = "game_started"
	EventHandDealt        EventKind = "hand_dealt"
	EventColdStartPassed  EventKind = "cold_start_passed"
	EventColdStartMissed  EventKind = "cold_start_missed"
	EventTilesPlayed      EventKind = "tiles_played"
	EventTileDrawn        EventKind = "tile_drawn"
	EventTurnSkipped      EventKind = "turn_skipped"
	EventProposalRejected EventKind = "proposal_rejected"
	EventGameEnded        EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player names; empty means broadcast
}

type GameStartedPayload struct {
	GameID  string
	Players []string
	Options domain.Options
	Deck    int
}

type HandDealtPayload struct {
	Player string
	Hand   []domain.Tile
}

type ColdStartPassedPayload struct {
	Player string
	Round  int
	Points int
	Melds  []domain.Group
	First  bool
}

type ColdStartMissedPayload struct {
	Player string
	Round  int
	Points int
}

type TilesPlayedPayload struct {
	Player   string
	Round    int
	Kind     engine.ActionKind
	Tiles    []domain.Tile
	Groups   []domain.Group
	HandLeft int
}

type TileDrawnPayload struct {
	Player string
	Round  int
	Tile   domain.Tile
}

type TurnSkippedPayload struct {
	Player string
	Round  int
}

type ProposalRejectedPayload struct {
	Player   string
	Round    int
	Rejected int
}

type GameEndedPayload struct {
	GameID         string
	Phase          domain.Phase
	Winners        []string
	FirstColdStart string
	Rounds         int
}
