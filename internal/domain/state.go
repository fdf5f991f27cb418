package domain

import "fmt"

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseInProgress is the state while rounds are being played.
	PhaseInProgress Phase = "in_progress"
	// PhaseWonByEmptyHand is reached when a player plays their last tile.
	PhaseWonByEmptyHand Phase = "won_by_empty_hand"
	// PhaseWonByDeckExhaustion is reached when a round ends with an empty deck.
	PhaseWonByDeckExhaustion Phase = "won_by_deck_exhaustion"
)

// Group is one set or run on the board, in display order.
type Group []Tile

// Board is the shared river of played groups.
type Board []Group

// Clone deep-copies the board so that snapshots never alias.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, g := range b {
		out[i] = Group(CloneTiles(g))
	}
	return out
}

// TileCount totals the tiles in every group.
func (b Board) TileCount() int {
	n := 0
	for _, g := range b {
		n += len(g)
	}
	return n
}

// Validate returns an error naming the first group that is neither a set nor a run.
func (b Board) Validate() error {
	for i, g := range b {
		if !IsValidGroup(g) {
			return fmt.Errorf("group %d %s is not a valid set or run", i, FormatTiles(g))
		}
	}
	return nil
}

func (b Board) String() string {
	out := ""
	for i, g := range b {
		if i > 0 {
			out += " "
		}
		out += FormatTiles(g)
	}
	return out
}

// Player holds the per-game state of a participant.
type Player struct {
	Name               string
	Seat               int // 0-based seating order
	Hand               []Tile
	HasPassedColdStart bool
}

// Options are the rule switches of a single game.
type Options struct {
	HandSize           int
	ColdStartEnabled   bool
	ColdStartThreshold int
}

// DefaultOptions mirrors the standard house rules.
func DefaultOptions() Options {
	return Options{
		HandSize:           14,
		ColdStartEnabled:   true,
		ColdStartThreshold: 30,
	}
}

// Game is the authoritative state of one simulated game. It is owned by a
// single goroutine for its whole life.
type Game struct {
	ID      string
	Options Options
	Players []*Player // seating order
	Deck    *Deck
	Board   Board
	Phase   Phase
	Round   int

	// FirstColdStart names the first player to pass the cold-start gate.
	FirstColdStart string
	// Winners is set once the game leaves PhaseInProgress.
	Winners []string
}

// ClaimFirstColdStart records name as the first cold-start passer unless
// another player already holds the claim. It reports whether the claim was taken.
func (g *Game) ClaimFirstColdStart(name string) bool {
	if g.FirstColdStart != "" {
		return false
	}
	g.FirstColdStart = name
	return true
}

// PlayerByName returns the named player or nil.
func (g *Game) PlayerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TileCount totals deck, hands and board. It equals DeckSize for a game dealt
// from a full deck.
func (g *Game) TileCount() int {
	n := g.Board.TileCount()
	if g.Deck != nil {
		n += g.Deck.Len()
	}
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

// Finished reports whether the game reached a terminal phase.
func (g *Game) Finished() bool {
	return g.Phase == PhaseWonByEmptyHand || g.Phase == PhaseWonByDeckExhaustion
}

// Outcome is the result of a finished game reported to the statistics layer.
type Outcome struct {
	GameID         string
	Phase          Phase
	Winners        []string
	FirstColdStart string
	Rounds         int
	Players        []string
}

// IsTie reports whether the tie-break left more than one winner.
func (o Outcome) IsTie() bool {
	return len(o.Winners) > 1
}

// IsWinner reports whether name is among the winners.
func (o Outcome) IsWinner(name string) bool {
	for _, w := range o.Winners {
		if w == name {
			return true
		}
	}
	return false
}
