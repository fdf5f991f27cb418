package engine

import (
	"errors"
	"fmt"
	"strings"

	"rummikub/internal/domain"
)

var (
	// ErrStaleAction is returned when an action refers to tiles or groups the
	// snapshot no longer holds.
	ErrStaleAction = errors.New("stale action")
	// ErrInvalidGroup is returned when applying an action would leave a group
	// that is neither a set nor a run.
	ErrInvalidGroup = errors.New("action leaves invalid group")
	// ErrNotConserved is returned when an action would create or destroy tiles.
	ErrNotConserved = errors.New("action does not conserve tiles")
)

// ActionKind names the board manipulation families in priority order.
type ActionKind int

const (
	ActionPlayMeld ActionKind = iota + 1
	ActionExtendSet
	ActionExtendRun
	ActionInsertSplit
	ActionRegroupPair
	ActionCompleteSet
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlayMeld:
		return "play_meld"
	case ActionExtendSet:
		return "extend_set"
	case ActionExtendRun:
		return "extend_run"
	case ActionInsertSplit:
		return "insert_split"
	case ActionRegroupPair:
		return "regroup_pair"
	case ActionCompleteSet:
		return "complete_set"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Snapshot is the part of a game an action reads and rewrites. Snapshots are
// treated as immutable; Apply always returns fresh slices.
type Snapshot struct {
	Hand  []domain.Tile
	Board domain.Board
	// DeckLeft is the number of tiles still to draw. Actions never change it.
	DeckLeft int
}

// NewSnapshot copies hand and board.
func NewSnapshot(hand []domain.Tile, board domain.Board) Snapshot {
	return Snapshot{Hand: domain.CloneTiles(hand), Board: board.Clone()}
}

// TileCount totals hand and board tiles.
func (s Snapshot) TileCount() int {
	return len(s.Hand) + s.Board.TileCount()
}

// GroupUpdate replaces the board group at Index.
type GroupUpdate struct {
	Index int
	Group domain.Group
}

// Action is one proposed board mutation. Indices refer to the snapshot the
// action was proposed from.
type Action struct {
	Kind     ActionKind
	FromHand []domain.Tile
	Updates  []GroupUpdate
	Removes  []int
	Adds     []domain.Group
}

// TilesPlayed is the number of hand tiles the action puts on the board.
func (a Action) TilesPlayed() int {
	return len(a.FromHand)
}

// Points is the rank sum of the hand tiles played.
func (a Action) Points() int {
	return domain.SumRanks(a.FromHand)
}

// Groups lists the resulting groups of the action, updates first.
func (a Action) Groups() []domain.Group {
	out := make([]domain.Group, 0, len(a.Updates)+len(a.Adds))
	for _, u := range a.Updates {
		out = append(out, u.Group)
	}
	return append(out, a.Adds...)
}

func (a Action) String() string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	b.WriteString(" ")
	b.WriteString(domain.FormatTiles(a.FromHand))
	groups := a.Groups()
	if len(groups) > 0 {
		b.WriteString(" ->")
		for _, g := range groups {
			b.WriteString(" ")
			b.WriteString(domain.FormatTiles(g))
		}
	}
	return b.String()
}

// Apply returns the snapshot that results from the action. The receiver
// snapshot is not modified. Hand tiles must all be present, every resulting
// group must be valid and the multiset of hand plus board tiles must be
// unchanged; otherwise nothing is applied.
func (a Action) Apply(s Snapshot) (Snapshot, error) {
	hand, err := domain.RemoveTiles(s.Hand, a.FromHand)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrStaleAction, err)
	}

	removed := make(map[int]bool, len(a.Removes))
	for _, i := range a.Removes {
		if i < 0 || i >= len(s.Board) || removed[i] {
			return s, fmt.Errorf("%w: remove index %d", ErrStaleAction, i)
		}
		removed[i] = true
	}

	board := s.Board.Clone()
	for _, u := range a.Updates {
		if u.Index < 0 || u.Index >= len(board) || removed[u.Index] {
			return s, fmt.Errorf("%w: update index %d", ErrStaleAction, u.Index)
		}
		board[u.Index] = domain.Group(domain.CloneTiles(u.Group))
	}

	next := make(domain.Board, 0, len(board)-len(removed)+len(a.Adds))
	for i, g := range board {
		if !removed[i] {
			next = append(next, g)
		}
	}
	for _, g := range a.Adds {
		next = append(next, domain.Group(domain.CloneTiles(g)))
	}

	if err := next.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidGroup, err)
	}
	out := Snapshot{Hand: hand, Board: next, DeckLeft: s.DeckLeft}
	if !sameTiles(s, out) {
		return s, ErrNotConserved
	}
	return out, nil
}

func sameTiles(a, b Snapshot) bool {
	if a.TileCount() != b.TileCount() {
		return false
	}
	counts := domain.CountTiles(a.Hand)
	for _, g := range a.Board {
		for _, t := range g {
			counts[t]++
		}
	}
	for _, t := range b.Hand {
		counts[t]--
	}
	for _, g := range b.Board {
		for _, t := range g {
			counts[t]--
		}
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
