package domain

import (
	"errors"
	"fmt"
)

// Suit is one of the four tile colors.
type Suit int

const (
	Clover Suit = iota
	Heart
	Diamond
	Spade
)

// Suits lists every suit in canonical scan order.
var Suits = [...]Suit{Clover, Heart, Diamond, Spade}

const (
	// MinRank and MaxRank bound tile ranks.
	MinRank = 1
	MaxRank = 13
	// CodeCount is the number of distinct tile codes (13 ranks x 4 suits).
	CodeCount = 52
)

var (
	ErrInvalidTileCode = errors.New("tile code out of range")
	ErrInvalidTile     = errors.New("invalid tile")
)

// String returns the full suit name.
func (s Suit) String() string {
	switch s {
	case Clover:
		return "Clover"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Spade:
		return "Spade"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Letter returns the one-letter abbreviation used in tile notation.
func (s Suit) Letter() string {
	return s.String()[:1]
}

// Tile is an immutable rank/suit pair. Two physical copies of every tile exist
// in a deck; they compare equal.
type Tile struct {
	Rank int
	Suit Suit
}

// TileFromCode maps a flat code 1..52 onto a tile: 1-13 Clover, 14-26 Heart,
// 27-39 Diamond, 40-52 Spade.
func TileFromCode(code int) (Tile, error) {
	if code < 1 || code > CodeCount {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidTileCode, code)
	}
	rank := code % MaxRank
	if rank == 0 {
		rank = MaxRank
	}
	return NewTile(rank, Suit((code-1)/MaxRank))
}

// NewTile validates rank and suit.
func NewTile(rank int, suit Suit) (Tile, error) {
	if rank < MinRank || rank > MaxRank || suit < Clover || suit > Spade {
		return Tile{}, fmt.Errorf("%w: rank=%d suit=%d", ErrInvalidTile, rank, int(suit))
	}
	return Tile{Rank: rank, Suit: suit}, nil
}

// Code is the inverse of TileFromCode.
func (t Tile) Code() int {
	return int(t.Suit)*MaxRank + t.Rank
}

// Points is the tile's value towards meld scores and tie-breaks.
func (t Tile) Points() int {
	return t.Rank
}

func (t Tile) String() string {
	return fmt.Sprintf("%s%d", t.Suit.Letter(), t.Rank)
}
