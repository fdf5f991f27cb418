package domain

import (
	"errors"
	"math/rand"
)

// Copies is the number of physical copies of every tile code.
const Copies = 2

// DeckSize is the number of tiles in a full deck.
const DeckSize = CodeCount * Copies

var ErrDeckEmpty = errors.New("deck is empty")

// Deck is the draw pile. It only ever shrinks.
type Deck struct {
	tiles []Tile
}

// NewTileSet returns the 104 tiles of a full deck in code order.
func NewTileSet() []Tile {
	tiles := make([]Tile, 0, DeckSize)
	for c := 0; c < Copies; c++ {
		for code := 1; code <= CodeCount; code++ {
			t, _ := TileFromCode(code)
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// ShuffleTiles returns a shuffled copy of the given tiles.
func ShuffleTiles(tiles []Tile, rng *rand.Rand) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// NewDeck returns a full deck shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{tiles: ShuffleTiles(NewTileSet(), rng)}
}

// NewDeckFrom builds a deck that draws the given tiles front to back.
func NewDeckFrom(tiles []Tile) *Deck {
	return &Deck{tiles: CloneTiles(tiles)}
}

// Len reports the remaining tile count.
func (d *Deck) Len() int {
	return len(d.tiles)
}

// Empty reports whether the deck is exhausted.
func (d *Deck) Empty() bool {
	return len(d.tiles) == 0
}

// Draw removes up to n tiles from the top of the deck.
func (d *Deck) Draw(n int) []Tile {
	if n > len(d.tiles) {
		n = len(d.tiles)
	}
	drawn := CloneTiles(d.tiles[:n])
	d.tiles = d.tiles[n:]
	return drawn
}

// DrawOne removes the top tile.
func (d *Deck) DrawOne() (Tile, error) {
	if len(d.tiles) == 0 {
		return Tile{}, ErrDeckEmpty
	}
	t := d.tiles[0]
	d.tiles = d.tiles[1:]
	return t, nil
}
