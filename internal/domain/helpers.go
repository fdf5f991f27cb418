package domain

import (
	"errors"
	"fmt"
	"sort"
)

var ErrTileNotFound = errors.New("tile not found")

// CloneTiles returns an independent copy of tiles.
func CloneTiles(tiles []Tile) []Tile {
	if tiles == nil {
		return nil
	}
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// SortByRank orders tiles by rank, then suit.
func SortByRank(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].Rank != tiles[j].Rank {
			return tiles[i].Rank < tiles[j].Rank
		}
		return tiles[i].Suit < tiles[j].Suit
	})
}

// GroupByRank buckets tiles by rank in ascending rank order. Each bucket is
// sorted by suit.
func GroupByRank(tiles []Tile) [][]Tile {
	sorted := CloneTiles(tiles)
	SortByRank(sorted)

	var groups [][]Tile
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Rank == sorted[i].Rank {
			j++
		}
		groups = append(groups, sorted[i:j:j])
		i = j
	}
	return groups
}

// GroupBySuit buckets tiles by suit. Index the result with a Suit; each bucket
// is sorted by rank.
func GroupBySuit(tiles []Tile) [len(Suits)][]Tile {
	var groups [len(Suits)][]Tile
	for _, t := range tiles {
		groups[t.Suit] = append(groups[t.Suit], t)
	}
	for i := range groups {
		SortByRank(groups[i])
	}
	return groups
}

// SumRanks totals tile points.
func SumRanks(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Points()
	}
	return sum
}

// IndexOfTile returns the first index holding t, or -1.
func IndexOfTile(tiles []Tile, t Tile) int {
	for i, x := range tiles {
		if x == t {
			return i
		}
	}
	return -1
}

// ContainsTile reports whether t is present.
func ContainsTile(tiles []Tile, t Tile) bool {
	return IndexOfTile(tiles, t) >= 0
}

// CountTiles returns the multiset view of tiles.
func CountTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// RemoveTiles removes one instance of every tile in toRemove and returns the
// updated collection. Nothing is removed when any tile is missing.
func RemoveTiles(tiles []Tile, toRemove []Tile) ([]Tile, error) {
	if len(toRemove) == 0 {
		return CloneTiles(tiles), nil
	}

	removeCounts := CountTiles(toRemove)
	have := CountTiles(tiles)
	for t, n := range removeCounts {
		if have[t] < n {
			return tiles, fmt.Errorf("%w: %s", ErrTileNotFound, t)
		}
	}

	updated := make([]Tile, 0, len(tiles)-len(toRemove))
	for _, t := range tiles {
		if n := removeCounts[t]; n > 0 {
			removeCounts[t] = n - 1
			continue
		}
		updated = append(updated, t)
	}
	return updated, nil
}

// FormatTiles renders tiles as "[C3 H3 D3]".
func FormatTiles(tiles []Tile) string {
	out := "["
	for i, t := range tiles {
		if i > 0 {
			out += " "
		}
		out += t.String()
	}
	return out + "]"
}
