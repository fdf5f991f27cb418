package domain

// GroupType classifies a group of tiles on the board.
type GroupType int

const (
	Invalid GroupType = iota
	Set               // 3-4 tiles, one rank, distinct suits
	Run               // 3+ tiles, one suit, consecutive ranks in order
)

const (
	// MinGroupSize is the smallest legal set or run.
	MinGroupSize = 3
	// MaxSetSize is bounded by the number of suits.
	MaxSetSize = len(Suits)
)

func (g GroupType) String() string {
	switch g {
	case Set:
		return "set"
	case Run:
		return "run"
	default:
		return "invalid"
	}
}

// IsValidSet checks the set shape: 3-4 tiles of one rank with pairwise distinct suits.
func IsValidSet(tiles []Tile) bool {
	if len(tiles) < MinGroupSize || len(tiles) > MaxSetSize {
		return false
	}
	if !allSameRank(tiles) || !inBounds(tiles) {
		return false
	}
	var seen [len(Suits)]bool
	for _, t := range tiles {
		if seen[t.Suit] {
			return false
		}
		seen[t.Suit] = true
	}
	return true
}

// IsValidRun checks the run shape: 3+ tiles of one suit whose ranks ascend by
// exactly one in slice order.
func IsValidRun(tiles []Tile) bool {
	if len(tiles) < MinGroupSize || !inBounds(tiles) {
		return false
	}
	for i := 1; i < len(tiles); i++ {
		if tiles[i].Suit != tiles[0].Suit {
			return false
		}
		if tiles[i].Rank != tiles[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// IdentifyGroup returns the shape of tiles.
func IdentifyGroup(tiles []Tile) GroupType {
	switch {
	case IsValidSet(tiles):
		return Set
	case IsValidRun(tiles):
		return Run
	default:
		return Invalid
	}
}

// IsValidGroup reports whether tiles form a set or a run.
func IsValidGroup(tiles []Tile) bool {
	return IdentifyGroup(tiles) != Invalid
}

// MissingSuits returns the suits absent from tiles, in canonical order.
func MissingSuits(tiles []Tile) []Suit {
	var present [len(Suits)]bool
	for _, t := range tiles {
		present[t.Suit] = true
	}
	var missing []Suit
	for _, s := range Suits {
		if !present[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// HasSuit reports whether s is in suits.
func HasSuit(suits []Suit, s Suit) bool {
	for _, x := range suits {
		if x == s {
			return true
		}
	}
	return false
}

func allSameRank(tiles []Tile) bool {
	if len(tiles) == 0 {
		return false
	}
	r := tiles[0].Rank
	for _, t := range tiles {
		if t.Rank != r {
			return false
		}
	}
	return true
}

func inBounds(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Rank < MinRank || t.Rank > MaxRank || t.Suit < Clover || t.Suit > Spade {
			return false
		}
	}
	return true
}
