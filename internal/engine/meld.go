package engine

import (
	"sort"

	"rummikub/internal/domain"
)

// FindSets returns every rank bucket of tiles that forms a set. A bucket that
// holds a duplicate copy of a suit is not a set.
func FindSets(tiles []domain.Tile) []domain.Group {
	var sets []domain.Group
	for _, bucket := range domain.GroupByRank(tiles) {
		if domain.IsValidSet(bucket) {
			sets = append(sets, domain.Group(domain.CloneTiles(bucket)))
		}
	}
	return sets
}

// runScanOrder is the suit order runs are reported in. It differs from
// domain.Suits: spades come before diamonds, which decides ties in BestMeld.
var runScanOrder = [...]domain.Suit{domain.Clover, domain.Heart, domain.Spade, domain.Diamond}

// FindRuns returns the maximal runs of each suit in runScanOrder. Duplicate
// ranks are skipped so that the second copy of a tile never breaks a
// sequence. Sub-runs of a maximal run are not enumerated.
func FindRuns(tiles []domain.Tile) []domain.Group {
	var runs []domain.Group
	bySuit := domain.GroupBySuit(tiles)
	for _, s := range runScanOrder {
		var current domain.Group
		for _, t := range bySuit[s] {
			if len(current) == 0 {
				current = domain.Group{t}
				continue
			}
			last := current[len(current)-1]
			switch t.Rank {
			case last.Rank:
				continue
			case last.Rank + 1:
				current = append(current, t)
			default:
				if len(current) >= domain.MinGroupSize {
					runs = append(runs, current)
				}
				current = domain.Group{t}
			}
		}
		if len(current) >= domain.MinGroupSize {
			runs = append(runs, current)
		}
	}
	return runs
}

// FindMelds returns sets followed by runs.
func FindMelds(hand []domain.Tile) []domain.Group {
	return append(FindSets(hand), FindRuns(hand)...)
}

// BestMeld picks the meld with the highest rank sum. Ties keep the earlier meld.
func BestMeld(melds []domain.Group) (domain.Group, bool) {
	if len(melds) == 0 {
		return nil, false
	}
	best := 0
	for i := 1; i < len(melds); i++ {
		if domain.SumRanks(melds[i]) > domain.SumRanks(melds[best]) {
			best = i
		}
	}
	return melds[best], true
}

// rankMelds orders melds by rank sum, highest first, keeping detection order
// among equals.
func rankMelds(melds []domain.Group) {
	sort.SliceStable(melds, func(i, j int) bool {
		return domain.SumRanks(melds[i]) > domain.SumRanks(melds[j])
	})
}
