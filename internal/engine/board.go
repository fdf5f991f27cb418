package engine

import (
	"rummikub/internal/domain"
)

// Proposer lists candidate actions of one family for a snapshot, in scan order.
type Proposer func(s Snapshot) []Action

// Proposers holds the action families in priority order.
var Proposers = []Proposer{
	ProposePlayMeld,
	ProposeExtendSet,
	ProposeExtendRun,
	ProposeInsertSplit,
	ProposeRegroupPair,
	ProposeCompleteSet,
}

// ProposeAll concatenates every family's proposals in priority order.
func ProposeAll(s Snapshot) []Action {
	var out []Action
	for _, p := range Proposers {
		out = append(out, p(s)...)
	}
	return out
}

// ProposePlayMeld offers every meld of the hand as a new group, highest rank
// sum first.
func ProposePlayMeld(s Snapshot) []Action {
	melds := FindMelds(s.Hand)
	rankMelds(melds)
	actions := make([]Action, 0, len(melds))
	for _, m := range melds {
		actions = append(actions, Action{
			Kind:     ActionPlayMeld,
			FromHand: domain.CloneTiles(m),
			Adds:     []domain.Group{m},
		})
	}
	return actions
}

// ProposeExtendSet offers a hand tile of a missing suit to every 3-tile set.
func ProposeExtendSet(s Snapshot) []Action {
	var actions []Action
	for i, g := range s.Board {
		if len(g) >= domain.MaxSetSize || !domain.IsValidSet(g) {
			continue
		}
		missing := domain.MissingSuits(g)
		seen := make(map[domain.Tile]bool)
		for _, t := range s.Hand {
			if t.Rank != g[0].Rank || !domain.HasSuit(missing, t.Suit) || seen[t] {
				continue
			}
			seen[t] = true
			actions = append(actions, Action{
				Kind:     ActionExtendSet,
				FromHand: []domain.Tile{t},
				Updates:  []GroupUpdate{{Index: i, Group: appendTile(g, t)}},
			})
		}
	}
	return actions
}

// ProposeExtendRun offers chained extensions at the head and at the tail of
// every run, each as far as the hand allows.
func ProposeExtendRun(s Snapshot) []Action {
	var actions []Action
	for i, g := range s.Board {
		if !domain.IsValidRun(g) {
			continue
		}
		suit := g[0].Suit

		var head []domain.Tile
		for r := g[0].Rank - 1; r >= domain.MinRank; r-- {
			t := domain.Tile{Rank: r, Suit: suit}
			if !domain.ContainsTile(s.Hand, t) {
				break
			}
			head = append([]domain.Tile{t}, head...)
		}
		if len(head) > 0 {
			actions = append(actions, Action{
				Kind:     ActionExtendRun,
				FromHand: head,
				Updates:  []GroupUpdate{{Index: i, Group: concat(head, g)}},
			})
		}

		var tail []domain.Tile
		for r := g[len(g)-1].Rank + 1; r <= domain.MaxRank; r++ {
			t := domain.Tile{Rank: r, Suit: suit}
			if !domain.ContainsTile(s.Hand, t) {
				break
			}
			tail = append(tail, t)
		}
		if len(tail) > 0 {
			actions = append(actions, Action{
				Kind:     ActionExtendRun,
				FromHand: tail,
				Updates:  []GroupUpdate{{Index: i, Group: concat(g, tail)}},
			})
		}
	}
	return actions
}

// ProposeInsertSplit offers the duplicate of an interior run tile. The run is
// replaced by two runs that both hold a copy of that tile. Positions nearer
// than two tiles to either end are not interior.
func ProposeInsertSplit(s Snapshot) []Action {
	var actions []Action
	for i, g := range s.Board {
		if len(g) < 5 || !domain.IsValidRun(g) {
			continue
		}
		for p := 2; p <= len(g)-3; p++ {
			t := g[p]
			if !domain.ContainsTile(s.Hand, t) {
				continue
			}
			actions = append(actions, Action{
				Kind:     ActionInsertSplit,
				FromHand: []domain.Tile{t},
				Removes:  []int{i},
				Adds:     []domain.Group{copyGroup(g[:p+1]), concat([]domain.Tile{t}, g[p+1:])},
			})
		}
	}
	return actions
}

// ProposeRegroupPair offers new sets built from a pair in the hand (one rank,
// exactly two suits) and a third tile taken from the board. A 4-tile set
// gives only its first tile of a missing suit.
func ProposeRegroupPair(s Snapshot) []Action {
	var actions []Action
	for _, pair := range findPairs(s.Hand) {
		needed := domain.MissingSuits(pair)
		lastSet := -1
		for _, ex := range extractions(s.Board, pair[0].Rank, needed) {
			if domain.IdentifyGroup(s.Board[ex.index]) == domain.Set {
				if ex.index == lastSet {
					continue
				}
				lastSet = ex.index
			}
			adds := append(ex.remainder, concat(pair, []domain.Tile{ex.tile}))
			actions = append(actions, Action{
				Kind:     ActionRegroupPair,
				FromHand: domain.CloneTiles(pair),
				Removes:  []int{ex.index},
				Adds:     adds,
			})
		}
	}
	return actions
}

// ProposeCompleteSet offers, for every distinct hand tile, the set completed
// with the first two board tiles of its rank and distinct other suits. Each
// board group gives at most one tile.
func ProposeCompleteSet(s Snapshot) []Action {
	var actions []Action
	seen := make(map[domain.Tile]bool)
	for _, t := range s.Hand {
		if seen[t] {
			continue
		}
		seen[t] = true

		needed := domain.MissingSuits([]domain.Tile{t})
		var picked []extraction
		for _, ex := range extractions(s.Board, t.Rank, needed) {
			if len(picked) > 0 && picked[len(picked)-1].index == ex.index {
				continue
			}
			if !domain.HasSuit(needed, ex.tile.Suit) {
				continue
			}
			picked = append(picked, ex)
			needed = withoutSuit(needed, ex.tile.Suit)
			if len(picked) == 2 {
				break
			}
		}
		if len(picked) < 2 {
			continue
		}

		set := domain.Group{t, picked[0].tile, picked[1].tile}
		var adds []domain.Group
		for _, ex := range picked {
			adds = append(adds, ex.remainder...)
		}
		actions = append(actions, Action{
			Kind:     ActionCompleteSet,
			FromHand: []domain.Tile{t},
			Removes:  []int{picked[0].index, picked[1].index},
			Adds:     append(adds, set),
		})
	}
	return actions
}

// extraction is one way of taking a single tile out of a board group while
// leaving only valid groups behind.
type extraction struct {
	index     int
	tile      domain.Tile
	remainder []domain.Group
}

// extractions scans the board in order for tiles of rank whose suit is in
// suits. Per group: run endpoints (runs of 4+), run interiors that leave
// both sides at least 3 long (runs of 7+), then every matching tile of a
// 4-tile set.
func extractions(board domain.Board, rank int, suits []domain.Suit) []extraction {
	var out []extraction
	for i, g := range board {
		switch domain.IdentifyGroup(g) {
		case domain.Run:
			if !domain.HasSuit(suits, g[0].Suit) {
				continue
			}
			n := len(g)
			if n >= 4 {
				if g[0].Rank == rank {
					out = append(out, extraction{index: i, tile: g[0], remainder: []domain.Group{copyGroup(g[1:])}})
				}
				if g[n-1].Rank == rank {
					out = append(out, extraction{index: i, tile: g[n-1], remainder: []domain.Group{copyGroup(g[:n-1])}})
				}
			}
			for p := 3; p <= n-4; p++ {
				if g[p].Rank == rank {
					out = append(out, extraction{
						index:     i,
						tile:      g[p],
						remainder: []domain.Group{copyGroup(g[:p]), copyGroup(g[p+1:])},
					})
				}
			}
		case domain.Set:
			if len(g) != domain.MaxSetSize || g[0].Rank != rank {
				continue
			}
			for j, t := range g {
				if !domain.HasSuit(suits, t.Suit) {
					continue
				}
				rest := concat(g[:j], g[j+1:])
				out = append(out, extraction{index: i, tile: t, remainder: []domain.Group{rest}})
			}
		}
	}
	return out
}

// findPairs returns, in order of first appearance, one tile of each suit for
// every rank the hand holds in exactly two suits.
func findPairs(hand []domain.Tile) [][]domain.Tile {
	var order []int
	byRank := make(map[int][]domain.Tile)
	for _, t := range hand {
		tiles, ok := byRank[t.Rank]
		if !ok {
			order = append(order, t.Rank)
		}
		dup := false
		for _, x := range tiles {
			if x.Suit == t.Suit {
				dup = true
				break
			}
		}
		if !dup {
			byRank[t.Rank] = append(tiles, t)
		}
	}

	var pairs [][]domain.Tile
	for _, r := range order {
		if tiles := byRank[r]; len(tiles) == 2 {
			pairs = append(pairs, tiles)
		}
	}
	return pairs
}

func withoutSuit(suits []domain.Suit, s domain.Suit) []domain.Suit {
	out := make([]domain.Suit, 0, len(suits))
	for _, x := range suits {
		if x != s {
			out = append(out, x)
		}
	}
	return out
}

func copyGroup(tiles []domain.Tile) domain.Group {
	return domain.Group(domain.CloneTiles(tiles))
}

func appendTile(g domain.Group, t domain.Tile) domain.Group {
	return concat(g, []domain.Tile{t})
}

func concat(a, b []domain.Tile) domain.Group {
	out := make(domain.Group, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
