package internal

import "rummikub/internal/domain"

// HandProfile summarizes how close the tiles left in a hand are to melds.
type HandProfile struct {
	TotalTiles int
	Points     int
	// Pairs counts ranks held in at least two suits; one more tile makes a set.
	Pairs int
	// Links counts same-suit tiles one or two ranks apart; one more tile makes a run.
	Links int
	// Singles counts tiles that belong to no pair and no link.
	Singles int
}

// ProfileHand analyzes a hand. Duplicate copies count once.
func ProfileHand(hand []domain.Tile) HandProfile {
	profile := HandProfile{TotalTiles: len(hand), Points: domain.SumRanks(hand)}
	if len(hand) == 0 {
		return profile
	}

	counts := domain.CountTiles(hand)
	connected := make(map[domain.Tile]bool, len(counts))

	for _, bucket := range domain.GroupByRank(hand) {
		suits := distinctSuits(bucket)
		if len(suits) >= 2 {
			profile.Pairs++
			for _, t := range bucket {
				connected[t] = true
			}
		}
	}

	for _, bucket := range domain.GroupBySuit(hand) {
		for i, t := range bucket {
			for _, u := range bucket[i+1:] {
				gap := u.Rank - t.Rank
				if gap == 0 {
					continue
				}
				if gap > 2 {
					break
				}
				profile.Links++
				connected[t] = true
				connected[u] = true
				break
			}
		}
	}

	for t := range counts {
		if !connected[t] {
			profile.Singles++
		}
	}
	return profile
}

func distinctSuits(tiles []domain.Tile) []domain.Suit {
	var out []domain.Suit
	for _, t := range tiles {
		if !domain.HasSuit(out, t.Suit) {
			out = append(out, t.Suit)
		}
	}
	return out
}
