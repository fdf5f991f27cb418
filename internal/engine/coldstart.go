package engine

import (
	"rummikub/internal/domain"
)

// ColdStartResult is the outcome of evaluating a hand against the cold-start
// threshold. Remaining is the hand left once every meld is played.
type ColdStartResult struct {
	Melds     []domain.Group
	Points    int
	Remaining []domain.Tile
	Passed    bool
}

// EvaluateColdStart greedily removes the best meld from a copy of hand until
// none is left. The hand passes when the removed melds total at least
// threshold points. hand is never modified.
func EvaluateColdStart(hand []domain.Tile, threshold int) ColdStartResult {
	res := ColdStartResult{Remaining: domain.CloneTiles(hand)}
	for {
		best, ok := BestMeld(FindMelds(res.Remaining))
		if !ok {
			break
		}
		remaining, err := domain.RemoveTiles(res.Remaining, best)
		if err != nil {
			break
		}
		res.Remaining = remaining
		res.Melds = append(res.Melds, best)
		res.Points += domain.SumRanks(best)
	}
	res.Passed = len(res.Melds) > 0 && res.Points >= threshold
	return res
}

// Actions turns the melds of a passing evaluation into play actions
// in removal order.
func (r ColdStartResult) Actions() []Action {
	actions := make([]Action, 0, len(r.Melds))
	for _, m := range r.Melds {
		actions = append(actions, Action{
			Kind:     ActionPlayMeld,
			FromHand: domain.CloneTiles(m),
			Adds:     []domain.Group{copyGroup(m)},
		})
	}
	return actions
}

// ApplyColdStart plays a passing evaluation onto s. It applies every meld or
// none.
func ApplyColdStart(s Snapshot, r ColdStartResult) (Snapshot, []Action, error) {
	next := s
	actions := r.Actions()
	for _, a := range actions {
		var err error
		next, err = a.Apply(next)
		if err != nil {
			return s, nil, err
		}
	}
	return next, actions, nil
}
