package internal

import (
	"sort"

	"rummikub/internal/domain"
	"rummikub/internal/engine"
)

// PhaseWeights tune action scoring for a specific phase.
type PhaseWeights struct {
	TilesPlayedWeight  float64
	PointsWeight       float64
	PairWeight         float64
	LinkWeight         float64
	SingleWeight       float64
	HandPointsWeight   float64
	RestructurePenalty float64
	FinishBonus        float64
}

// BotTuning defines phase weights for a bot.
type BotTuning struct {
	Opening PhaseWeights
	Mid     PhaseWeights
	End     PhaseWeights
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}

// ScoredAction holds a proposal index with its computed score and the profile
// of the hand it leaves.
type ScoredAction struct {
	Index            int
	Score            float64
	RemainingProfile HandProfile
}

// ScoreAction rates the hand an action leaves behind plus what the action
// itself puts down.
func ScoreAction(hand []domain.Tile, action engine.Action, weights PhaseWeights) (float64, HandProfile) {
	remaining, err := domain.RemoveTiles(hand, action.FromHand)
	if err != nil {
		return 0, ProfileHand(hand)
	}
	profile := ProfileHand(remaining)

	score := float64(action.TilesPlayed())*weights.TilesPlayedWeight +
		float64(action.Points())*weights.PointsWeight +
		float64(profile.Pairs)*weights.PairWeight +
		float64(profile.Links)*weights.LinkWeight +
		float64(profile.Singles)*weights.SingleWeight +
		float64(profile.Points)*weights.HandPointsWeight -
		float64(len(action.Removes))*weights.RestructurePenalty

	if len(remaining) == 0 {
		score += weights.FinishBonus
	}
	return score, profile
}

// BuildScoredActions scores every proposal of s.
func BuildScoredActions(s engine.Snapshot, actions []engine.Action, weights PhaseWeights) []ScoredAction {
	scored := make([]ScoredAction, 0, len(actions))
	for i, a := range actions {
		score, profile := ScoreAction(s.Hand, a, weights)
		scored = append(scored, ScoredAction{
			Index:            i,
			Score:            score,
			RemainingProfile: profile,
		})
	}
	return scored
}

// SortScored orders scored actions best first: higher score, then fewer tiles
// left in hand, then fewer points left. Proposal order breaks remaining ties.
func SortScored(scored []ScoredAction) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.RemainingProfile.TotalTiles != b.RemainingProfile.TotalTiles {
			return a.RemainingProfile.TotalTiles < b.RemainingProfile.TotalTiles
		}
		return a.RemainingProfile.Points < b.RemainingProfile.Points
	})
}
