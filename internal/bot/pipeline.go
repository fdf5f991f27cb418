package bot

import (
	"rummikub/internal/engine"
)

// SelectionContext holds the state for the action selection pipeline.
type SelectionContext struct {
	Snapshot      engine.Snapshot
	Candidates    []engine.Action
	CurrentBest   engine.Action
	SelectedIndex int
}

// SelectionRule represents a logic unit that can influence which proposal is chosen.
type SelectionRule interface {
	Name() string
	Apply(ctx *SelectionContext)
}

// FavorTilesPlayedRule prefers the action that moves the most tiles out of the hand.
type FavorTilesPlayedRule struct{}

func (r *FavorTilesPlayedRule) Name() string { return "FavorTilesPlayed" }

func (r *FavorTilesPlayedRule) Apply(ctx *SelectionContext) {
	selectMax(ctx, func(a engine.Action) int { return a.TilesPlayed() })
}

// FavorPointsRule prefers the action that plays the highest rank sum.
type FavorPointsRule struct{}

func (r *FavorPointsRule) Name() string { return "FavorPoints" }

func (r *FavorPointsRule) Apply(ctx *SelectionContext) {
	selectMax(ctx, func(a engine.Action) int { return a.Points() })
}

// AvoidRestructureRule prefers, among equally sized plays, actions that take
// fewer groups apart.
type AvoidRestructureRule struct{}

func (r *AvoidRestructureRule) Name() string { return "AvoidRestructure" }

func (r *AvoidRestructureRule) Apply(ctx *SelectionContext) {
	bestIdx := ctx.SelectedIndex
	best := ctx.CurrentBest
	for i, candidate := range ctx.Candidates {
		if candidate.TilesPlayed() == best.TilesPlayed() && len(candidate.Removes) < len(best.Removes) {
			best = candidate
			bestIdx = i
		}
	}
	if bestIdx != ctx.SelectedIndex {
		ctx.SelectedIndex = bestIdx
		ctx.CurrentBest = ctx.Candidates[bestIdx]
	}
}

// selectMax moves the selection to the first candidate strictly better than
// the current best on metric.
func selectMax(ctx *SelectionContext, metric func(engine.Action) int) {
	bestIdx := ctx.SelectedIndex
	maxValue := metric(ctx.CurrentBest)

	for i, candidate := range ctx.Candidates {
		if v := metric(candidate); v > maxValue {
			maxValue = v
			bestIdx = i
		}
	}

	if bestIdx != ctx.SelectedIndex {
		ctx.SelectedIndex = bestIdx
		ctx.CurrentBest = ctx.Candidates[bestIdx]
	}
}
