package bot

import (
	botinternal "rummikub/internal/bot/internal"
	"rummikub/internal/engine"
)

// RuledPolicy starts from the highest-priority proposal and lets each rule of
// its pipeline move the selection.
type RuledPolicy struct {
	name  string
	rules []SelectionRule
}

func NewRuledPolicy(name string, rules ...SelectionRule) *RuledPolicy {
	return &RuledPolicy{name: name, rules: rules}
}

func (p *RuledPolicy) Name() string { return p.name }

func (p *RuledPolicy) Choose(s engine.Snapshot, proposals []engine.Action) (int, bool) {
	if len(proposals) == 0 {
		return -1, false
	}
	ctx := &SelectionContext{
		Snapshot:      s,
		Candidates:    proposals,
		CurrentBest:   proposals[0],
		SelectedIndex: 0,
	}
	for _, rule := range p.rules {
		rule.Apply(ctx)
	}
	return ctx.SelectedIndex, true
}

// TacticalPolicy scores every proposal with phase-aware weights.
type TacticalPolicy struct {
	Tuning botinternal.BotTuning
}

func (p *TacticalPolicy) Name() string { return "tactical" }

func (p *TacticalPolicy) Choose(s engine.Snapshot, proposals []engine.Action) (int, bool) {
	if len(proposals) == 0 {
		return -1, false
	}

	phase := botinternal.DetectPhase(len(s.Hand), s.DeckLeft)
	weights := p.Tuning.ForPhase(phase)
	scored := botinternal.BuildScoredActions(s, proposals, weights)

	botinternal.SortScored(scored)
	return scored[0].Index, true
}
