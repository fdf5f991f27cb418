package bot

import botinternal "rummikub/internal/bot/internal"

const finishBonus = 1000.0

// DefaultTuning keeps near-melds in hand early and dumps points late.
var DefaultTuning = botinternal.BotTuning{
	Opening: botinternal.PhaseWeights{
		TilesPlayedWeight:  2.0,
		PointsWeight:       0.1,
		PairWeight:         0.8,
		LinkWeight:         0.6,
		SingleWeight:       -0.5,
		HandPointsWeight:   -0.02,
		RestructurePenalty: 0.3,
		FinishBonus:        finishBonus,
	},
	Mid: botinternal.PhaseWeights{
		TilesPlayedWeight:  2.5,
		PointsWeight:       0.2,
		PairWeight:         0.6,
		LinkWeight:         0.5,
		SingleWeight:       -0.8,
		HandPointsWeight:   -0.05,
		RestructurePenalty: 0.2,
		FinishBonus:        finishBonus,
	},
	End: botinternal.PhaseWeights{
		TilesPlayedWeight:  3.0,
		PointsWeight:       0.5,
		PairWeight:         0.3,
		LinkWeight:         0.2,
		SingleWeight:       -1.5,
		HandPointsWeight:   -0.2,
		RestructurePenalty: 0.0,
		FinishBonus:        finishBonus,
	},
}
