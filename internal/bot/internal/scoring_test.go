package internal

import (
	"testing"

	"rummikub/internal/domain"
	"rummikub/internal/engine"
)

func TestProfileHand(t *testing.T) {
	hand := []domain.Tile{
		{Rank: 3, Suit: domain.Clover},
		{Rank: 3, Suit: domain.Heart},
		{Rank: 4, Suit: domain.Clover},
		{Rank: 9, Suit: domain.Spade},
		{Rank: 9, Suit: domain.Spade},
	}
	got := ProfileHand(hand)
	want := HandProfile{TotalTiles: 5, Points: 28, Pairs: 1, Links: 1, Singles: 1}
	if got != want {
		t.Fatalf("ProfileHand() = %+v, want %+v", got, want)
	}

	if empty := ProfileHand(nil); empty != (HandProfile{}) {
		t.Fatalf("ProfileHand(nil) = %+v", empty)
	}
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name     string
		hand     int
		deck     int
		expected GamePhase
	}{
		{name: "fresh deal", hand: 14, deck: 48, expected: PhaseOpening},
		{name: "mid game", hand: 9, deck: 30, expected: PhaseMid},
		{name: "short hand", hand: 4, deck: 30, expected: PhaseEnd},
		{name: "empty deck", hand: 14, deck: 0, expected: PhaseEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPhase(tt.hand, tt.deck); got != tt.expected {
				t.Fatalf("DetectPhase(%d, %d) = %v, want %v", tt.hand, tt.deck, got, tt.expected)
			}
		})
	}
}

func TestScoreActionRewardsFinishing(t *testing.T) {
	hand := []domain.Tile{{Rank: 5, Suit: domain.Heart}, {Rank: 6, Suit: domain.Heart}, {Rank: 7, Suit: domain.Heart}}
	weights := PhaseWeights{TilesPlayedWeight: 1, FinishBonus: 100}

	finish := engine.Action{Kind: engine.ActionPlayMeld, FromHand: hand}
	partial := engine.Action{Kind: engine.ActionExtendRun, FromHand: hand[:1]}

	finishScore, profile := ScoreAction(hand, finish, weights)
	partialScore, _ := ScoreAction(hand, partial, weights)
	if profile.TotalTiles != 0 {
		t.Fatalf("remaining profile = %+v, want an empty hand", profile)
	}
	if finishScore != 103 || partialScore != 1 {
		t.Fatalf("scores = %v, %v; want 103, 1", finishScore, partialScore)
	}
}

func TestScoreActionPenalizesRestructure(t *testing.T) {
	hand := []domain.Tile{{Rank: 5, Suit: domain.Heart}, {Rank: 1, Suit: domain.Spade}}
	weights := PhaseWeights{TilesPlayedWeight: 1, RestructurePenalty: 0.5}

	plain := engine.Action{Kind: engine.ActionExtendSet, FromHand: hand[:1]}
	split := engine.Action{Kind: engine.ActionCompleteSet, FromHand: hand[:1], Removes: []int{0, 1}}

	a, _ := ScoreAction(hand, plain, weights)
	b, _ := ScoreAction(hand, split, weights)
	if a <= b {
		t.Fatalf("plain=%v split=%v, want plain > split", a, b)
	}
}

func TestSortScoredBreaksTiesOnRemainingHand(t *testing.T) {
	h5 := domain.Tile{Rank: 5, Suit: domain.Heart}
	h6 := domain.Tile{Rank: 6, Suit: domain.Heart}
	h7 := domain.Tile{Rank: 7, Suit: domain.Heart}
	s1 := domain.Tile{Rank: 1, Suit: domain.Spade}
	hand := []domain.Tile{h5, h6, h7, s1}

	tests := []struct {
		name    string
		actions []engine.Action
		want    []int
	}{
		{
			name: "fewer tiles left wins",
			actions: []engine.Action{
				{Kind: engine.ActionExtendRun, FromHand: []domain.Tile{h5}},
				{Kind: engine.ActionPlayMeld, FromHand: []domain.Tile{h5, h6, h7}},
			},
			want: []int{1, 0},
		},
		{
			name: "fewer points left wins",
			actions: []engine.Action{
				{Kind: engine.ActionExtendRun, FromHand: []domain.Tile{s1}},
				{Kind: engine.ActionExtendRun, FromHand: []domain.Tile{h7}},
			},
			want: []int{1, 0},
		},
		{
			name: "identical hands keep proposal order",
			actions: []engine.Action{
				{Kind: engine.ActionExtendRun, FromHand: []domain.Tile{h7}},
				{Kind: engine.ActionExtendSet, FromHand: []domain.Tile{h7}},
			},
			want: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := BuildScoredActions(engine.NewSnapshot(hand, nil), tt.actions, PhaseWeights{})
			SortScored(scored)
			for i, idx := range tt.want {
				if scored[i].Index != idx {
					t.Fatalf("order = %+v, want indices %v", scored, tt.want)
				}
			}
		})
	}
}
