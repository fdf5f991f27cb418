package engine

import (
	"reflect"
	"testing"

	"rummikub/internal/domain"
)

func TestEvaluateColdStart(t *testing.T) {
	tests := []struct {
		name          string
		hand          string
		wantPassed    bool
		wantPoints    int
		wantMelds     []domain.Group
		wantRemaining []domain.Tile
	}{
		{
			name:          "single high run passes",
			hand:          "C10 C11 C12 H1 H2",
			wantPassed:    true,
			wantPoints:    33,
			wantMelds:     groups("C10 C11 C12"),
			wantRemaining: tiles("H1 H2"),
		},
		{
			name:          "melds add up",
			hand:          "S2 C8 S3 H8 S4 D8",
			wantPassed:    true,
			wantPoints:    33,
			wantMelds:     groups("C8 H8 D8", "S2 S3 S4"),
			wantRemaining: []domain.Tile{},
		},
		{
			name:          "below threshold",
			hand:          "C1 C2 C3 H5 D5 S5 H13",
			wantPassed:    false,
			wantPoints:    21,
			wantMelds:     groups("H5 D5 S5", "C1 C2 C3"),
			wantRemaining: tiles("H13"),
		},
		{
			name:          "no melds",
			hand:          "C13 H12 D11",
			wantPassed:    false,
			wantRemaining: tiles("C13 H12 D11"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := tiles(tt.hand)
			before := domain.CloneTiles(hand)

			res := EvaluateColdStart(hand, 30)
			if res.Passed != tt.wantPassed || res.Points != tt.wantPoints {
				t.Fatalf("passed=%v points=%d, want passed=%v points=%d", res.Passed, res.Points, tt.wantPassed, tt.wantPoints)
			}
			if !reflect.DeepEqual(res.Melds, tt.wantMelds) {
				t.Fatalf("melds = %v, want %v", res.Melds, tt.wantMelds)
			}
			if !reflect.DeepEqual(res.Remaining, tt.wantRemaining) {
				t.Fatalf("remaining = %v, want %v", res.Remaining, tt.wantRemaining)
			}
			if !reflect.DeepEqual(hand, before) {
				t.Fatalf("hand mutated: %v", hand)
			}
		})
	}
}

func TestApplyColdStartPublishesInOrder(t *testing.T) {
	res := EvaluateColdStart(tiles("S2 C8 S3 H8 S4 D8 C1"), 30)
	next, actions, err := ApplyColdStart(NewSnapshot(tiles("S2 C8 S3 H8 S4 D8 C1"), board("H1 H2 H3")), res)
	if err != nil {
		t.Fatalf("ApplyColdStart error: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 play actions, got %d", len(actions))
	}
	want := board("H1 H2 H3", "C8 H8 D8", "S2 S3 S4")
	if !reflect.DeepEqual(next.Board, want) {
		t.Fatalf("board = %v, want %v", next.Board, want)
	}
	if !reflect.DeepEqual(next.Hand, tiles("C1")) {
		t.Fatalf("hand = %v, want [C1]", next.Hand)
	}
}

func TestTryColdStartIsIdempotent(t *testing.T) {
	game := &domain.Game{Options: domain.DefaultOptions(), Deck: domain.NewDeckFrom(nil)}
	player := &domain.Player{Name: "Winni", Hand: tiles("C10 C11 C12 H1 H2")}
	tc := NewTurnController(nil, nil)

	if _, passed := tc.TryColdStart(game, player); !passed {
		t.Fatal("expected first evaluation to pass")
	}
	hand := domain.CloneTiles(player.Hand)
	b := game.Board.Clone()

	if _, passed := tc.TryColdStart(game, player); passed {
		t.Fatal("second evaluation must be a no-op")
	}
	if !player.HasPassedColdStart {
		t.Fatal("HasPassedColdStart must stay true")
	}
	if !reflect.DeepEqual(player.Hand, hand) || !reflect.DeepEqual(game.Board, b) {
		t.Fatalf("state changed: hand=%v board=%v", player.Hand, game.Board)
	}
}
