package engine

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"rummikub/internal/domain"
)

func dealGame(seed int64, opts domain.Options, names ...string) *domain.Game {
	rng := rand.New(rand.NewSource(seed))
	g := &domain.Game{ID: fmt.Sprintf("seed-%d", seed), Options: opts, Deck: domain.NewDeck(rng)}
	for i, n := range names {
		g.Players = append(g.Players, &domain.Player{Name: n, Seat: i, Hand: g.Deck.Draw(opts.HandSize)})
	}
	return g
}

func TestResolveDeckExhaustion(t *testing.T) {
	tests := []struct {
		name  string
		hands []string
		want  []string
	}{
		{
			name:  "fewest tiles wins",
			hands: []string{"C1 C2 C3", "H13", "D1 D2"},
			want:  []string{"Peter"},
		},
		{
			name:  "lowest sum breaks a size tie",
			hands: []string{"C5 H7", "D1 S2", "S1 S1 S1"},
			want:  []string{"Peter"},
		},
		{
			name:  "equal size and sum is a genuine tie",
			hands: []string{"C5 H7", "D6 S6", "S1 S1 S1"},
			want:  []string{"Winni", "Peter"},
		},
		{
			name:  "everyone tied keeps seating order",
			hands: []string{"C4", "H4", "D4", "S4"},
			want:  []string{"Winni", "Peter", "Rachel", "Carol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTurnGame("", domain.DefaultOptions(), tt.hands...)
			if got := ResolveDeckExhaustion(g.Players); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ResolveDeckExhaustion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameLoopEmptyHandEndsMidRound(t *testing.T) {
	g := newTurnGame("S13 S12", noColdStart(), "C1 C2 C3", "H1 H5")
	turns := 0
	loop := NewGameLoop(NewTurnController(nil, nil), nil)
	loop.OnTurn = func(TurnReport) { turns++ }

	outcome := loop.Run(g)

	if outcome.Phase != domain.PhaseWonByEmptyHand || !reflect.DeepEqual(outcome.Winners, []string{"Winni"}) {
		t.Fatalf("outcome = %+v", outcome)
	}
	if turns != 1 || outcome.Rounds != 1 {
		t.Fatalf("turns=%d rounds=%d, want the game to stop after the first turn", turns, outcome.Rounds)
	}
}

func TestGameLoopDeckExhaustion(t *testing.T) {
	g := newTurnGame("", domain.DefaultOptions(), "C1 H5", "D7 S9 S11")
	outcome := NewGameLoop(NewTurnController(nil, nil), nil).Run(g)

	if outcome.Phase != domain.PhaseWonByDeckExhaustion {
		t.Fatalf("phase = %s", outcome.Phase)
	}
	if !reflect.DeepEqual(outcome.Winners, []string{"Winni"}) || outcome.Rounds != 1 {
		t.Fatalf("outcome = %+v", outcome)
	}
	if outcome.FirstColdStart != "" {
		t.Fatalf("nobody passed, got %q", outcome.FirstColdStart)
	}
}

// TestGameLoopInvariants plays many seeded games and checks, after every turn,
// tile conservation, board validity and that the turn shrank the hand or the
// deck.
func TestGameLoopInvariants(t *testing.T) {
	names := []string{"Winni", "Peter", "Rachel", "Carol"}
	for _, coldStart := range []bool{true, false} {
		opts := domain.DefaultOptions()
		opts.ColdStartEnabled = coldStart

		for seed := int64(1); seed <= 150; seed++ {
			g := dealGame(seed, opts, names...)
			prevDeck := g.Deck.Len()
			prevHand := map[string]int{}
			for _, p := range g.Players {
				prevHand[p.Name] = len(p.Hand)
			}

			loop := NewGameLoop(NewTurnController(nil, nil), nil)
			loop.OnTurn = func(r TurnReport) {
				if n := g.TileCount(); n != domain.DeckSize {
					t.Fatalf("seed %d round %d: %d tiles in play, want %d", seed, r.Round, n, domain.DeckSize)
				}
				if err := g.Board.Validate(); err != nil {
					t.Fatalf("seed %d round %d: %v", seed, r.Round, err)
				}

				hand := len(g.PlayerByName(r.Player).Hand)
				deck := g.Deck.Len()
				switch {
				case hand < prevHand[r.Player]:
				case deck == prevDeck-1 && hand == prevHand[r.Player]+1:
				case prevDeck == 0 && deck == 0 && hand == prevHand[r.Player]:
				default:
					t.Fatalf("seed %d: %s went from hand %d deck %d to hand %d deck %d",
						seed, r.Player, prevHand[r.Player], prevDeck, hand, deck)
				}
				if r.Rejected != 0 {
					t.Fatalf("seed %d: %d proposals rejected", seed, r.Rejected)
				}
				prevHand[r.Player] = hand
				prevDeck = deck
			}

			outcome := loop.Run(g)
			if !g.Finished() || len(outcome.Winners) == 0 {
				t.Fatalf("seed %d: game did not finish: %+v", seed, outcome)
			}
			if outcome.Rounds > domain.DeckSize {
				t.Fatalf("seed %d: %d rounds", seed, outcome.Rounds)
			}
			if outcome.Phase == domain.PhaseWonByEmptyHand && len(g.PlayerByName(outcome.Winners[0]).Hand) != 0 {
				t.Fatalf("seed %d: winner %s still holds tiles", seed, outcome.Winners[0])
			}
			if !coldStart && outcome.FirstColdStart != "" {
				t.Fatalf("seed %d: cold start disabled but %q flagged", seed, outcome.FirstColdStart)
			}
		}
	}
}

func TestGameLoopIsDeterministicForSeed(t *testing.T) {
	run := func() domain.Outcome {
		g := dealGame(99, domain.DefaultOptions(), "Winni", "Peter", "Rachel", "Carol")
		return NewGameLoop(NewTurnController(nil, nil), nil).Run(g)
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed gave different outcomes: %+v vs %+v", a, b)
	}
}
