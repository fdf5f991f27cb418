package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"rummikub/internal/domain"
)

// tiles parses "C3 H3 D3" into tiles.
func tiles(s string) []domain.Tile {
	var out []domain.Tile
	for _, f := range strings.Fields(s) {
		var suit domain.Suit
		switch f[0] {
		case 'C':
			suit = domain.Clover
		case 'H':
			suit = domain.Heart
		case 'D':
			suit = domain.Diamond
		case 'S':
			suit = domain.Spade
		default:
			panic(fmt.Sprintf("bad suit in %q", f))
		}
		rank, err := strconv.Atoi(f[1:])
		if err != nil {
			panic(err)
		}
		tile, err := domain.NewTile(rank, suit)
		if err != nil {
			panic(err)
		}
		out = append(out, tile)
	}
	return out
}

func group(s string) domain.Group {
	return domain.Group(tiles(s))
}

func groups(specs ...string) []domain.Group {
	out := make([]domain.Group, 0, len(specs))
	for _, s := range specs {
		out = append(out, group(s))
	}
	return out
}

func TestFindSetsAndRuns(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		wantSets []domain.Group
		wantRuns []domain.Group
	}{
		{
			name:     "three of a rank is a set, not a run",
			hand:     "C3 H3 D3",
			wantSets: groups("C3 H3 D3"),
		},
		{
			name:     "consecutive clovers are a run, not a set",
			hand:     "C4 C5 C6",
			wantRuns: groups("C4 C5 C6"),
		},
		{
			name:     "four suits form one set sorted by suit",
			hand:     "S9 C9 D9 H9",
			wantSets: groups("C9 H9 D9 S9"),
		},
		{
			name: "duplicate suit spoils the rank group",
			hand: "C3 C3 H3",
		},
		{
			name:     "duplicate rank inside a run is skipped",
			hand:     "C4 C5 C5 C6 C8 C9 C10",
			wantRuns: groups("C4 C5 C6", "C8 C9 C10"),
		},
		{
			name:     "only maximal runs are reported",
			hand:     "H1 H2 H3 H4 H5 H6",
			wantRuns: groups("H1 H2 H3 H4 H5 H6"),
		},
		{
			name:     "runs are reported in suit order",
			hand:     "S1 S2 S3 C11 C12 C13",
			wantRuns: groups("C11 C12 C13", "S1 S2 S3"),
		},
		{
			name:     "spades are scanned before diamonds",
			hand:     "D4 D5 D6 S4 S5 S6",
			wantRuns: groups("S4 S5 S6", "D4 D5 D6"),
		},
		{
			name: "two tiles are nothing",
			hand: "C1 C2 H5 D5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := tiles(tt.hand)
			if got := FindSets(hand); !reflect.DeepEqual(got, tt.wantSets) {
				t.Errorf("FindSets() = %v, want %v", got, tt.wantSets)
			}
			if got := FindRuns(hand); !reflect.DeepEqual(got, tt.wantRuns) {
				t.Errorf("FindRuns() = %v, want %v", got, tt.wantRuns)
			}
			if want := len(tt.wantSets) + len(tt.wantRuns); len(FindMelds(hand)) != want {
				t.Errorf("FindMelds() found %d melds, want %d", len(FindMelds(hand)), want)
			}
		})
	}
}

func TestFindMeldsDoesNotReorderHand(t *testing.T) {
	hand := tiles("S9 C1 H9 C2 D9 C3")
	before := domain.CloneTiles(hand)
	FindMelds(hand)
	if !reflect.DeepEqual(hand, before) {
		t.Fatalf("hand reordered: %v", hand)
	}
}

func TestBestMeld(t *testing.T) {
	if _, ok := BestMeld(nil); ok {
		t.Fatal("BestMeld(nil) should report no meld")
	}

	melds := groups("C1 C2 C3", "H10 H11 H12", "D2 H2 S2", "C10 C11 C12")
	best, ok := BestMeld(melds)
	if !ok {
		t.Fatal("expected a meld")
	}
	if !reflect.DeepEqual(best, group("H10 H11 H12")) {
		t.Fatalf("BestMeld() = %v, want the first 33-point run", best)
	}

	best, _ = BestMeld(FindMelds(tiles("D4 D5 D6 S4 S5 S6")))
	if !reflect.DeepEqual(best, group("S4 S5 S6")) {
		t.Fatalf("BestMeld() = %v, want the spade run on a tie", best)
	}
}
