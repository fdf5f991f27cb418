package domain

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestTileFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Tile
	}{
		{name: "first clover", code: 1, want: Tile{Rank: 1, Suit: Clover}},
		{name: "last clover", code: 13, want: Tile{Rank: 13, Suit: Clover}},
		{name: "first heart", code: 14, want: Tile{Rank: 1, Suit: Heart}},
		{name: "heart thirteen", code: 26, want: Tile{Rank: 13, Suit: Heart}},
		{name: "diamond five", code: 31, want: Tile{Rank: 5, Suit: Diamond}},
		{name: "last spade", code: 52, want: Tile{Rank: 13, Suit: Spade}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TileFromCode(tt.code)
			if err != nil {
				t.Fatalf("TileFromCode(%d) error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Fatalf("TileFromCode(%d) = %v, want %v", tt.code, got, tt.want)
			}
			if got.Code() != tt.code {
				t.Fatalf("Code() = %d, want %d", got.Code(), tt.code)
			}
		})
	}
}

func TestTileFromCodeRejectsOutOfRange(t *testing.T) {
	for _, code := range []int{0, -1, 53, 104} {
		if _, err := TileFromCode(code); !errors.Is(err, ErrInvalidTileCode) {
			t.Fatalf("TileFromCode(%d) error = %v, want ErrInvalidTileCode", code, err)
		}
	}
}

func TestNewTile(t *testing.T) {
	tests := []struct {
		name    string
		rank    int
		suit    Suit
		wantErr bool
	}{
		{name: "lowest clover", rank: 1, suit: Clover},
		{name: "highest spade", rank: 13, suit: Spade},
		{name: "rank zero", rank: 0, suit: Heart, wantErr: true},
		{name: "rank fourteen", rank: 14, suit: Diamond, wantErr: true},
		{name: "unknown suit", rank: 5, suit: Suit(4), wantErr: true},
		{name: "negative suit", rank: 5, suit: Suit(-1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTile(tt.rank, tt.suit)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTile) {
					t.Fatalf("NewTile(%d, %d) error = %v, want ErrInvalidTile", tt.rank, int(tt.suit), err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTile error: %v", err)
			}
			if want := (Tile{Rank: tt.rank, Suit: tt.suit}); got != want {
				t.Fatalf("NewTile() = %v, want %v", got, want)
			}
		})
	}
}

func TestTileString(t *testing.T) {
	if got := (Tile{Rank: 3, Suit: Clover}).String(); got != "C3" {
		t.Fatalf("String() = %q, want C3", got)
	}
	if got := (Tile{Rank: 13, Suit: Heart}).String(); got != "H13" {
		t.Fatalf("String() = %q, want H13", got)
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))
	if deck.Len() != DeckSize {
		t.Fatalf("deck size = %d, want %d", deck.Len(), DeckSize)
	}

	counts := CountTiles(deck.Draw(DeckSize))
	if len(counts) != CodeCount {
		t.Fatalf("distinct tiles = %d, want %d", len(counts), CodeCount)
	}
	for tile, n := range counts {
		if n != Copies {
			t.Fatalf("tile %s appears %d times, want %d", tile, n, Copies)
		}
	}
	if !deck.Empty() {
		t.Fatal("deck should be empty after drawing everything")
	}
	if _, err := deck.DrawOne(); !errors.Is(err, ErrDeckEmpty) {
		t.Fatalf("DrawOne() error = %v, want ErrDeckEmpty", err)
	}
}

func TestDeckDrawClampsToRemaining(t *testing.T) {
	deck := NewDeckFrom([]Tile{{Rank: 1, Suit: Clover}, {Rank: 2, Suit: Clover}})
	drawn := deck.Draw(5)
	if len(drawn) != 2 || deck.Len() != 0 {
		t.Fatalf("Draw(5) = %v (remaining %d), want 2 tiles and an empty deck", drawn, deck.Len())
	}
}

func TestGroupByRank(t *testing.T) {
	tiles := []Tile{
		{Rank: 5, Suit: Spade},
		{Rank: 3, Suit: Heart},
		{Rank: 5, Suit: Clover},
		{Rank: 3, Suit: Clover},
	}
	got := GroupByRank(tiles)
	want := [][]Tile{
		{{Rank: 3, Suit: Clover}, {Rank: 3, Suit: Heart}},
		{{Rank: 5, Suit: Clover}, {Rank: 5, Suit: Spade}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GroupByRank() = %v, want %v", got, want)
	}
	if tiles[0] != (Tile{Rank: 5, Suit: Spade}) {
		t.Fatal("GroupByRank must not reorder its input")
	}
}

func TestGroupBySuit(t *testing.T) {
	tiles := []Tile{{Rank: 9, Suit: Heart}, {Rank: 2, Suit: Heart}, {Rank: 4, Suit: Spade}}
	got := GroupBySuit(tiles)
	if !reflect.DeepEqual(got[Heart], []Tile{{Rank: 2, Suit: Heart}, {Rank: 9, Suit: Heart}}) {
		t.Fatalf("hearts = %v", got[Heart])
	}
	if len(got[Clover]) != 0 || len(got[Spade]) != 1 {
		t.Fatalf("unexpected buckets: %v", got)
	}
}

func TestRemoveTiles(t *testing.T) {
	hand := []Tile{
		{Rank: 1, Suit: Clover},
		{Rank: 2, Suit: Heart},
		{Rank: 2, Suit: Heart},
		{Rank: 4, Suit: Spade},
	}

	got, err := RemoveTiles(hand, []Tile{{Rank: 2, Suit: Heart}, {Rank: 4, Suit: Spade}})
	if err != nil {
		t.Fatalf("RemoveTiles() error: %v", err)
	}
	want := []Tile{{Rank: 1, Suit: Clover}, {Rank: 2, Suit: Heart}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RemoveTiles() = %v, want %v", got, want)
	}
	if len(hand) != 4 {
		t.Fatal("RemoveTiles must not mutate its input")
	}
}

func TestRemoveTilesMissingIsAtomic(t *testing.T) {
	hand := []Tile{{Rank: 1, Suit: Clover}, {Rank: 2, Suit: Heart}}

	got, err := RemoveTiles(hand, []Tile{{Rank: 1, Suit: Clover}, {Rank: 1, Suit: Clover}})
	if !errors.Is(err, ErrTileNotFound) {
		t.Fatalf("error = %v, want ErrTileNotFound", err)
	}
	if !reflect.DeepEqual(got, hand) {
		t.Fatalf("hand changed on failed removal: %v", got)
	}
}

func TestSumRanks(t *testing.T) {
	if got := SumRanks([]Tile{{Rank: 10, Suit: Clover}, {Rank: 11, Suit: Clover}, {Rank: 12, Suit: Clover}}); got != 33 {
		t.Fatalf("SumRanks() = %d, want 33", got)
	}
}

func TestClaimFirstColdStart(t *testing.T) {
	g := &Game{}
	if !g.ClaimFirstColdStart("Winni") {
		t.Fatal("first claim should succeed")
	}
	if g.ClaimFirstColdStart("Peter") {
		t.Fatal("second claim should fail")
	}
	if g.FirstColdStart != "Winni" {
		t.Fatalf("FirstColdStart = %q, want Winni", g.FirstColdStart)
	}
}
