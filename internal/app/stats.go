package app

import (
	"sync"

	"rummikub/internal/domain"
)

// Record counts results for one row of the statistics tables.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Games is the number of games the record covers.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPercent is the share of won games, 0 when nothing was recorded.
func (r Record) WinPercent() float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games()) * 100
}

func (r *Record) add(won, tied bool) {
	switch {
	case won && tied:
		r.Ties++
	case won:
		r.Wins++
	default:
		r.Losses++
	}
}

// PlayerStats accumulates one player's results across a batch.
type PlayerStats struct {
	Name string `json:"name"`
	Record
	// FirstColdStart counts the games in which this player passed the cold
	// start first.
	FirstColdStart Record `json:"first_cold_start"`
}

// NotFirstAverage is the derived "average not first" row: the first passers'
// losses shared evenly among the other players.
type NotFirstAverage struct {
	Wins       float64 `json:"wins"`
	Losses     float64 `json:"losses"`
	WinPercent float64 `json:"win_percent"`
}

// Report is the aggregated view of a finished batch.
type Report struct {
	Seed            int64         `json:"seed"`
	Games           int           `json:"games"`
	EmptyHandWins   int           `json:"empty_hand_wins"`
	DeckExhaustions int           `json:"deck_exhaustions"`
	Ties            int           `json:"ties"`
	NoColdStart     int           `json:"no_cold_start"`
	AvgRounds       float64       `json:"avg_rounds"`
	Players         []PlayerStats `json:"players"`

	// FirstColdStart aggregates every player's first-cold-start record.
	FirstColdStart  Record          `json:"first_cold_start"`
	AverageNotFirst NotFirstAverage `json:"average_not_first"`
}

// Player returns the named row.
func (r Report) Player(name string) (PlayerStats, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return PlayerStats{}, false
}

// Wins maps player names to won games.
func (r Report) Wins() map[string]int {
	out := make(map[string]int, len(r.Players))
	for _, p := range r.Players {
		out[p.Name] = p.Wins
	}
	return out
}

// Stats is the batch accumulator. Record may be called from several
// goroutines.
type Stats struct {
	mu sync.Mutex

	rows  []PlayerStats
	index map[string]int

	games           int
	emptyHandWins   int
	deckExhaustions int
	ties            int
	noColdStart     int
	rounds          int
}

// NewStats prepares one row per player, in the given order.
func NewStats(players []string) *Stats {
	s := &Stats{
		rows:  make([]PlayerStats, len(players)),
		index: make(map[string]int, len(players)),
	}
	for i, name := range players {
		s.rows[i].Name = name
		s.index[name] = i
	}
	return s
}

// Record adds one finished game. Players unknown to the accumulator get a
// new row.
func (s *Stats) Record(o domain.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games++
	s.rounds += o.Rounds
	switch o.Phase {
	case domain.PhaseWonByEmptyHand:
		s.emptyHandWins++
	case domain.PhaseWonByDeckExhaustion:
		s.deckExhaustions++
	}
	tie := o.IsTie()
	if tie {
		s.ties++
	}
	if o.FirstColdStart == "" {
		s.noColdStart++
	}

	for _, name := range o.Players {
		row := s.row(name)
		won := o.IsWinner(name)
		row.add(won, tie)
		if name == o.FirstColdStart {
			row.FirstColdStart.add(won, tie)
		}
	}
}

func (s *Stats) row(name string) *PlayerStats {
	i, ok := s.index[name]
	if !ok {
		i = len(s.rows)
		s.rows = append(s.rows, PlayerStats{Name: name})
		s.index[name] = i
	}
	return &s.rows[i]
}

// Report snapshots the accumulator.
func (s *Stats) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{
		Games:           s.games,
		EmptyHandWins:   s.emptyHandWins,
		DeckExhaustions: s.deckExhaustions,
		Ties:            s.ties,
		NoColdStart:     s.noColdStart,
		Players:         append([]PlayerStats(nil), s.rows...),
	}
	if s.games > 0 {
		r.AvgRounds = float64(s.rounds) / float64(s.games)
	}
	for _, p := range s.rows {
		r.FirstColdStart.Wins += p.FirstColdStart.Wins
		r.FirstColdStart.Losses += p.FirstColdStart.Losses
		r.FirstColdStart.Ties += p.FirstColdStart.Ties
	}
	r.AverageNotFirst = averageNotFirst(r.FirstColdStart, len(s.rows))
	return r
}

// averageNotFirst spreads the first passers' losses over the remaining
// players of each game.
func averageNotFirst(first Record, players int) NotFirstAverage {
	total := first.Games()
	if total == 0 || players < 2 {
		return NotFirstAverage{}
	}
	wins := float64(first.Losses) / float64(players-1)
	return NotFirstAverage{
		Wins:       wins,
		Losses:     float64(total) - wins,
		WinPercent: wins / float64(total) * 100,
	}
}
