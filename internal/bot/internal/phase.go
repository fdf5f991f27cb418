package internal

// GamePhase describes the strategic stage of a player's game.
type GamePhase int

const (
	// PhaseOpening indicates the hand is still about the size of a fresh deal.
	PhaseOpening GamePhase = iota
	// PhaseMid indicates the hand has shrunk or grown away from the deal.
	PhaseMid
	// PhaseEnd indicates the hand is small enough to go out soon.
	PhaseEnd
)

const (
	openingHandSize = 12
	endHandSize     = 5
)

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseEnd:
		return "end"
	default:
		return "mid"
	}
}

// DetectPhase infers the phase from the acting player's hand size and the
// number of tiles left to draw.
func DetectPhase(handSize, deckSize int) GamePhase {
	switch {
	case handSize <= endHandSize || deckSize == 0:
		return PhaseEnd
	case handSize >= openingHandSize:
		return PhaseOpening
	default:
		return PhaseMid
	}
}
