package engine

// Policy picks the action to apply among the proposals of a snapshot.
// Proposals arrive in family priority order, each family in scan order.
// Choose returns false to end the turn's free play.
type Policy interface {
	Name() string
	Choose(s Snapshot, proposals []Action) (int, bool)
}

// FirstMatch takes the first proposal: the highest-priority family, first
// qualifying candidate.
type FirstMatch struct{}

func (FirstMatch) Name() string { return "first_match" }

func (FirstMatch) Choose(_ Snapshot, proposals []Action) (int, bool) {
	if len(proposals) == 0 {
		return -1, false
	}
	return 0, true
}
