package state

import (
	"go-memotest/internal/scoring"
)

func (s State) IsPending() bool {
	return s.FSM.Current() == Pending && s.Second != -1 && s.TimerMs > 0
}

func (s State) IsFinished() bool {
	return s.FSM.Current() == Finished
}

// AllMatched reports whether every card has been found.
func (s State) AllMatched() bool {
	for _, c := range s.Cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// FaceUp counts cards that are revealed and not yet matched.
func (s State) FaceUp() int {
	n := 0
	for _, c := range s.Cards {
		if c.Revealed && !c.Matched {
			n++
		}
	}
	return n
}

func (s State) Totals() scoring.PlayerStats {
	return scoring.Totals(s.Stats, s.Turn)
}

// Eligible reports whether card i can be picked right now.
func (s State) Eligible(i int) bool {
	if i < 0 || i >= len(s.Cards) || s.IsPending() || s.IsFinished() || s.FaceUp() >= 2 {
		return false
	}
	c := s.Cards[i]
	return !c.Matched && !c.Revealed
}
