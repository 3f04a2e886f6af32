package state

import (
	"context"
	"go-memotest/internal/scoring"

	"github.com/looplab/fsm"
)

// ResolveDelayMs is how long a pending pair stays face up before it is
// resolved.
const ResolveDelayMs = 700

// FSM states.
const (
	Idle        = "idle"
	FirstPicked = "firstPicked"
	Pending     = "pending"
	Finished    = "finished"
)

// Card is one board position. Both cards of a pair share PairID and Reward.
type Card struct {
	PairID   int
	Reward   int
	Revealed bool // face up while waiting for resolution
	Matched  bool // found, never cleared
}

// Hooks are optional observers of the transitions. Nil hooks are skipped.
type Hooks struct {
	FirstPick func(card int)
	Match     func(player, points int)
	Mismatch  func(player int)
	Complete  func()
}

type State struct {
	Cards   []Card
	First   int // -1 when no card is picked
	Second  int // -1 unless a pair is pending
	TimerMs uint32
	Turn    int
	Players int
	Stats   []scoring.PlayerStats
	Hover   int
	FSM     *fsm.FSM
	Hooks   Hooks
}

// NewState creates an idle board over cards, which are used as given.
func NewState(cards []Card, players int, hooks Hooks) *State {
	if players < 1 {
		players = 1
	}
	s := &State{
		Cards:   cards,
		First:   -1,
		Second:  -1,
		Players: players,
		Stats:   make([]scoring.PlayerStats, players),
		Hover:   -1,
		Hooks:   hooks,
	}

	s.FSM = fsm.NewFSM(
		Idle,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	// A board without cards is complete from the start.
	if s.AllMatched() {
		_ = s.FSM.Event(context.Background(), "complete")
	}

	return s
}

// Press picks card i. Presses on matched or face-up cards, out of range
// indices and presses during a pending resolution are ignored.
func (s *State) Press(i int) {
	if !s.Eligible(i) {
		return
	}

	ctx := context.Background()
	switch s.FSM.Current() {
	case Idle:
		_ = s.FSM.Event(ctx, "pickFirst", i)
	case FirstPicked:
		_ = s.FSM.Event(ctx, "pickSecond", i)
	}
}

// Tick runs the resolution countdown. The pair resolves in the tick where the
// remaining time is at most deltaMs.
func (s *State) Tick(deltaMs uint32) {
	if !s.IsPending() {
		return
	}
	if s.TimerMs > deltaMs {
		s.TimerMs -= deltaMs
		return
	}
	_ = s.FSM.Event(context.Background(), "resolve")
}

// SetHover records the hovered card. Matched cards are never hovered.
func (s *State) SetHover(i int) {
	if i < 0 || i >= len(s.Cards) || s.Cards[i].Matched {
		s.Hover = -1
		return
	}
	s.Hover = i
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "pickFirst", Src: []string{Idle}, Dst: FirstPicked},
		{Name: "pickSecond", Src: []string{FirstPicked}, Dst: Pending},
		{Name: "resolve", Src: []string{Pending}, Dst: Idle},
		{Name: "complete", Src: []string{Idle}, Dst: Finished},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + FirstPicked: func(ctx context.Context, e *fsm.Event) {
			i := e.Args[0].(int)
			s.Cards[i].Revealed = true
			s.First = i
			if s.Hooks.FirstPick != nil {
				s.Hooks.FirstPick(i)
			}
		},
		"enter_" + Pending: func(ctx context.Context, e *fsm.Event) {
			i := e.Args[0].(int)
			s.Cards[i].Revealed = true
			s.Second = i
			s.TimerMs = ResolveDelayMs
		},
		"before_resolve": func(ctx context.Context, e *fsm.Event) {
			a, b := &s.Cards[s.First], &s.Cards[s.Second]
			p := &s.Stats[s.Turn]

			if a.PairID == b.PairID {
				a.Matched, b.Matched = true, true
				a.Revealed, b.Revealed = false, false
				pts := p.RecordMatch(a.Reward)
				if s.Hooks.Match != nil {
					s.Hooks.Match(s.Turn, pts)
				}
				return
			}

			a.Revealed, b.Revealed = false, false
			p.RecordMismatch()
			if s.Hooks.Mismatch != nil {
				s.Hooks.Mismatch(s.Turn)
			}
			if s.Players == 2 {
				s.Turn = 1 - s.Turn
			}
		},
		"enter_" + Idle: func(ctx context.Context, e *fsm.Event) {
			s.First, s.Second = -1, -1
			s.TimerMs = 0
			if s.Hover >= 0 && s.Cards[s.Hover].Matched {
				s.Hover = -1
			}
			if s.AllMatched() {
				_ = e.FSM.Event(ctx, "complete")
			}
		},
		"enter_" + Finished: func(ctx context.Context, e *fsm.Event) {
			if s.Hooks.Complete != nil {
				s.Hooks.Complete()
			}
		},
	}
}
