package game

import (
	"go-memotest/internal/assets"
	"go-memotest/internal/layout"
	"go-memotest/internal/scoring"
)

// Event is a pointer event fed to HandleInput.
type Event interface {
	isEvent()
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonMiddle
)

// PointerMove reports the pointer position in viewport units.
type PointerMove struct {
	X, Y int
}

// PointerPress reports a button press at a viewport position.
type PointerPress struct {
	X, Y   int
	Button Button
}

func (PointerMove) isEvent()  {}
func (PointerPress) isEvent() {}

// Face is how a card is shown.
type Face int

const (
	FaceDown Face = iota
	FaceUp
	FaceMatched
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceMatched:
		return "matched"
	}
	return "down"
}

// Cell is the render state of one board position.
type Cell struct {
	Index   int
	Rect    layout.Rect
	Face    Face
	Hovered bool
	PairID  int
}

// Selection is a snapshot of the pending picks.
type Selection struct {
	First   int
	Second  int
	TimerMs uint32
}

// Cells returns the render state of every card in row-major order.
func (g *Game) Cells() []Cell {
	if g == nil || g.st == nil {
		return nil
	}
	cells := make([]Cell, len(g.st.Cards))
	for i, c := range g.st.Cards {
		face := FaceDown
		switch {
		case c.Matched:
			face = FaceMatched
		case c.Revealed:
			face = FaceUp
		}
		cells[i] = Cell{
			Index:   i,
			Rect:    g.grid.CellRect(i),
			Face:    face,
			Hovered: i == g.st.Hover && !c.Matched,
			PairID:  c.PairID,
		}
	}
	return cells
}

// Asset returns the art for a pair, or nil once the game is destroyed.
func (g *Game) Asset(pairID int) *assets.Art {
	if g == nil || pairID < 0 || pairID >= len(g.art) {
		return nil
	}
	return g.art[pairID]
}

// Stats returns the totals over all players. Streak is the current player's.
func (g *Game) Stats() scoring.PlayerStats {
	if g == nil || g.st == nil {
		return scoring.PlayerStats{}
	}
	return g.st.Totals()
}

// PlayerStats returns the statistics of player p.
func (g *Game) PlayerStats(p int) scoring.PlayerStats {
	if g == nil || g.st == nil || p < 0 || p >= len(g.st.Stats) {
		return scoring.PlayerStats{}
	}
	return g.st.Stats[p]
}

// Turn returns the index of the player to move.
func (g *Game) Turn() int {
	if g == nil || g.st == nil {
		return 0
	}
	return g.st.Turn
}

// Finished reports whether every card has been matched.
func (g *Game) Finished() bool {
	return g != nil && g.st != nil && g.st.AllMatched()
}

func (g *Game) Selection() Selection {
	if g == nil || g.st == nil {
		return Selection{First: -1, Second: -1}
	}
	return Selection{First: g.st.First, Second: g.st.Second, TimerMs: g.st.TimerMs}
}

// Pending reports whether a pair is waiting to be resolved.
func (g *Game) Pending() bool {
	return g != nil && g.st != nil && g.st.IsPending()
}

func (g *Game) Players() int {
	if g == nil || g.st == nil {
		return 0
	}
	return g.st.Players
}

func (g *Game) Rows() int {
	if g == nil {
		return 0
	}
	return g.grid.Rows
}

func (g *Game) Columns() int {
	if g == nil {
		return 0
	}
	return g.grid.Cols
}

func (g *Game) ArtSet() int {
	if g == nil {
		return 0
	}
	return g.artSet
}

// Grid returns the geometry the board is laid out with.
func (g *Game) Grid() layout.Grid {
	if g == nil {
		return layout.Grid{}
	}
	return g.grid
}

// HitTest returns the card under (x, y), or -1.
func (g *Game) HitTest(x, y int) int {
	if g == nil {
		return -1
	}
	return g.grid.HitTest(x, y)
}
