// Package layout computes the board grid geometry shared by rendering and
// pointer hit testing. It has no UI dependencies so both the engine and any
// host can use the exact same rectangles.
package layout

// Default geometry for pixel hosts.
const (
	DefaultPadding   = 8
	DefaultTopMargin = 80 // reserved above the board for the status display
)

// Rect is an axis-aligned rectangle in host units (pixels or terminal cells).
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle. Edges are
// inclusive on every side.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid describes a rows x cols board laid out inside a viewport.
type Grid struct {
	Rows      int
	Cols      int
	Width     int // Viewport width
	Height    int // Viewport height
	Padding   int
	TopMargin int
}

// NewGrid creates a grid with the default pixel geometry.
func NewGrid(rows, cols, width, height int) Grid {
	return Grid{
		Rows:      rows,
		Cols:      cols,
		Width:     width,
		Height:    height,
		Padding:   DefaultPadding,
		TopMargin: DefaultTopMargin,
	}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// CardSize returns the width and height of a single card.
func (g Grid) CardSize() (int, int) {
	if g.Rows <= 0 || g.Cols <= 0 {
		return 0, 0
	}
	areaW := g.Width - g.Padding*2
	areaH := g.Height - g.TopMargin - g.Padding*2
	return areaW/g.Cols - g.Padding, areaH/g.Rows - g.Padding
}

// CellRect returns the rectangle of the card at row-major index i.
func (g Grid) CellRect(i int) Rect {
	if g.Cols <= 0 {
		return Rect{}
	}
	col := i % g.Cols
	row := i / g.Cols
	w, h := g.CardSize()
	return Rect{
		X: g.Padding + col*(w+g.Padding),
		Y: g.TopMargin + g.Padding + row*(h+g.Padding),
		W: w,
		H: h,
	}
}

// HitTest returns the index of the first cell containing (x, y), or -1.
func (g Grid) HitTest(x, y int) int {
	for i := 0; i < g.Cells(); i++ {
		if g.CellRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Fits reports whether every card is at least minW x minH.
func (g Grid) Fits(minW, minH int) bool {
	w, h := g.CardSize()
	return w >= minW && h >= minH
}
