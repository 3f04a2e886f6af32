package layout

import "testing"

func TestGrid_CellRect(t *testing.T) {
	g := NewGrid(3, 4, 1024, 768)

	// areaW = 1024 - 16 = 1008 -> w = 1008/4 - 8 = 244
	// areaH = 768 - 80 - 16 = 672 -> h = 672/3 - 8 = 216
	w, h := g.CardSize()
	if w != 244 || h != 216 {
		t.Fatalf("CardSize() = %dx%d, want 244x216", w, h)
	}

	first := g.CellRect(0)
	if first.X != 8 || first.Y != 88 {
		t.Errorf("CellRect(0) origin = (%d,%d), want (8,88)", first.X, first.Y)
	}

	// Index 5 -> row 1, col 1
	r := g.CellRect(5)
	wantX := 8 + 1*(244+8)
	wantY := 80 + 8 + 1*(216+8)
	if r.X != wantX || r.Y != wantY {
		t.Errorf("CellRect(5) origin = (%d,%d), want (%d,%d)", r.X, r.Y, wantX, wantY)
	}
	if r.W != 244 || r.H != 216 {
		t.Errorf("CellRect(5) size = %dx%d, want 244x216", r.W, r.H)
	}
}

func TestGrid_HitTest(t *testing.T) {
	g := NewGrid(3, 4, 1024, 768)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"status area", 100, 40, -1},
		{"left padding", 2, 200, -1},
		{"first card center", 130, 196, 0},
		{"first card top-left edge", 8, 88, 0},
		{"first card bottom-right edge", 8 + 244, 88 + 216, 0},
		{"gap between cards", 8 + 244 + 4, 150, -1},
		{"last card", 1000, 740, 11},
	}

	for _, tt := range tests {
		if got := g.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: HitTest(%d,%d) = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGrid_HitTestMatchesCenters(t *testing.T) {
	g := Grid{Rows: 4, Cols: 5, Width: 80, Height: 40, Padding: 1, TopMargin: 4}
	for i := 0; i < g.Cells(); i++ {
		x, y := g.CellRect(i).Center()
		if got := g.HitTest(x, y); got != i {
			t.Errorf("center of cell %d hit %d", i, got)
		}
	}
}

func TestGrid_Fits(t *testing.T) {
	g := Grid{Rows: 4, Cols: 5, Width: 20, Height: 10, Padding: 1, TopMargin: 4}
	if g.Fits(3, 3) {
		t.Error("tiny viewport should not fit 3x3 cards")
	}
	g.Width, g.Height = 120, 40
	if !g.Fits(3, 3) {
		t.Error("large viewport should fit 3x3 cards")
	}
}

func TestGrid_Degenerate(t *testing.T) {
	var g Grid
	if got := g.HitTest(0, 0); got != -1 {
		t.Errorf("empty grid HitTest = %d, want -1", got)
	}
	if r := g.CellRect(3); r != (Rect{}) {
		t.Errorf("empty grid CellRect = %+v, want zero", r)
	}
}
