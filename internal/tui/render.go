package tui

import (
	"fmt"
	"slices"
	"strings"

	"go-memotest/internal/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC832")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B4B4B4"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	selectedItem = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF64")).Bold(true)

	cardBack    = lipgloss.Color("#3C3C78")
	hoverBorder = lipgloss.Color("#FFFF64")
	plainBorder = lipgloss.Color("#6464A0")
)

// Minimum card size in terminal cells, border included.
const (
	minCardWidth  = 3
	minCardHeight = 3
)

func (m *Model) View() string {
	switch m.screen {
	case screenName:
		return m.nameView()
	case screenMenu:
		return m.menuView()
	}
	return m.playView()
}

func (m *Model) playView() string {
	if m.session == nil {
		return ""
	}
	g := m.session.CurrentGame
	w, h := m.boardSize()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Height(TopMargin).
		MaxHeight(TopMargin).
		Render(m.status.Draw(w, TopMargin)))
	b.WriteString("\n")

	switch {
	case !g.Grid().Fits(minCardWidth, minCardHeight):
		b.WriteString(errorStyle.Render(fmt.Sprintf("Terminal too small for a %dx%d board", g.Rows(), g.Columns())))
	case g.Finished():
		panelHeight := h - TopMargin
		if slices.Contains(m.session.Ranked(), true) {
			b.WriteString(titleStyle.Render("New ranking entry!") + "\n")
			panelHeight--
		}
		b.WriteString(m.panel.Draw(w, max(0, panelHeight)))
	default:
		b.WriteString(m.renderBoard(g))
	}

	board := lipgloss.NewStyle().Height(h).MaxHeight(h).Render(b.String())
	return board + "\n" + m.help.View(m.keys)
}

// renderBoard draws every card at the rectangle the engine hit tests with.
func (m *Model) renderBoard(g *game.Game) string {
	grid := g.Grid()
	cells := g.Cells()
	gap := strings.Repeat(" ", grid.Padding)

	rows := make([]string, 0, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		row := make([]string, 0, grid.Cols*2)
		for c := 0; c < grid.Cols; c++ {
			if c > 0 {
				row = append(row, gap)
			}
			row = append(row, m.renderCard(g, cells[r*grid.Cols+c]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.NewStyle().
		PaddingLeft(grid.Padding).
		PaddingTop(grid.Padding).
		Render(strings.Join(rows, strings.Repeat("\n", grid.Padding+1)))
}

func (m *Model) renderCard(g *game.Game, cell game.Cell) string {
	style := lipgloss.NewStyle().
		Width(max(0, cell.Rect.W-2)).
		Height(max(0, cell.Rect.H-2)).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(plainBorder).
		MaxWidth(cell.Rect.W).
		MaxHeight(cell.Rect.H)
	if cell.Hovered {
		style = style.BorderForeground(hoverBorder)
	}

	switch cell.Face {
	case game.FaceMatched:
		return style.
			Border(lipgloss.HiddenBorder()).
			Render("")
	case game.FaceUp:
		art := g.Asset(cell.PairID)
		if art == nil {
			return style.Render("")
		}
		return style.
			Background(lipgloss.Color(art.Color)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Render(art.Label)
	}
	return style.Background(cardBack).Render("?")
}
