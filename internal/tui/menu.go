package tui

import (
	"fmt"
	"strings"

	"go-memotest/internal/config"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem int

const (
	itemBoard menuItem = iota
	itemArtSet
	itemPlayers
	itemName2
	itemStart
	menuItems
)

func (m *Model) updateName(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.nameInput.Blur()
			m.screen = screenMenu
			m.menuCursor = int(itemStart)
			return m, nil
		case tea.KeyEsc:
			m.close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateName2(msg)
	}

	switch k.Type {
	case tea.KeyEsc:
		m.name2Input.Blur()
		m.nameInput.Focus()
		m.screen = screenName
		return m, textinput.Blink
	case tea.KeyUp:
		m.moveMenu(-1)
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		m.moveMenu(1)
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		if menuItem(m.menuCursor) == itemName2 {
			break
		}
		d := 1
		if k.Type == tea.KeyLeft {
			d = -1
		}
		m.toggle(menuItem(m.menuCursor), d)
		return m, nil
	case tea.KeyEnter:
		if menuItem(m.menuCursor) == itemStart {
			m.name2Input.Blur()
			return m, m.startMatch()
		}
		m.moveMenu(1)
		return m, nil
	}
	return m, m.updateName2(msg)
}

// updateName2 forwards typing to the second name field while it is focused.
func (m *Model) updateName2(msg tea.Msg) tea.Cmd {
	if menuItem(m.menuCursor) != itemName2 {
		return nil
	}
	var cmd tea.Cmd
	m.name2Input, cmd = m.name2Input.Update(msg)
	return cmd
}

// moveMenu moves the menu cursor, skipping the second name in single
// player mode.
func (m *Model) moveMenu(d int) {
	n := int(menuItems)
	m.menuCursor = (m.menuCursor + d + n) % n
	if menuItem(m.menuCursor) == itemName2 && m.cfg.Players < 2 {
		m.menuCursor = (m.menuCursor + d + n) % n
	}
	if menuItem(m.menuCursor) == itemName2 {
		m.name2Input.Focus()
	} else {
		m.name2Input.Blur()
	}
}

// boards are the board sizes offered by the menu.
var boards = [][2]int{{3, 4}, {4, 4}, {4, 5}}

// boardIndex maps a config to the menu board it selects. Anything other
// than 4x4 and 4x5 selects 3x4.
func boardIndex(cfg config.Config) int {
	for i, b := range boards {
		if cfg.Rows == b[0] && cfg.Columns == b[1] {
			return i
		}
	}
	return 0
}

func (m *Model) setBoard(i int) {
	b := boards[i]
	m.cfg.Rows, m.cfg.Columns = b[0], b[1]
}

// toggle changes a setting to its next allowed value, backwards when d < 0.
func (m *Model) toggle(item menuItem, d int) {
	switch item {
	case itemBoard:
		n := len(boards)
		m.setBoard((boardIndex(m.cfg) + d + n) % n)
	case itemArtSet:
		m.cfg.ArtSet = 3 - m.cfg.ArtSet
	case itemPlayers:
		m.cfg.Players = 3 - m.cfg.Players
	}
	m.cfg = m.cfg.Clamp()
}

func (m *Model) nameView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MEMOTEST"))
	b.WriteString("\n\nEnter your name:\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter: continue • esc: quit"))
	return b.String()
}

func (m *Model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MEMOTEST"))
	b.WriteString("\n\n")

	line := func(item menuItem, label, value string) {
		if item == itemName2 && m.cfg.Players < 2 {
			return
		}
		text := fmt.Sprintf("%-10s %s", label, value)
		if label == "" {
			text = value
		}
		if int(item) == m.menuCursor {
			b.WriteString(selectedItem.Render("> " + text))
		} else {
			b.WriteString("  " + text)
		}
		b.WriteString("\n")
	}

	sizes := make([]string, len(boards))
	for i, bd := range boards {
		sizes[i] = fmt.Sprintf("%dx%d", bd[0], bd[1])
	}
	line(itemBoard, "Board", choice(sizes, boardIndex(m.cfg)))
	line(itemArtSet, "Art set", choice([]string{"1", "2"}, m.cfg.ArtSet-1))
	line(itemPlayers, "Players", choice([]string{"1", "2"}, m.cfg.Players-1))
	line(itemName2, "Player 2", m.name2Input.View())
	b.WriteString("\n")
	line(itemStart, "", "Start")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: move • ←/→: change • enter: start • esc: back"))
	return b.String()
}

// choice renders the options with the selected one highlighted.
func choice(options []string, selected int) string {
	out := make([]string, len(options))
	for i, o := range options {
		o = " " + o + " "
		if i == selected {
			o = cursorStyle.Render(o)
		}
		out[i] = o
	}
	return strings.Join(out, " ")
}
