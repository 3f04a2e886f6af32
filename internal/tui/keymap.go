// Package tui is the terminal host of the game: name entry, settings menu
// and the board, driven by Bubble Tea.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the board refresh cadence, about 60 Hz.
const FrameInterval = 16 * time.Millisecond

// TickMsg drives the board. Seq identifies the tick chain so a stale chain
// from a previous match dies out.
type TickMsg struct {
	At  time.Time
	Seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Seq: seq}
	})
}

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pick      key.Binding
	Restart   key.Binding
	Menu      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Pick:      key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "flip")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Restart, k.Menu, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pick, k.Restart, k.Menu, k.Quit},
	}
}
