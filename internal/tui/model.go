package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go-memotest/internal/assets"
	"go-memotest/internal/config"
	"go-memotest/internal/game"
	"go-memotest/internal/hud"
	"go-memotest/internal/scoring"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Terminal geometry of the board.
const (
	Padding   = 1
	TopMargin = 4 // lines reserved for the status display
)

// Options configures a Model.
type Options struct {
	Config config.Config
	// ConfigPath is where menu choices are saved. Empty disables saving.
	ConfigPath string
	Names      [2]string
	// Storage holds the ranking. Nil keeps it in memory.
	Storage scoring.RankingStorage
	Art     assets.Loader
	Sounds  assets.SoundBank
	// Seed makes matches reproducible. Zero seeds from the clock.
	Seed   uint64
	Logger *log.Logger

	Width  int
	Height int
}

type screen int

const (
	screenName screen = iota
	screenMenu
	screenPlay
)

// Model is the Bubble Tea model for a whole game session.
type Model struct {
	opts   Options
	cfg    config.Config
	screen screen
	keys   keyMap
	help   help.Model

	nameInput  textinput.Model
	name2Input textinput.Model
	menuCursor int

	session *game.Session
	status  *hud.HUD[hud.Status]
	panel   *hud.HUD[[]scoring.Entry]
	cursor  int

	lastTick time.Time
	tickSeq  int
	rng      *rand.Rand

	width  int
	height int
	err    error
}

// NewModel creates the model on the name entry screen.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	name := textinput.New()
	name.Placeholder = "Player"
	name.CharLimit = 20
	name.Width = 24
	name.SetValue(opts.Names[0])
	name.Focus()

	name2 := textinput.New()
	name2.Placeholder = "Player 2"
	name2.CharLimit = 20
	name2.Width = 24
	name2.SetValue(opts.Names[1])

	m := &Model{
		opts:       opts,
		cfg:        opts.Config.Clamp(),
		screen:     screenName,
		keys:       newKeyMap(),
		help:       help.New(),
		nameInput:  name,
		name2Input: name2,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:      opts.Width,
		height:     opts.Height,
	}
	if b := boards[boardIndex(m.cfg)]; m.cfg.Rows != b[0] || m.cfg.Columns != b[1] {
		opts.Logger.Warn("board not offered by the menu, using default",
			"rows", m.cfg.Rows, "columns", m.cfg.Columns, "using", fmt.Sprintf("%dx%d", b[0], b[1]))
	}
	m.setBoard(boardIndex(m.cfg))
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.close()
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenName:
		return m.updateName(msg)
	case screenMenu:
		return m.updateMenu(msg)
	default:
		return m.updatePlay(msg)
	}
}

// boardSize is the viewport handed to the engine; the last line holds help.
func (m *Model) boardSize() (int, int) {
	return m.width, max(0, m.height-1)
}

func (m *Model) resize() {
	if m.session == nil {
		return
	}
	w, h := m.boardSize()
	m.session.Options.Width, m.session.Options.Height = w, h
	m.session.CurrentGame.Resize(w, h)
	m.placeHUDs()
}

func (m *Model) placeHUDs() {
	w, h := m.boardSize()
	if m.status != nil {
		m.status.MoveTo(w/2, 1, 0)
	}
	if m.panel != nil {
		m.panel.MoveTo(w/2, (h-TopMargin)/2, 0)
	}
}

// startMatch saves the settings and deals the first board.
func (m *Model) startMatch() tea.Cmd {
	if m.opts.ConfigPath != "" {
		if err := config.Save(m.opts.ConfigPath, m.cfg); err != nil {
			m.opts.Logger.Error("could not save config", "err", err)
		}
	}

	w, h := m.boardSize()
	opts := game.Options{
		Rows:      m.cfg.Rows,
		Cols:      m.cfg.Columns,
		ArtSet:    m.cfg.ArtSet,
		Players:   m.cfg.Players,
		Loader:    m.opts.Art,
		Sounds:    m.opts.Sounds,
		Rand:      m.rng,
		Width:     w,
		Height:    h,
		Padding:   Padding,
		TopMargin: TopMargin,
		Logger:    m.opts.Logger,
	}
	names := []string{m.nameInput.Value(), m.name2Input.Value()}

	sess, err := game.NewSession(opts, names, m.opts.Storage)
	if err != nil {
		m.err = err
		m.opts.Logger.Error("could not start match", "err", err)
		return nil
	}
	m.err = nil
	m.session = sess
	m.status = hud.New(0, 0, hud.Status{}, hud.NewStatusContent())
	m.panel = hud.New(0, 0, nil, hud.NewRankingContent())
	m.placeHUDs()
	m.screen = screenPlay
	return m.newRound()
}

// newRound resets per-match UI state and starts a fresh tick chain.
func (m *Model) newRound() tea.Cmd {
	m.cursor = 0
	m.refreshStatus()
	m.lastTick = time.Now()
	m.tickSeq++
	return tickCmd(m.tickSeq)
}

func (m *Model) refreshStatus() {
	g := m.session.CurrentGame
	st := hud.Status{Turn: g.Turn(), Finished: g.Finished()}
	if g.Players() < 2 {
		st.Players = []hud.PlayerLine{{Name: m.session.PlayerName(0), Stats: g.Stats()}}
	} else {
		for p := 0; p < g.Players(); p++ {
			st.Players = append(st.Players, hud.PlayerLine{Name: m.session.PlayerName(p), Stats: g.PlayerStats(p)})
		}
	}
	if err := m.status.Update(st); err != nil {
		m.opts.Logger.Warn("status not updated", "err", err)
	}
}

func (m *Model) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	g := m.session.CurrentGame

	switch msg := msg.(type) {
	case TickMsg:
		if msg.Seq != m.tickSeq {
			return m, nil
		}
		delta := msg.At.Sub(m.lastTick).Milliseconds()
		m.lastTick = msg.At
		g.Advance(uint32(max(0, delta)))
		if m.session.Update() {
			for i, ok := range m.session.Ranked() {
				if ok {
					m.opts.Logger.Info("entered the ranking", "name", m.session.PlayerName(i))
				}
			}
			if err := m.panel.Update(m.session.Ranking.Top(scoring.DefaultLimit)); err != nil {
				m.opts.Logger.Warn("ranking panel not updated", "err", err)
			}
		}
		m.refreshStatus()
		return m, tickCmd(m.tickSeq)

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionMotion:
			g.HandleInput(game.PointerMove{X: msg.X, Y: msg.Y})
			if i := g.HitTest(msg.X, msg.Y); i >= 0 {
				m.cursor = i
			}
		case msg.Action == tea.MouseActionPress:
			g.HandleInput(game.PointerPress{X: msg.X, Y: msg.Y, Button: mouseButton(msg.Button)})
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			if err := m.session.Restart(); err != nil {
				m.err = err
				return m, nil
			}
			return m, m.newRound()
		case key.Matches(msg, m.keys.Menu):
			m.close()
			m.screen = screenMenu
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Pick):
			x, y := g.Grid().CellRect(m.cursor).Center()
			g.HandleInput(game.PointerPress{X: x, Y: y, Button: game.ButtonPrimary})
		}
	}
	return m, nil
}

// moveCursor moves the keyboard cursor on the grid, wrapping at the edges,
// and hovers the card under it.
func (m *Model) moveCursor(dx, dy int) {
	g := m.session.CurrentGame
	rows, cols := g.Rows(), g.Columns()
	r, c := m.cursor/cols, m.cursor%cols
	r = (r + dy + rows) % rows
	c = (c + dx + cols) % cols
	m.cursor = r*cols + c

	x, y := g.Grid().CellRect(m.cursor).Center()
	g.HandleInput(game.PointerMove{X: x, Y: y})
}

func mouseButton(b tea.MouseButton) game.Button {
	switch b {
	case tea.MouseButtonLeft:
		return game.ButtonPrimary
	case tea.MouseButtonRight:
		return game.ButtonSecondary
	case tea.MouseButtonMiddle:
		return game.ButtonMiddle
	}
	return 0
}

func (m *Model) close() {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	if m.status != nil {
		m.status.Destroy()
	}
	if m.panel != nil {
		m.panel.Destroy()
	}
}

// Session returns the running session, or nil outside a match.
func (m *Model) Session() *game.Session {
	return m.session
}
