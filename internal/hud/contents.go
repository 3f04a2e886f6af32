package hud

import (
	"errors"
	"fmt"
	"strings"

	"go-memotest/internal/scoring"

	"github.com/charmbracelet/lipgloss"
)

var ErrNoPlayers = errors.New("status has no players")

const turnMarker = ">> "

// PlayerLine is one player's row in the status display.
type PlayerLine struct {
	Name  string
	Stats scoring.PlayerStats
}

// Status is the data shown above the board.
type Status struct {
	Players  []PlayerLine
	Turn     int
	Finished bool
}

// StatusContent renders the player statistics: a single line for one
// player, one line per player with a turn marker otherwise.
type StatusContent struct {
	Normal lipgloss.Style
	Active lipgloss.Style

	released bool
}

func NewStatusContent() *StatusContent {
	return &StatusContent{
		Normal: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		Active: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF64")).Bold(true),
	}
}

func (c *StatusContent) Render(_, next Status) (string, error) {
	switch len(next.Players) {
	case 0:
		return "", ErrNoPlayers
	case 1:
		p := next.Players[0]
		line := fmt.Sprintf("%s  Pts:%d  Matches:%d  Attempts:%d  Streak:%d",
			p.Name, p.Stats.Score, p.Stats.Matches, p.Stats.Attempts, p.Stats.Streak)
		return c.Normal.Render(line), nil
	}

	lines := make([]string, len(next.Players))
	for i, p := range next.Players {
		marker := strings.Repeat(" ", len(turnMarker))
		if i == next.Turn && !next.Finished {
			marker = turnMarker
		}
		line := fmt.Sprintf("%s%s  Pts:%d  M:%d  A:%d  Streak:%d",
			marker, p.Name, p.Stats.Score, p.Stats.Matches, p.Stats.Attempts, p.Stats.Streak)
		style := c.Normal
		if i == next.Turn {
			style = c.Active
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *StatusContent) Release() {
	c.released = true
}

// Medal colors for the first three places.
var (
	gold   = lipgloss.Color("#FFD700")
	silver = lipgloss.Color("#C0C0C0")
	bronze = lipgloss.Color("#CD7F32")
)

// RankingContent renders the ranking panel shown when a match ends.
type RankingContent struct {
	Title  string
	Footer string
	Limit  int

	released bool
}

func NewRankingContent() *RankingContent {
	return &RankingContent{
		Title:  "RANKING TOP 10",
		Footer: "r: play again • esc: quit",
		Limit:  scoring.DefaultLimit,
	}
}

func (c *RankingContent) Render(_, next []scoring.Entry) (string, error) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFC832")).
		Bold(true).
		Render(c.Title)

	var rows []string
	if len(next) == 0 {
		rows = append(rows, "No scores yet")
	}
	for i, e := range next {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
		switch i {
		case 0:
			style = style.Foreground(gold)
		case 1:
			style = style.Foreground(silver)
		case 2:
			style = style.Foreground(bronze)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%2d. %-20s %d pts", i+1, e.Name, e.Score)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFC832")).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, "", body))

	if c.Footer == "" {
		return panel, nil
	}
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("#B4B4B4")).Render(c.Footer)
	return lipgloss.JoinVertical(lipgloss.Center, panel, footer), nil
}

func (c *RankingContent) Release() {
	c.released = true
}
