package game

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go-memotest/internal/scoring"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session runs consecutive matches with the same options and records each
// finished match in the ranking exactly once.
type Session struct {
	Options Options
	Names   [2]string
	Storage scoring.RankingStorage
	Ranking *scoring.Ranking

	CurrentGame *Game
	MatchID     string

	recorded bool
	ranked   []bool
	now      func() time.Time
}

// NewSession loads the ranking from storage and starts the first match.
// storage may be nil, in which case the ranking only lives in memory.
func NewSession(opts Options, names []string, storage scoring.RankingStorage) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := &Session{
		Options: opts,
		Storage: storage,
		now:     time.Now,
	}
	copy(s.Names[:], names)

	if storage != nil {
		r, err := scoring.Load(storage, scoring.DefaultLimit)
		if err != nil {
			return nil, err
		}
		s.Ranking = r
	} else {
		s.Ranking = scoring.NewRanking(nil, scoring.DefaultLimit)
	}

	if err := s.NextGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NextGame abandons the current match, if any, and deals a new board.
func (s *Session) NextGame() error {
	g, err := New(s.Options)
	if err != nil {
		return fmt.Errorf("could not start match: %w", err)
	}
	s.CurrentGame.Destroy()
	s.CurrentGame = g
	s.MatchID = uuid.NewString()
	s.recorded = false
	s.ranked = nil
	s.Options.Logger.Info("match started", "id", s.MatchID, "rows", s.Options.Rows, "cols", s.Options.Cols, "set", g.ArtSet(), "players", g.Players())
	return nil
}

// Restart is NextGame under the name the UI uses.
func (s *Session) Restart() error {
	return s.NextGame()
}

// Update records the current match once it is finished. It reports whether
// this call recorded it.
func (s *Session) Update() bool {
	if s.CurrentGame == nil || s.recorded || !s.CurrentGame.Finished() {
		return false
	}
	s.recorded = true

	entries := s.Results()
	if s.Storage != nil {
		r, ranked, err := scoring.Record(s.Storage, scoring.DefaultLimit, entries...)
		if err == nil {
			s.Ranking, s.ranked = r, ranked
			return true
		}
		s.Options.Logger.Error("could not save ranking", "err", err)
	}
	s.ranked = make([]bool, len(entries))
	for i, e := range entries {
		s.ranked[i] = s.Ranking.Add(e)
	}
	return true
}

// Recorded reports whether the current match has been written to the ranking.
func (s *Session) Recorded() bool {
	return s.recorded
}

// Ranked reports, per recorded entry, whether it made it into the ranking.
func (s *Session) Ranked() []bool {
	return s.ranked
}

// Results returns the ranking entries for the current match: one with the
// total score for a single player, one per player otherwise.
func (s *Session) Results() []Entry {
	g := s.CurrentGame
	stamp := s.now().UTC().Format(time.RFC3339)
	base := scoring.Entry{
		Rows:      g.Rows(),
		Columns:   g.Columns(),
		MatchID:   s.MatchID,
		Timestamp: stamp,
	}

	if g.Players() < 2 {
		e := base
		e.Name = s.PlayerName(0)
		e.Score = g.Stats().Score
		return []Entry{e}
	}

	out := make([]Entry, 0, 2)
	for p := 0; p < 2; p++ {
		e := base
		e.Name = s.PlayerName(p)
		e.Score = g.PlayerStats(p).Score
		out = append(out, e)
	}
	return out
}

// PlayerName returns the name of player p or its default.
func (s *Session) PlayerName(p int) string {
	if p >= 0 && p < len(s.Names) {
		if n := strings.TrimSpace(s.Names[p]); n != "" {
			return n
		}
	}
	if s.CurrentGame == nil || s.CurrentGame.Players() < 2 {
		return "Player"
	}
	return fmt.Sprintf("Player %d", p+1)
}

// Close abandons the current match.
func (s *Session) Close() {
	s.CurrentGame.Destroy()
	s.CurrentGame = nil
}

// Entry is a ranking entry produced by a match.
type Entry = scoring.Entry
