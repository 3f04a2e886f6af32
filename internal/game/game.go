package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go-memotest/internal/assets"
	"go-memotest/internal/layout"
	"go-memotest/internal/scoring"
	"go-memotest/internal/state"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidConfig is returned by New for a board that cannot be split
	// into pairs.
	ErrInvalidConfig = errors.New("invalid board configuration")
	// ErrAllocation is returned by New when the board or its art cannot be
	// built. No partial board is kept.
	ErrAllocation = errors.New("board allocation failed")
)

// Default viewport used when Options leaves it empty.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Options configures a new match.
type Options struct {
	Rows    int
	Cols    int
	ArtSet  int
	Players int

	// Loader provides pair art. Nil means placeholders only.
	Loader assets.Loader
	// Placeholder generates fallback art. Nil means assets.Placeholder.
	Placeholder func(pairID int) (*assets.Art, error)
	// Sounds provides the cues. Nil means no sound.
	Sounds assets.SoundBank
	// Rand drives rewards and the shuffle. Nil means a time-seeded source.
	Rand *rand.Rand

	// Viewport geometry. Zero values take the pixel defaults.
	Width     int
	Height    int
	Padding   int
	TopMargin int

	Logger *log.Logger
}

// Game is a single match. The board is only reachable through its methods.
type Game struct {
	st     *state.State
	grid   layout.Grid
	art    []*assets.Art
	sounds map[string]assets.Sound
	logger *log.Logger

	artSet    int
	destroyed bool
}

// New creates and shuffles a board of opts.Rows x opts.Cols cards.
func New(opts Options) (*Game, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 || (opts.Rows*opts.Cols)%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidConfig, opts.Rows, opts.Cols)
	}
	if opts.Players != 2 {
		opts.Players = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Placeholder == nil {
		opts.Placeholder = assets.Placeholder
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	g := &Game{
		grid:   newGrid(opts),
		logger: opts.Logger,
		artSet: opts.ArtSet,
	}

	pairs := opts.Rows * opts.Cols / 2
	if err := g.loadArt(opts, pairs); err != nil {
		return nil, err
	}

	cards := make([]state.Card, 0, pairs*2)
	for id := 0; id < pairs; id++ {
		reward := scoring.MinReward + opts.Rand.IntN(scoring.MaxReward-scoring.MinReward+1)
		c := state.Card{PairID: id, Reward: reward}
		cards = append(cards, c, c)
	}
	shuffle(cards, opts.Rand)

	g.loadSounds(opts.Sounds)
	g.st = state.NewState(cards, opts.Players, g.hooks())

	g.logger.Debug("board created", "rows", opts.Rows, "cols", opts.Cols, "set", opts.ArtSet, "players", opts.Players)
	return g, nil
}

func newGrid(opts Options) layout.Grid {
	grid := layout.NewGrid(opts.Rows, opts.Cols, opts.Width, opts.Height)
	if grid.Width <= 0 {
		grid.Width = DefaultWidth
	}
	if grid.Height <= 0 {
		grid.Height = DefaultHeight
	}
	if opts.Padding > 0 {
		grid.Padding = opts.Padding
	}
	if opts.TopMargin > 0 {
		grid.TopMargin = opts.TopMargin
	}
	return grid
}

// loadArt acquires one asset per pair, falling back to a placeholder.
func (g *Game) loadArt(opts Options, pairs int) error {
	g.art = make([]*assets.Art, 0, pairs)
	for id := 0; id < pairs; id++ {
		var art *assets.Art
		var err error
		if opts.Loader != nil {
			art, err = opts.Loader.Load(opts.ArtSet, id)
		} else {
			err = assets.ErrUnavailable
		}
		if err != nil || art == nil {
			g.logger.Warn("using placeholder art", "set", opts.ArtSet, "pair", id, "err", err)
			art, err = opts.Placeholder(id)
			if err != nil || art == nil {
				g.releaseArt()
				return fmt.Errorf("%w: placeholder for pair %d: %v", ErrAllocation, id, err)
			}
		}
		g.art = append(g.art, art)
	}
	return nil
}

func (g *Game) loadSounds(bank assets.SoundBank) {
	g.sounds = make(map[string]assets.Sound)
	if bank == nil {
		return
	}
	for _, name := range []string{assets.CueFirstPick, assets.CueMatch, assets.CueMismatch} {
		if s := bank.Load(name); s != nil {
			g.sounds[name] = s
		}
	}
}

// shuffle is a Fisher-Yates shuffle: i runs from the last index down to 1
// and swaps with a uniform j in [0, i].
func shuffle(cards []state.Card, r *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

func (g *Game) hooks() state.Hooks {
	return state.Hooks{
		FirstPick: func(card int) {
			g.logger.Debug("first pick", "card", card)
			g.play(assets.CueFirstPick)
		},
		Match: func(player, points int) {
			g.logger.Debug("match", "player", player, "points", points)
			g.play(assets.CueMatch)
		},
		Mismatch: func(player int) {
			g.logger.Debug("mismatch", "player", player)
			g.play(assets.CueMismatch)
		},
		Complete: func() {
			t := g.st.Totals()
			g.logger.Info("match finished", "score", t.Score, "attempts", t.Attempts)
		},
	}
}

func (g *Game) play(cue string) {
	if s, ok := g.sounds[cue]; ok {
		s.Play(1)
	}
}

// HandleInput feeds a pointer event into the board.
func (g *Game) HandleInput(ev Event) {
	if g == nil || g.destroyed {
		return
	}
	switch ev := ev.(type) {
	case PointerMove:
		g.st.SetHover(g.grid.HitTest(ev.X, ev.Y))
	case PointerPress:
		if ev.Button != ButtonPrimary {
			return
		}
		if i := g.grid.HitTest(ev.X, ev.Y); i >= 0 {
			g.st.Press(i)
		}
	}
}

// Advance moves the resolution countdown forward by deltaMs.
func (g *Game) Advance(deltaMs uint32) {
	if g == nil || g.destroyed {
		return
	}
	g.st.Tick(deltaMs)
}

// Resize changes the viewport the board is laid out in.
func (g *Game) Resize(width, height int) {
	if g == nil {
		return
	}
	g.grid.Width = width
	g.grid.Height = height
}

// Destroy releases the pair art and sounds. It is safe to call on a nil or
// already destroyed game.
func (g *Game) Destroy() {
	if g == nil || g.destroyed {
		return
	}
	g.releaseArt()
	for name, s := range g.sounds {
		s.Release()
		delete(g.sounds, name)
	}
	g.destroyed = true
}

func (g *Game) releaseArt() {
	for _, a := range g.art {
		a.Release()
	}
	g.art = nil
}
