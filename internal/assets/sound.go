package assets

import (
	"io"
	"strings"
)

// Cue names requested by the match engine.
const (
	CueFirstPick = "first"
	CueMatch     = "match"
	CueMismatch  = "mismatch"
)

// Sound is a loaded sound cue.
type Sound interface {
	// Play plays the sound repeat times; -1 loops.
	Play(repeat int)
	Release()
}

// SoundBank loads sounds by name. Load returns nil when the sound is missing.
type SoundBank interface {
	Load(name string) Sound
}

// MuteBank is a SoundBank with no sounds at all.
type MuteBank struct{}

// Load implements SoundBank.
func (MuteBank) Load(string) Sound { return nil }

// BellBank plays cues by ringing the terminal bell. Each cue name maps to the
// number of rings for a single play.
type BellBank struct {
	Out   io.Writer
	Rings map[string]int
}

// NewBellBank creates a bell bank with the default cues: one ring for a
// match, two for a mismatch and none for the first pick.
func NewBellBank(out io.Writer) *BellBank {
	return &BellBank{
		Out: out,
		Rings: map[string]int{
			CueMatch:    1,
			CueMismatch: 2,
		},
	}
}

// Load implements SoundBank.
func (b *BellBank) Load(name string) Sound {
	if b == nil || b.Out == nil {
		return nil
	}
	n, ok := b.Rings[name]
	if !ok || n <= 0 {
		return nil
	}
	return &bell{out: b.Out, rings: n}
}

type bell struct {
	out      io.Writer
	rings    int
	released bool
}

func (s *bell) Play(repeat int) {
	if s.released || repeat == 0 {
		return
	}
	// Looping a bell forever makes no sense in a terminal.
	if repeat < 0 {
		repeat = 1
	}
	//nolint:errcheck // Best-effort cue
	io.WriteString(s.out, strings.Repeat("\a", s.rings*repeat))
}

func (s *bell) Release() {
	s.released = true
}
