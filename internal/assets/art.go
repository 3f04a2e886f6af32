// Package assets provides the per-pair card art and the sound cues used by a
// match. Art sets are described in YAML; a default file is embedded.
package assets

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned when an art set or pair has no art. Callers are
// expected to fall back to a Placeholder.
var ErrUnavailable = errors.New("asset unavailable")

//go:embed sets.yaml
var defaultSetsYAML []byte

// Art is the visual asset shared by both cards of a pair.
type Art struct {
	PairID      int
	Label       string
	Color       string // hex color, e.g. "#1e3a8a"
	Placeholder bool

	released bool
}

// Release frees the art. Calling it more than once has no effect.
func (a *Art) Release() {
	if a == nil {
		return
	}
	a.released = true
}

// Released reports whether Release has been called.
func (a *Art) Released() bool {
	return a != nil && a.released
}

// PairArt is one entry of an art set file.
type PairArt struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// ArtSet is a named collection of pair art selected by ID.
type ArtSet struct {
	ID    int       `yaml:"id"`
	Name  string    `yaml:"name"`
	Pairs []PairArt `yaml:"pairs"`
}

type setsFile struct {
	Sets []ArtSet `yaml:"sets"`
}

// Loader loads the art for a pair of the given art set.
type Loader interface {
	Load(set, pairID int) (*Art, error)
}

// Library is a Loader backed by in-memory art sets.
type Library struct {
	sets map[int]ArtSet
}

// NewLibrary creates a library from the given sets. Later sets replace
// earlier ones with the same ID.
func NewLibrary(sets ...ArtSet) *Library {
	lib := &Library{sets: make(map[int]ArtSet)}
	for _, s := range sets {
		lib.sets[s.ID] = s
	}
	return lib
}

// DefaultLibrary returns the library built from the embedded art sets.
func DefaultLibrary() (*Library, error) {
	sets, err := ParseSets(defaultSetsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded art sets: %w", err)
	}
	return NewLibrary(sets...), nil
}

// ParseSets decodes an art set YAML document.
func ParseSets(data []byte) ([]ArtSet, error) {
	var f setsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Sets, nil
}

// Merge adds or replaces sets in the library.
func (l *Library) Merge(sets ...ArtSet) {
	for _, s := range sets {
		l.sets[s.ID] = s
	}
}

// Set returns the art set with the given ID.
func (l *Library) Set(id int) (ArtSet, bool) {
	s, ok := l.sets[id]
	return s, ok
}

// Load implements Loader.
func (l *Library) Load(set, pairID int) (*Art, error) {
	s, ok := l.sets[set]
	if !ok {
		return nil, fmt.Errorf("art set %d: %w", set, ErrUnavailable)
	}
	if pairID < 0 || pairID >= len(s.Pairs) {
		return nil, fmt.Errorf("art set %d has no pair %d: %w", set, pairID, ErrUnavailable)
	}
	p := s.Pairs[pairID]
	return &Art{
		PairID: pairID,
		Label:  p.Label,
		Color:  p.Color,
	}, nil
}

// Placeholder generates the fallback art for a pair. The color depends only on
// the pair ID; channels wrap around like 8-bit values.
func Placeholder(pairID int) (*Art, error) {
	r := uint8(50 + pairID*20)
	g := uint8(100 + pairID*15)
	b := uint8(200 - pairID*15)
	return &Art{
		PairID:      pairID,
		Label:       fmt.Sprintf("#%d", pairID+1),
		Color:       fmt.Sprintf("#%02x%02x%02x", r, g, b),
		Placeholder: true,
	}, nil
}
