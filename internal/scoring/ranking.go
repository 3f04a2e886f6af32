package scoring

import (
	"slices"
)

// DefaultLimit is the number of entries kept in a ranking.
const DefaultLimit = 10

// Entry is a single ranking record.
type Entry struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Rows      int    `json:"rows,omitempty"`
	Columns   int    `json:"columns,omitempty"`
	MatchID   string `json:"match_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Ranking is a top-N list sorted by descending score. Entries with equal
// scores keep the order in which they were added.
type Ranking struct {
	Entries []Entry
	Limit   int
}

// NewRanking creates a ranking from existing entries, normalizing order and
// length.
func NewRanking(entries []Entry, limit int) *Ranking {
	if limit <= 0 {
		limit = DefaultLimit
	}
	r := &Ranking{
		Entries: slices.Clone(entries),
		Limit:   limit,
	}
	r.normalize()
	return r
}

// Add inserts an entry, keeps the list sorted and trims it to the limit.
// It reports whether the new entry made it into the ranking.
func (r *Ranking) Add(e Entry) bool {
	// The new entry lands after every entry scoring at least as much.
	ok := r.Qualifies(e.Score)
	r.Entries = append(r.Entries, e)
	r.normalize()
	return ok
}

// Top returns at most n entries from the head of the ranking.
func (r *Ranking) Top(n int) []Entry {
	if n > len(r.Entries) || n < 0 {
		n = len(r.Entries)
	}
	return slices.Clone(r.Entries[:n])
}

// Qualifies reports whether score would enter the ranking.
func (r *Ranking) Qualifies(score int) bool {
	if len(r.Entries) < r.limit() {
		return true
	}
	return score > r.Entries[len(r.Entries)-1].Score
}

// HighScore returns the best entry, or nil for an empty ranking.
func (r *Ranking) HighScore() *Entry {
	if len(r.Entries) == 0 {
		return nil
	}
	return &r.Entries[0]
}

func (r *Ranking) limit() int {
	if r.Limit <= 0 {
		return DefaultLimit
	}
	return r.Limit
}

func (r *Ranking) normalize() {
	slices.SortStableFunc(r.Entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(r.Entries) > r.limit() {
		r.Entries = r.Entries[:r.limit()]
	}
}
