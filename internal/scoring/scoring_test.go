package scoring

import (
	"errors"
	"fmt"
	"testing"
)

// MockRankingStorage is a mock implementation of the RankingStorage interface
// that stores entries in memory.
type MockRankingStorage struct {
	Entries []Entry
	err     error // To simulate errors from the storage layer.
	saves   int
}

func (m *MockRankingStorage) LoadAll() ([]Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.Entries, nil
}

func (m *MockRankingStorage) SaveAll(entries []Entry) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.Entries = entries
	return nil
}

func TestPoints(t *testing.T) {
	tests := []struct {
		reward, streak, want int
	}{
		{10, 1, 10},
		{13, 2, 16}, // 16.25
		{15, 3, 23}, // 22.5 rounds up
		{50, 5, 100},
		{42, 0, 42}, // streak below one counts as one
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_x%d", tt.reward, tt.streak), func(t *testing.T) {
			if got := Points(tt.reward, tt.streak); got != tt.want {
				t.Errorf("Points(%d, %d) = %d, want %d", tt.reward, tt.streak, got, tt.want)
			}
		})
	}
}

func TestPlayerStats_Streak(t *testing.T) {
	var p PlayerStats

	if pts := p.RecordMatch(20); pts != 20 {
		t.Errorf("first match: expected 20 points, got %d", pts)
	}
	if pts := p.RecordMatch(20); pts != 25 {
		t.Errorf("second match: expected 25 points, got %d", pts)
	}
	if p.Streak != 2 || p.Score != 45 || p.Matches != 2 || p.Attempts != 2 {
		t.Errorf("after two matches: %+v", p)
	}

	p.RecordMismatch()
	if p.Streak != 0 {
		t.Errorf("mismatch should reset streak, got %d", p.Streak)
	}
	if p.Attempts != 3 || p.Score != 45 {
		t.Errorf("mismatch should only count an attempt: %+v", p)
	}

	// Streak starts over after a miss.
	if pts := p.RecordMatch(20); pts != 20 {
		t.Errorf("match after mismatch: expected 20 points, got %d", pts)
	}
}

func TestTotals(t *testing.T) {
	players := []PlayerStats{
		{Score: 30, Matches: 2, Attempts: 5, Streak: 0},
		{Score: 12, Matches: 1, Attempts: 3, Streak: 1},
	}

	tot := Totals(players, 1)
	if tot.Score != 42 || tot.Matches != 3 || tot.Attempts != 8 {
		t.Errorf("unexpected totals: %+v", tot)
	}
	if tot.Streak != 1 {
		t.Errorf("streak should come from the current player, got %d", tot.Streak)
	}

	if got := Totals(players, 0).Streak; got != 0 {
		t.Errorf("expected streak 0 for player 0, got %d", got)
	}
}

func TestRanking_SortedAndCapped(t *testing.T) {
	r := NewRanking(nil, 3)

	for i, score := range []int{50, 80, 20, 70} {
		r.Add(Entry{Name: fmt.Sprintf("p%d", i), Score: score})
	}

	if len(r.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(r.Entries))
	}
	want := []int{80, 70, 50}
	for i, e := range r.Entries {
		if e.Score != want[i] {
			t.Errorf("entry %d: expected score %d, got %d", i, want[i], e.Score)
		}
	}

	if r.Add(Entry{Name: "low", Score: 10}) {
		t.Error("entry below the cut should not be reported as ranked")
	}
	if !r.Add(Entry{Name: "high", Score: 90}) {
		t.Error("top entry should be reported as ranked")
	}
	if hs := r.HighScore(); hs == nil || hs.Name != "high" {
		t.Errorf("unexpected high score: %+v", hs)
	}
}

func TestRanking_TiesKeepInsertionOrder(t *testing.T) {
	r := NewRanking([]Entry{{Name: "first", Score: 40}}, 2)

	// Equal score goes after the existing entry.
	if !r.Add(Entry{Name: "second", Score: 40}) {
		t.Error("tie inside the limit should rank")
	}
	if r.Entries[0].Name != "first" || r.Entries[1].Name != "second" {
		t.Errorf("ties reordered: %+v", r.Entries)
	}

	// A third equal score falls off the end.
	if r.Add(Entry{Name: "third", Score: 40}) {
		t.Error("tie at a full ranking should not rank")
	}
	if len(r.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.Entries))
	}
}

func TestRanking_Qualifies(t *testing.T) {
	r := NewRanking(nil, 2)
	if !r.Qualifies(0) {
		t.Error("anything qualifies for a ranking with room")
	}

	r.Add(Entry{Name: "a", Score: 30})
	r.Add(Entry{Name: "b", Score: 20})
	if r.Qualifies(20) {
		t.Error("equal to the last entry should not qualify")
	}
	if !r.Qualifies(21) {
		t.Error("above the last entry should qualify")
	}
}

func TestNewRanking_Normalizes(t *testing.T) {
	entries := make([]Entry, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, Entry{Name: fmt.Sprint(i), Score: i})
	}

	r := NewRanking(entries, 0)
	if r.Limit != DefaultLimit || len(r.Entries) != DefaultLimit {
		t.Fatalf("expected default limit of %d, got limit %d with %d entries", DefaultLimit, r.Limit, len(r.Entries))
	}
	if r.Entries[0].Score != 11 || r.Entries[9].Score != 2 {
		t.Errorf("unexpected order: first %d, last %d", r.Entries[0].Score, r.Entries[9].Score)
	}
	if entries[0].Score != 0 {
		t.Error("NewRanking should not modify its input")
	}
	if top := r.Top(3); len(top) != 3 || top[2].Score != 9 {
		t.Errorf("unexpected Top(3): %+v", top)
	}
}

func TestRecord(t *testing.T) {
	mock := &MockRankingStorage{Entries: []Entry{{Name: "old", Score: 15}}}

	r, ranked, err := Record(mock, DefaultLimit, Entry{Name: "Player 1", Score: 40}, Entry{Name: "Player 2", Score: 10})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if mock.saves != 1 {
		t.Errorf("expected a single save, got %d", mock.saves)
	}
	if len(r.Entries) != 3 || mock.Entries[0].Name != "Player 1" || mock.Entries[2].Name != "Player 2" {
		t.Errorf("unexpected stored ranking: %+v", mock.Entries)
	}
	if len(ranked) != 2 || !ranked[0] || !ranked[1] {
		t.Errorf("expected both entries ranked, got %v", ranked)
	}
}

func TestRecord_StorageError(t *testing.T) {
	sentinel := errors.New("disk on fire")
	mock := &MockRankingStorage{err: sentinel}

	if _, _, err := Record(mock, DefaultLimit, Entry{Name: "x", Score: 1}); !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}
