package scoring

// Reward range for a pair, inclusive.
const (
	MinReward = 10
	MaxReward = 50
)

// streakStep is the bonus added to the multiplier for every consecutive
// match after the first.
const streakStep = 0.25

// PlayerStats tracks one player's progress during a match.
type PlayerStats struct {
	Score    int
	Matches  int
	Attempts int
	Streak   int
}

// Multiplier returns the reward multiplier for the given streak, where streak
// counts the current match (1 for the first match of a run).
func Multiplier(streak int) float64 {
	if streak < 1 {
		streak = 1
	}
	return 1.0 + streakStep*float64(streak-1)
}

// Points returns the points earned for a pair worth reward when it completes a
// run of streak matches. The result is rounded by adding 0.5 and truncating;
// rewards are never negative so this is round-half-up.
func Points(reward, streak int) int {
	return int(float64(reward)*Multiplier(streak) + 0.5)
}

// RecordMatch registers a resolved pair that matched and returns the points
// added to the score.
func (p *PlayerStats) RecordMatch(reward int) int {
	p.Attempts++
	p.Matches++
	p.Streak++
	pts := Points(reward, p.Streak)
	p.Score += pts
	return pts
}

// RecordMismatch registers a resolved pair that did not match.
func (p *PlayerStats) RecordMismatch() {
	p.Attempts++
	p.Streak = 0
}

// Totals sums score, matches and attempts over the given players. The streak
// is taken from the player whose turn it is.
func Totals(players []PlayerStats, turn int) PlayerStats {
	var t PlayerStats
	for _, p := range players {
		t.Score += p.Score
		t.Matches += p.Matches
		t.Attempts += p.Attempts
	}
	if turn >= 0 && turn < len(players) {
		t.Streak = players[turn].Streak
	}
	return t
}
