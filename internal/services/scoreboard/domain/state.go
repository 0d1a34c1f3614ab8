package domain

import "fmt"

// DefaultCeiling is the round score ceiling used when nothing else is configured.
const DefaultCeiling = 20

// CeilingOptions lists the ceilings offered by the settings menu. The engine
// itself accepts any positive value.
var CeilingOptions = []int{20, 30, 40}

// State is the scoreboard model for one play session.
type State struct {
	// Score holds round points per team, always within [0, Ceiling].
	Score [TeamCount]int
	// GameScore counts completed rounds per team.
	GameScore [TeamCount]int
	Ceiling   int
}

// NewState returns the zero-score state for ceiling.
func NewState(ceiling int) State {
	return State{Ceiling: ceiling}
}

// Default returns the zero-score state with DefaultCeiling.
func Default() State {
	return NewState(DefaultCeiling)
}

// RoundComplete reports whether team has reached the ceiling.
func (s State) RoundComplete(team Team) bool {
	if !team.Valid() || s.Ceiling <= 0 {
		return false
	}
	return s.Score[team] == s.Ceiling
}

// RoundWinner returns the first team at the ceiling, if any.
func (s State) RoundWinner() (Team, bool) {
	for _, team := range []Team{TeamA, TeamB} {
		if s.RoundComplete(team) {
			return team, true
		}
	}
	return 0, false
}

// Repair brings a state read from outside the reducer back within its
// invariants. A non-positive ceiling becomes fallbackCeiling.
func (s State) Repair(fallbackCeiling int) State {
	if s.Ceiling <= 0 {
		s.Ceiling = fallbackCeiling
	}
	for i := range s.Score {
		s.Score[i] = clamp(s.Score[i], 0, s.Ceiling)
		s.GameScore[i] = max(s.GameScore[i], 0)
	}
	return s
}

// String renders the state for logs.
func (s State) String() string {
	return fmt.Sprintf("score=%v games=%v ceiling=%d", s.Score, s.GameScore, s.Ceiling)
}

func clamp(value, minValue, maxValue int) int {
	if minValue > maxValue {
		return minValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}
