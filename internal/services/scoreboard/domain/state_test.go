package domain

import "testing"

func TestDefaultState(t *testing.T) {
	state := Default()
	if state.Ceiling != DefaultCeiling {
		t.Fatalf("ceiling = %d, want %d", state.Ceiling, DefaultCeiling)
	}
	if state.Score != [2]int{} || state.GameScore != [2]int{} {
		t.Fatalf("default state = %v, want zero scores", state)
	}
	if _, ok := state.RoundWinner(); ok {
		t.Fatal("expected no round winner in default state")
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name string
		in   State
		want State
	}{
		{
			name: "valid state untouched",
			in:   State{Score: [2]int{5, 10}, GameScore: [2]int{1, 2}, Ceiling: 30},
			want: State{Score: [2]int{5, 10}, GameScore: [2]int{1, 2}, Ceiling: 30},
		},
		{
			name: "scores over ceiling clamped",
			in:   State{Score: [2]int{45, 31}, Ceiling: 30},
			want: State{Score: [2]int{30, 30}, Ceiling: 30},
		},
		{
			name: "negative values floored",
			in:   State{Score: [2]int{-5, 3}, GameScore: [2]int{-1, 4}, Ceiling: 20},
			want: State{Score: [2]int{0, 3}, GameScore: [2]int{0, 4}, Ceiling: 20},
		},
		{
			name: "missing ceiling uses fallback",
			in:   State{Score: [2]int{25, 0}},
			want: State{Score: [2]int{20, 0}, Ceiling: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Repair(20); got != tt.want {
				t.Fatalf("Repair = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundCompleteRejectsInvalidTeam(t *testing.T) {
	state := State{Score: [2]int{20, 20}, Ceiling: 20}
	if state.RoundComplete(Team(3)) {
		t.Fatal("expected invalid team to never be complete")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{IncrementRegular(2), "score.increment(q=2)"},
		{IncrementGamePoint(0, true), "game_point.increment(q=0 reset_round=true)"},
		{SetCeiling(30), "ceiling.set(30)"},
		{ResetGame(), "game.reset"},
		{ResetGamePoints(), "game_points.reset"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
