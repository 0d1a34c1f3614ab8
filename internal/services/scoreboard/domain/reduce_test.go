package domain

import (
	"errors"
	"testing"
)

func TestReduceIncrementRegularSaturatesAtCeiling(t *testing.T) {
	state := NewState(20)

	for i := 0; i < 4; i++ {
		var err error
		state, err = Reduce(state, IncrementRegular(0))
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}
	if state.Score != [2]int{20, 0} {
		t.Fatalf("score = %v, want [20 0]", state.Score)
	}

	state, err := Reduce(state, IncrementRegular(0))
	if err != nil {
		t.Fatalf("increment past ceiling: %v", err)
	}
	if state.Score != [2]int{20, 0} {
		t.Fatalf("score = %v, want [20 0]", state.Score)
	}
}

func TestReduceIncrementRegularClampsPartialStep(t *testing.T) {
	state := State{Score: [2]int{0, 18}, Ceiling: 20}

	state, err := Reduce(state, IncrementRegular(1))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.Score[TeamB] != 20 {
		t.Fatalf("team B score = %d, want 20", state.Score[TeamB])
	}
}

func TestReduceSaturationLaw(t *testing.T) {
	for _, ceiling := range []int{1, 7, 20, 30, 40} {
		for _, q := range Quarters() {
			state := NewState(ceiling)
			for i := 0; i < 50; i++ {
				var err error
				state, err = Reduce(state, IncrementRegular(q))
				if err != nil {
					t.Fatalf("reduce: %v", err)
				}
				if state.Score[q.Team()] > ceiling {
					t.Fatalf("ceiling %d quarter %d: score %d exceeds ceiling", ceiling, q, state.Score[q.Team()])
				}
			}
			if state.Score[q.Team()] != ceiling {
				t.Fatalf("ceiling %d quarter %d: score = %d, want saturated", ceiling, q, state.Score[q.Team()])
			}
		}
	}
}

func TestReduceFloorLaw(t *testing.T) {
	for _, q := range Quarters() {
		state := State{Score: [2]int{7, 3}, Ceiling: 20}
		for i := 0; i < 20; i++ {
			var err error
			state, err = Reduce(state, DecrementRegular(q))
			if err != nil {
				t.Fatalf("reduce: %v", err)
			}
			if state.Score[q.Team()] < 0 {
				t.Fatalf("quarter %d: score %d below zero", q, state.Score[q.Team()])
			}
		}
		if state.Score[q.Team()] != 0 {
			t.Fatalf("quarter %d: score = %d, want 0", q, state.Score[q.Team()])
		}
	}
}

func TestReduceIdempotentAtBounds(t *testing.T) {
	zero := NewState(20)
	again, err := Reduce(zero, DecrementRegular(3))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if again != zero {
		t.Fatalf("decrement at zero = %v, want %v", again, zero)
	}

	full := State{Score: [2]int{20, 20}, Ceiling: 20}
	again, err = Reduce(full, IncrementRegular(2))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if again != full {
		t.Fatalf("increment at ceiling = %v, want %v", again, full)
	}
}

func TestReduceDecrementRegularUsesPointValue(t *testing.T) {
	state := State{Score: [2]int{12, 12}, Ceiling: 20}

	state, err := ReduceAll(state, DecrementRegular(0), DecrementRegular(2))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.Score != [2]int{7, 11} {
		t.Fatalf("score = %v, want [7 11]", state.Score)
	}
}

func TestReduceIncrementGamePointWithReset(t *testing.T) {
	state := State{Score: [2]int{20, 0}, Ceiling: 20}

	state, err := Reduce(state, IncrementGamePoint(0, true))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.GameScore != [2]int{1, 0} {
		t.Fatalf("game score = %v, want [1 0]", state.GameScore)
	}
	if state.Score != [2]int{0, 0} {
		t.Fatalf("score = %v, want [0 0]", state.Score)
	}
}

func TestReduceIncrementGamePointWithoutReset(t *testing.T) {
	state := State{Score: [2]int{15, 20}, Ceiling: 20}

	state, err := Reduce(state, IncrementGamePoint(2, false))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.GameScore != [2]int{0, 1} {
		t.Fatalf("game score = %v, want [0 1]", state.GameScore)
	}
	if state.Score != [2]int{15, 20} {
		t.Fatalf("score = %v, want [15 20]", state.Score)
	}
}

func TestReduceDecrementGamePointFloorsAtZero(t *testing.T) {
	state := State{GameScore: [2]int{1, 0}, Ceiling: 20}

	state, err := ReduceAll(state, DecrementGamePoint(3), DecrementGamePoint(3), DecrementGamePoint(1))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.GameScore != [2]int{0, 0} {
		t.Fatalf("game score = %v, want [0 0]", state.GameScore)
	}
}

func TestReduceResets(t *testing.T) {
	start := State{Score: [2]int{13, 9}, GameScore: [2]int{2, 3}, Ceiling: 30}

	round, err := Reduce(start, ResetRound())
	if err != nil {
		t.Fatalf("reset round: %v", err)
	}
	if round.Score != [2]int{0, 0} {
		t.Fatalf("score after round reset = %v, want [0 0]", round.Score)
	}
	if round.GameScore != start.GameScore {
		t.Fatalf("game score after round reset = %v, want %v", round.GameScore, start.GameScore)
	}
	if round.Ceiling != 30 {
		t.Fatalf("ceiling after round reset = %d, want 30", round.Ceiling)
	}

	game, err := Reduce(start, ResetGame())
	if err != nil {
		t.Fatalf("reset game: %v", err)
	}
	if game.Score != [2]int{0, 0} || game.GameScore != [2]int{0, 0} {
		t.Fatalf("state after game reset = %v, want zero scores", game)
	}
	if game.Ceiling != 30 {
		t.Fatalf("ceiling after game reset = %d, want 30", game.Ceiling)
	}

	games, err := Reduce(start, ResetGamePoints())
	if err != nil {
		t.Fatalf("reset game points: %v", err)
	}
	if games.GameScore != [2]int{0, 0} {
		t.Fatalf("game score after game point reset = %v, want [0 0]", games.GameScore)
	}
	if games.Score != start.Score {
		t.Fatalf("score after game point reset = %v, want %v", games.Score, start.Score)
	}
}

func TestReduceSetCeilingReclamps(t *testing.T) {
	state := State{Score: [2]int{35, 12}, GameScore: [2]int{1, 1}, Ceiling: 40}

	state, err := Reduce(state, SetCeiling(20))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.Ceiling != 20 {
		t.Fatalf("ceiling = %d, want 20", state.Ceiling)
	}
	if state.Score != [2]int{20, 12} {
		t.Fatalf("score = %v, want [20 12]", state.Score)
	}
	if state.GameScore != [2]int{1, 1} {
		t.Fatalf("game score = %v, want [1 1]", state.GameScore)
	}

	state, err = Reduce(state, SetCeiling(40))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.Score != [2]int{20, 12} {
		t.Fatalf("raising ceiling changed score to %v", state.Score)
	}
}

func TestReduceRejectsInvalidInput(t *testing.T) {
	start := State{Score: [2]int{5, 5}, Ceiling: 20}
	tests := []struct {
		name   string
		action Action
		want   error
	}{
		{name: "quarter too high", action: IncrementRegular(4), want: ErrQuarterOutOfRange},
		{name: "negative quarter", action: DecrementRegular(-1), want: ErrQuarterOutOfRange},
		{name: "game point quarter", action: IncrementGamePoint(7, true), want: ErrQuarterOutOfRange},
		{name: "zero ceiling", action: SetCeiling(0), want: ErrCeilingInvalid},
		{name: "negative ceiling", action: SetCeiling(-10), want: ErrCeilingInvalid},
		{name: "unknown action", action: Action{Type: "score.double"}, want: ErrActionUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(start, tt.action)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if got != start {
				t.Fatalf("state = %v, want unchanged %v", got, start)
			}
		})
	}
}

func TestReduceDoesNotAutoAwardGamePoint(t *testing.T) {
	state := State{Score: [2]int{15, 0}, Ceiling: 20}

	state, err := Reduce(state, IncrementRegular(0))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if state.GameScore != [2]int{0, 0} {
		t.Fatalf("game score = %v, want [0 0]", state.GameScore)
	}
	if !state.RoundComplete(TeamA) {
		t.Fatal("expected team A round complete")
	}
	winner, ok := state.RoundWinner()
	if !ok || winner != TeamA {
		t.Fatalf("round winner = %d, %v, want team A", winner, ok)
	}
}

func TestReduceAllStopsAtFirstError(t *testing.T) {
	state, err := ReduceAll(NewState(20), IncrementRegular(0), IncrementRegular(9), IncrementRegular(0))
	if !errors.Is(err, ErrQuarterOutOfRange) {
		t.Fatalf("error = %v, want ErrQuarterOutOfRange", err)
	}
	if state.Score != [2]int{5, 0} {
		t.Fatalf("score = %v, want [5 0]", state.Score)
	}
}
