package domain

// Reduce returns the state that results from applying action to state.
//
// Score changes saturate at the ceiling and floor at zero without error.
// A quarter outside 0..3, a non-positive ceiling, or an unknown action type is
// rejected: state is returned unchanged together with the error.
// Reaching the ceiling never awards a game point by itself; callers check
// State.RoundComplete and dispatch IncrementGamePoint explicitly.
func Reduce(state State, action Action) (State, error) {
	if action.UsesQuarter() {
		if err := action.Quarter.Validate(); err != nil {
			return state, err
		}
	}

	next := state
	switch action.Type {
	case ActionIncrementRegular:
		team := action.Quarter.Team()
		next.Score[team] = min(state.Score[team]+action.Quarter.PointValue(), state.Ceiling)
	case ActionDecrementRegular:
		team := action.Quarter.Team()
		next.Score[team] = max(state.Score[team]-action.Quarter.PointValue(), 0)
	case ActionIncrementGamePoint:
		team := action.Quarter.Team()
		next.GameScore[team] = state.GameScore[team] + 1
		if action.ResetRound {
			next.Score = [TeamCount]int{}
		}
	case ActionDecrementGamePoint:
		team := action.Quarter.Team()
		next.GameScore[team] = max(state.GameScore[team]-1, 0)
	case ActionResetRound:
		next.Score = [TeamCount]int{}
	case ActionResetGamePoints:
		next.GameScore = [TeamCount]int{}
	case ActionResetGame:
		next.Score = [TeamCount]int{}
		next.GameScore = [TeamCount]int{}
	case ActionSetCeiling:
		if action.Ceiling <= 0 {
			return state, ceilingInvalidError(action.Ceiling)
		}
		next.Ceiling = action.Ceiling
		for i := range next.Score {
			next.Score[i] = min(next.Score[i], action.Ceiling)
		}
	default:
		return state, actionUnsupportedError(action.Type)
	}
	return next, nil
}

// ReduceAll folds actions over state, stopping at the first rejected action.
// The returned state reflects every action applied before the failure.
func ReduceAll(state State, actions ...Action) (State, error) {
	for _, action := range actions {
		next, err := Reduce(state, action)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}
