package domain

import "fmt"

// ActionType names a scoreboard transition.
type ActionType string

const (
	ActionIncrementRegular   ActionType = "score.increment"
	ActionDecrementRegular   ActionType = "score.decrement"
	ActionIncrementGamePoint ActionType = "game_point.increment"
	ActionDecrementGamePoint ActionType = "game_point.decrement"
	ActionResetRound         ActionType = "round.reset"
	ActionResetGame          ActionType = "game.reset"
	ActionResetGamePoints    ActionType = "game_points.reset"
	ActionSetCeiling         ActionType = "ceiling.set"
)

// Action is one requested transition. Only the fields relevant to Type are read.
type Action struct {
	Type    ActionType
	Quarter Quarter
	Ceiling int
	// ResetRound clears both round scores when a game point is awarded.
	ResetRound bool
}

// IncrementRegular adds the quarter's point value to its team.
func IncrementRegular(q Quarter) Action {
	return Action{Type: ActionIncrementRegular, Quarter: q}
}

// DecrementRegular removes the quarter's point value from its team.
func DecrementRegular(q Quarter) Action {
	return Action{Type: ActionDecrementRegular, Quarter: q}
}

// IncrementGamePoint awards a completed round to the quarter's team.
func IncrementGamePoint(q Quarter, resetRound bool) Action {
	return Action{Type: ActionIncrementGamePoint, Quarter: q, ResetRound: resetRound}
}

// DecrementGamePoint takes back a completed round from the quarter's team.
func DecrementGamePoint(q Quarter) Action {
	return Action{Type: ActionDecrementGamePoint, Quarter: q}
}

// ResetRound clears round scores only.
func ResetRound() Action {
	return Action{Type: ActionResetRound}
}

// ResetGame clears round scores and game points.
func ResetGame() Action {
	return Action{Type: ActionResetGame}
}

// ResetGamePoints clears game points only.
func ResetGamePoints() Action {
	return Action{Type: ActionResetGamePoints}
}

// SetCeiling changes the round ceiling.
func SetCeiling(value int) Action {
	return Action{Type: ActionSetCeiling, Ceiling: value}
}

// UsesQuarter reports whether the action targets a quarter.
func (a Action) UsesQuarter() bool {
	switch a.Type {
	case ActionIncrementRegular, ActionDecrementRegular, ActionIncrementGamePoint, ActionDecrementGamePoint:
		return true
	default:
		return false
	}
}

// String renders the action for logs.
func (a Action) String() string {
	switch {
	case a.Type == ActionIncrementGamePoint:
		return fmt.Sprintf("%s(q=%d reset_round=%t)", a.Type, a.Quarter, a.ResetRound)
	case a.UsesQuarter():
		return fmt.Sprintf("%s(q=%d)", a.Type, a.Quarter)
	case a.Type == ActionSetCeiling:
		return fmt.Sprintf("%s(%d)", a.Type, a.Ceiling)
	default:
		return string(a.Type)
	}
}
