package mcp

import (
	"context"
	"fmt"
	"slices"
	"strings"

	platformerrors "github.com/louisbranch/tantoak/internal/platform/errors"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/input"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/view"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// StateResult is the scoreboard state returned by every tool.
type StateResult struct {
	Score          []int  `json:"score" jsonschema:"round points for team A and team B"`
	GameScore      []int  `json:"game_score" jsonschema:"game points for team A and team B"`
	Ceiling        int    `json:"ceiling" jsonschema:"round score ceiling"`
	CeilingOptions []int  `json:"ceiling_options" jsonschema:"ceilings offered by the settings menu"`
	Markers        []int  `json:"markers" jsonschema:"chickpea markers shown on quarters 0 to 3"`
	RoundComplete  []bool `json:"round_complete" jsonschema:"whether team A and team B reached the ceiling"`
	Summary        string `json:"summary" jsonschema:"localized one-line summary"`
}

// ActionResult reports a state-changing tool call.
type ActionResult struct {
	Action  string      `json:"action,omitempty" jsonschema:"action applied, empty when the gesture was ignored"`
	Ignored bool        `json:"ignored,omitempty" jsonschema:"true when the gesture has no meaning, such as a horizontal swipe"`
	Notice  string      `json:"notice,omitempty" jsonschema:"localized confirmation for resets"`
	State   StateResult `json:"state" jsonschema:"scoreboard state after the call"`
}

// StateInput is the (empty) input of scoreboard_state.
type StateInput struct{}

// GestureInput is a gesture on one quarter of the playmat.
type GestureInput struct {
	Quarter   int    `json:"quarter" jsonschema:"quarter index 0 to 3; 0 and 1 are on the near side"`
	Gesture   string `json:"gesture" jsonschema:"tap, swipe_up, swipe_down, swipe_left or swipe_right"`
	GamePoint bool   `json:"game_point,omitempty" jsonschema:"swipe changes the game point counter instead of round points"`
}

// ResetInput selects what to reset.
type ResetInput struct {
	Scope string `json:"scope" jsonschema:"round clears round points, games clears game points, game clears both"`
}

// SetCeilingInput changes the round ceiling.
type SetCeilingInput struct {
	Ceiling int `json:"ceiling" jsonschema:"new round ceiling, any positive value; the menu offers ceiling_options"`
}

// StateTool defines the MCP tool schema for reading the scoreboard.
func StateTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "scoreboard_state",
		Description: "Returns the current scoreboard: round points, game points, ceiling and markers per quarter.",
	}
}

// GestureTool defines the MCP tool schema for a playmat gesture.
func GestureTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "scoreboard_gesture",
		Description: "Applies a tap or swipe on a quarter. Near-side quarters invert vertical swipes.",
	}
}

// ResetTool defines the MCP tool schema for resets.
func ResetTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "scoreboard_reset",
		Description: "Resets round points (scope=round), game points (scope=games) or both (scope=game).",
	}
}

// SetCeilingTool defines the MCP tool schema for changing the ceiling.
func SetCeilingTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "scoreboard_set_ceiling",
		Description: "Sets the round ceiling and clamps current round points to it.",
	}
}

func (s *Server) stateHandler() mcpsdk.ToolHandlerFor[StateInput, StateResult] {
	return func(_ context.Context, _ *mcpsdk.CallToolRequest, _ StateInput) (*mcpsdk.CallToolResult, StateResult, error) {
		return nil, s.stateResult(s.engine.State()), nil
	}
}

func (s *Server) gestureHandler() mcpsdk.ToolHandlerFor[GestureInput, ActionResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, in GestureInput) (*mcpsdk.CallToolResult, ActionResult, error) {
		gesture, err := input.ParseGesture(in.Gesture)
		if err != nil {
			return nil, ActionResult{}, toolError("parse gesture", err)
		}
		target := input.TargetRegular
		if in.GamePoint {
			target = input.TargetGamePoint
		}
		action, ok, err := input.Classify(domain.Quarter(in.Quarter), gesture, target, s.opts.ResetRoundOnGamePoint)
		if err != nil {
			return nil, ActionResult{}, toolError("classify gesture", err)
		}
		if !ok {
			return nil, ActionResult{Ignored: true, State: s.stateResult(s.engine.State())}, nil
		}
		return s.dispatch(ctx, action)
	}
}

func (s *Server) resetHandler() mcpsdk.ToolHandlerFor[ResetInput, ActionResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, in ResetInput) (*mcpsdk.CallToolResult, ActionResult, error) {
		var (
			action      domain.Action
			round, game bool
		)
		switch strings.ToLower(strings.TrimSpace(in.Scope)) {
		case "round":
			action, round = domain.ResetRound(), true
		case "games":
			action, game = domain.ResetGamePoints(), true
		case "game":
			action, round, game = domain.ResetGame(), true, true
		default:
			return nil, ActionResult{}, fmt.Errorf("reset scope %q is not supported (want round, games or game)", in.Scope)
		}
		result, out, err := s.dispatch(ctx, action)
		if err != nil {
			return result, out, err
		}
		out.Notice = view.ResetNotice(s.opts.Printer, round, game)
		return result, out, nil
	}
}

func (s *Server) setCeilingHandler() mcpsdk.ToolHandlerFor[SetCeilingInput, ActionResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, in SetCeilingInput) (*mcpsdk.CallToolResult, ActionResult, error) {
		return s.dispatch(ctx, domain.SetCeiling(in.Ceiling))
	}
}

func (s *Server) dispatch(ctx context.Context, action domain.Action) (*mcpsdk.CallToolResult, ActionResult, error) {
	state, err := s.engine.Dispatch(ctx, action)
	if err != nil {
		return nil, ActionResult{}, toolError(string(action.Type), err)
	}
	return nil, ActionResult{Action: action.String(), State: s.stateResult(state)}, nil
}

func (s *Server) stateResult(state domain.State) StateResult {
	board := view.Build(state)
	result := StateResult{
		Score:          []int{state.Score[domain.TeamA], state.Score[domain.TeamB]},
		GameScore:      []int{state.GameScore[domain.TeamA], state.GameScore[domain.TeamB]},
		Ceiling:        state.Ceiling,
		CeilingOptions: slices.Clone(domain.CeilingOptions),
		Markers:        make([]int, 0, domain.QuarterCount),
		RoundComplete:  make([]bool, 0, domain.TeamCount),
		Summary:        view.Summary(s.opts.Printer, state),
	}
	for _, q := range board.Quarters {
		result.Markers = append(result.Markers, q.Markers)
	}
	for _, team := range board.Teams {
		result.RoundComplete = append(result.RoundComplete, team.RoundComplete)
	}
	return result
}

// toolError prefixes err with the platform error code so clients can match
// on it. Caller mistakes are marked so they are not retried unchanged.
func toolError(op string, err error) error {
	code := platformerrors.CodeOf(err)
	if code.IsInvalidArgument() {
		return fmt.Errorf("%s: invalid argument [%s]: %w", op, code, err)
	}
	return fmt.Errorf("%s [%s]: %w", op, code, err)
}
