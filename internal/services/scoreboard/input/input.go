// Package input turns playmat gestures into scoreboard actions.
//
// The near half of the device (quarters 0 and 1) is drawn upside down for the
// players sitting across the table, so vertical swipes there are inverted:
// a swipe toward the player always means "increase".
package input

import (
	"fmt"
	"strings"

	platformerrors "github.com/louisbranch/tantoak/internal/platform/errors"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
)

// Gesture is a raw touch classification from the gesture layer.
type Gesture string

const (
	GestureTap        Gesture = "tap"
	GestureSwipeUp    Gesture = "swipe_up"
	GestureSwipeDown  Gesture = "swipe_down"
	GestureSwipeLeft  Gesture = "swipe_left"
	GestureSwipeRight Gesture = "swipe_right"
)

// Target selects which counter a gesture changes.
type Target string

const (
	TargetRegular   Target = "regular"
	TargetGamePoint Target = "game_point"
)

// Direction is the logical effect of a gesture.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionIncrease
	DirectionDecrease
)

var (
	// ErrGestureInvalid matches unknown gesture names.
	ErrGestureInvalid = platformerrors.New(platformerrors.CodeGestureInvalid, "gesture invalid")
	// ErrTargetInvalid matches unknown target names.
	ErrTargetInvalid = platformerrors.New(platformerrors.CodeTargetInvalid, "target invalid")
)

// ParseGesture parses a gesture name such as "swipe_up". Hyphens and case
// are accepted.
func ParseGesture(value string) (Gesture, error) {
	normalized := Gesture(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_"))
	switch normalized {
	case GestureTap, GestureSwipeUp, GestureSwipeDown, GestureSwipeLeft, GestureSwipeRight:
		return normalized, nil
	default:
		return "", platformerrors.WithMetadata(
			platformerrors.CodeGestureInvalid,
			fmt.Sprintf("gesture %q invalid", value),
			map[string]string{"Gesture": value},
		)
	}
}

// ParseTarget parses "regular" or "game_point". An empty value is regular.
func ParseTarget(value string) (Target, error) {
	normalized := Target(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_"))
	switch normalized {
	case "", TargetRegular:
		return TargetRegular, nil
	case TargetGamePoint:
		return TargetGamePoint, nil
	default:
		return "", platformerrors.WithMetadata(
			platformerrors.CodeTargetInvalid,
			fmt.Sprintf("target %q invalid", value),
			map[string]string{"Target": value},
		)
	}
}

// DirectionOf returns what gesture g means on quarter q.
func DirectionOf(q domain.Quarter, g Gesture) (Direction, error) {
	if err := q.Validate(); err != nil {
		return DirectionNone, err
	}
	switch g {
	case GestureTap:
		return DirectionIncrease, nil
	case GestureSwipeLeft, GestureSwipeRight:
		return DirectionNone, nil
	case GestureSwipeUp, GestureSwipeDown:
		up := g == GestureSwipeUp
		if q.IsNearSide() {
			up = !up
		}
		if up {
			return DirectionIncrease, nil
		}
		return DirectionDecrease, nil
	default:
		return DirectionNone, fmt.Errorf("%w: %q", ErrGestureInvalid, string(g))
	}
}

// Classify maps a gesture on quarter q to an action. It returns ok=false for
// gestures that mean nothing, such as horizontal swipes. Taps always increase
// the regular score regardless of target. resetRound is forwarded to
// IncrementGamePoint.
func Classify(q domain.Quarter, g Gesture, target Target, resetRound bool) (action domain.Action, ok bool, err error) {
	direction, err := DirectionOf(q, g)
	if err != nil {
		return domain.Action{}, false, err
	}
	if direction == DirectionNone {
		return domain.Action{}, false, nil
	}
	if g == GestureTap {
		target = TargetRegular
	}

	switch target {
	case TargetRegular, "":
		if direction == DirectionIncrease {
			return domain.IncrementRegular(q), true, nil
		}
		return domain.DecrementRegular(q), true, nil
	case TargetGamePoint:
		if direction == DirectionIncrease {
			return domain.IncrementGamePoint(q, resetRound), true, nil
		}
		return domain.DecrementGamePoint(q), true, nil
	default:
		return domain.Action{}, false, fmt.Errorf("%w: %q", ErrTargetInvalid, string(target))
	}
}
