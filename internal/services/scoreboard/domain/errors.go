package domain

import (
	"fmt"
	"strconv"

	platformerrors "github.com/louisbranch/tantoak/internal/platform/errors"
)

var (
	// ErrQuarterOutOfRange matches any quarter index outside 0..3.
	ErrQuarterOutOfRange = platformerrors.New(platformerrors.CodeQuarterOutOfRange, "quarter out of range")
	// ErrCeilingInvalid matches any non-positive ceiling.
	ErrCeilingInvalid = platformerrors.New(platformerrors.CodeCeilingInvalid, "ceiling must be positive")
	// ErrActionUnsupported matches actions the reducer does not know.
	ErrActionUnsupported = platformerrors.New(platformerrors.CodeActionUnsupported, "action not supported")
)

func quarterOutOfRangeError(q Quarter) error {
	return platformerrors.WithMetadata(
		platformerrors.CodeQuarterOutOfRange,
		fmt.Sprintf("quarter %d out of range 0..%d", int(q), QuarterCount-1),
		map[string]string{"Quarter": strconv.Itoa(int(q))},
	)
}

func ceilingInvalidError(value int) error {
	return platformerrors.WithMetadata(
		platformerrors.CodeCeilingInvalid,
		fmt.Sprintf("ceiling %d must be positive", value),
		map[string]string{"Ceiling": strconv.Itoa(value)},
	)
}

func actionUnsupportedError(t ActionType) error {
	return platformerrors.WithMetadata(
		platformerrors.CodeActionUnsupported,
		fmt.Sprintf("action %q not supported", string(t)),
		map[string]string{"Action": string(t)},
	)
}
