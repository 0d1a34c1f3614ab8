// Package errors provides structured domain errors with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Quarter and action errors
	CodeQuarterOutOfRange Code = "QUARTER_OUT_OF_RANGE"
	CodeCeilingInvalid    Code = "CEILING_INVALID"
	CodeActionUnsupported Code = "ACTION_UNSUPPORTED"

	// Input classification errors
	CodeGestureInvalid Code = "GESTURE_INVALID"
	CodeTargetInvalid  Code = "TARGET_INVALID"

	// Storage errors
	CodeNotFound        Code = "NOT_FOUND"
	CodeSnapshotCorrupt Code = "SNAPSHOT_CORRUPT"

	// Engine lifecycle errors
	CodeEngineNotLoaded     Code = "ENGINE_NOT_LOADED"
	CodeEngineAlreadyLoaded Code = "ENGINE_ALREADY_LOADED"
	CodeEngineClosed        Code = "ENGINE_CLOSED"
)

// IsInvalidArgument reports whether the code describes caller input that can
// never succeed as given.
func (c Code) IsInvalidArgument() bool {
	switch c {
	case CodeQuarterOutOfRange,
		CodeCeilingInvalid,
		CodeActionUnsupported,
		CodeGestureInvalid,
		CodeTargetInvalid:
		return true
	default:
		return false
	}
}
