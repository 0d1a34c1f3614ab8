package engine

import platformerrors "github.com/louisbranch/tantoak/internal/platform/errors"

var (
	// ErrNotLoaded is returned by Dispatch before Load has completed.
	ErrNotLoaded = platformerrors.New(platformerrors.CodeEngineNotLoaded, "engine not loaded")
	// ErrAlreadyLoaded is returned by a second Load call.
	ErrAlreadyLoaded = platformerrors.New(platformerrors.CodeEngineAlreadyLoaded, "engine already loaded")
	// ErrClosed is returned once Close has been called.
	ErrClosed = platformerrors.New(platformerrors.CodeEngineClosed, "engine closed")
)
