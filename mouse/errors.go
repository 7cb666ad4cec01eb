package mouse

import "errors"

var (
	// ErrUnsupportedPlatform implies the pointer cannot be observed or moved on this OS.
	ErrUnsupportedPlatform = errors.New("pointer hooks are only supported on windows")

	// ErrHookInstalled implies a second low-level mouse hook was requested.
	ErrHookInstalled = errors.New("mouse hook already installed")
)
