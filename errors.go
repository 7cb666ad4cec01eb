package dipalign

import (
	"errors"

	"github.com/rpdg/dipalign/mouse"
	"github.com/rpdg/dipalign/screen"
)

var (
	// ErrInsufficientMonitors implies fewer than two active displays.
	ErrInsufficientMonitors = screen.ErrInsufficientMonitors

	// ErrInvalidIndex implies a left/right selection that is out of range or identical.
	ErrInvalidIndex = screen.ErrInvalidIndex

	// ErrInvalidScale implies a scale override that is not a positive number.
	ErrInvalidScale = screen.ErrInvalidScale

	// ErrUnsupportedPlatform implies the hook cannot run on this OS.
	ErrUnsupportedPlatform = mouse.ErrUnsupportedPlatform

	// ErrHookFailed implies the low-level mouse hook could not be installed.
	ErrHookFailed = errors.New("failed to install mouse hook")
)
