package screen

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientMonitors implies fewer than two active displays.
	ErrInsufficientMonitors = errors.New("at least two monitors are required")

	// ErrInvalidIndex implies a left/right selection that is out of range or identical.
	ErrInvalidIndex = errors.New("invalid monitor index")
)

// Unset marks a monitor index that was not chosen explicitly.
const Unset = -1

// SelectOptions controls which two monitors take part in alignment.
// Indices refer to the slice passed to SelectPair; a scale of 0 keeps
// the monitor-reported value.
type SelectOptions struct {
	LeftIndex  int
	RightIndex int
	LeftScale  float64
	RightScale float64
}

// DefaultSelectOptions picks the first two monitors with their reported scale.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{LeftIndex: Unset, RightIndex: Unset}
}

// Pair is the two monitors whose shared vertical edge is watched.
// Left.Bounds.Left <= Right.Bounds.Left always holds.
type Pair struct {
	Left      Monitor
	Right     Monitor
	BoundaryX int32 // Right.Bounds.Left

	// LeftIndex and RightIndex locate the two monitors in the slice
	// passed to SelectPair.
	LeftIndex  int
	RightIndex int
}

func (p Pair) String() string {
	return fmt.Sprintf("left={%s} right={%s} boundaryX=%d", p.Left, p.Right, p.BoundaryX)
}

// SelectPair chooses the left and right monitor out of monitors.
//
// The two selected monitors are reordered by physical left edge, so the
// indices do not need to be adjacent or ordered. Scale overrides are applied
// to the monitor that ends up on each side.
func SelectPair(monitors []Monitor, opts SelectOptions) (Pair, error) {
	if len(monitors) < 2 {
		return Pair{}, fmt.Errorf("%w: found %d", ErrInsufficientMonitors, len(monitors))
	}

	li, err := resolveIndex(opts.LeftIndex, 0, len(monitors))
	if err != nil {
		return Pair{}, fmt.Errorf("left: %w", err)
	}
	ri, err := resolveIndex(opts.RightIndex, 1, len(monitors))
	if err != nil {
		return Pair{}, fmt.Errorf("right: %w", err)
	}
	if li == ri {
		return Pair{}, fmt.Errorf("%w: left and right both select monitor %d", ErrInvalidIndex, li)
	}

	if monitors[li].Bounds.Left > monitors[ri].Bounds.Left {
		li, ri = ri, li
	}
	left, right := monitors[li], monitors[ri]

	// Any non-zero override goes through WithScale, which rejects
	// negative, NaN and infinite values.
	if opts.LeftScale != 0 {
		if left, err = left.WithScale(opts.LeftScale); err != nil {
			return Pair{}, fmt.Errorf("left: %w", err)
		}
	}
	if opts.RightScale != 0 {
		if right, err = right.WithScale(opts.RightScale); err != nil {
			return Pair{}, fmt.Errorf("right: %w", err)
		}
	}

	return Pair{
		Left:       left,
		Right:      right,
		BoundaryX:  right.Bounds.Left,
		LeftIndex:  li,
		RightIndex: ri,
	}, nil
}

// MonitorAt returns the monitor of the pair whose bounds contain pt.
func (p Pair) MonitorAt(pt Point) (Monitor, bool) {
	switch {
	case p.Left.Bounds.Contains(pt):
		return p.Left, true
	case p.Right.Bounds.Contains(pt):
		return p.Right, true
	}
	return Monitor{}, false
}

func resolveIndex(idx, def, n int) (int, error) {
	if idx == Unset {
		return def, nil
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: %d (have %d monitors)", ErrInvalidIndex, idx, n)
	}
	return idx, nil
}
