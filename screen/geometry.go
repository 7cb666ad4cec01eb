package screen

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidScale implies a scale factor that is zero, negative or not finite.
	ErrInvalidScale = errors.New("scale must be a positive finite number")

	// ErrEmptyBounds implies a monitor rectangle with no area.
	ErrEmptyBounds = errors.New("monitor bounds are empty")
)

// NewMonitor builds a Monitor from its physical bounds and scale factor,
// deriving the DIP top edge and height.
func NewMonitor(bounds Rect, scale float64, name string) (Monitor, error) {
	m := Monitor{Bounds: bounds, WorkArea: bounds, DeviceName: name}
	return m.WithScale(scale)
}

// WithScale returns a copy of m using the given scale. DipTop and DipHeight
// are recomputed from the unchanged physical bounds.
func (m Monitor) WithScale(scale float64) (Monitor, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Monitor{}, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	if m.Bounds.Height() <= 0 || m.Bounds.Width() <= 0 {
		return Monitor{}, fmt.Errorf("%w: %s", ErrEmptyBounds, m.Bounds)
	}
	m.Scale = scale
	m.DipTop = float64(m.Bounds.Top) / scale
	m.DipHeight = float64(m.Bounds.Height()) / scale
	return m, nil
}

// ScaleFromDPI converts an effective DPI value to a scale factor.
// A zero DPI maps to 1.0.
func ScaleFromDPI(dpi uint32) float64 {
	if dpi == 0 {
		return 1.0
	}
	return float64(dpi) / 96.0
}

// SortByLeft orders monitors by ascending physical left edge. Monitors
// sharing a left edge keep their enumeration order.
func SortByLeft(monitors []Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		return monitors[i].Bounds.Left < monitors[j].Bounds.Left
	})
}
