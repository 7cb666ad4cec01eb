//go:build !windows

package screen

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// VirtualBounds returns the bounding rectangle of all active displays.
func VirtualBounds() Rect {
	var r Rect
	for i, m := range displays() {
		if i == 0 {
			r = m
			continue
		}
		r.Left = min(r.Left, m.Left)
		r.Top = min(r.Top, m.Top)
		r.Right = max(r.Right, m.Right)
		r.Bottom = max(r.Bottom, m.Bottom)
	}
	return r
}

// Monitors returns all active displays sorted by ascending left edge.
// Scale factors are not available here and are reported as 1.0.
func Monitors() ([]Monitor, error) {
	var monitors []Monitor
	for i, b := range displays() {
		mon, err := NewMonitor(b, 1.0, fmt.Sprintf("display%d", i))
		if err != nil {
			return nil, fmt.Errorf("display %d %s: %w", i, b, err)
		}
		mon.Primary = i == 0
		monitors = append(monitors, mon)
	}
	SortByLeft(monitors)
	return monitors, nil
}

func displays() []Rect {
	n := screenshot.NumActiveDisplays()
	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		out = append(out, Rect{
			Left:   int32(b.Min.X),
			Top:    int32(b.Min.Y),
			Right:  int32(b.Max.X),
			Bottom: int32(b.Max.Y),
		})
	}
	return out
}
