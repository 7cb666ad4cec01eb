package screen

import "fmt"

// Point represents a point in the Virtual Desktop coordinate system.
// Coordinates can be negative (e.g., secondary monitor to the left of primary).
type Point struct {
	X int32
	Y int32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents a rectangle in the Virtual Desktop coordinate system.
// Right and Bottom are exclusive.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d - %d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

// Monitor represents a physical display device together with its scale
// factor and the derived position in device-independent pixels (DIP).
//
// Construct it with NewMonitor so that DipTop and DipHeight stay consistent
// with Bounds and Scale.
type Monitor struct {
	Handle     uintptr
	Bounds     Rect // physical pixels
	WorkArea   Rect // Excludes taskbar
	Primary    bool
	DeviceName string

	Scale     float64 // DPI / 96
	DipTop    float64 // Bounds.Top / Scale
	DipHeight float64 // Bounds.Height() / Scale
}

// DipCenter is the vertical center of the monitor in DIP space.
func (m Monitor) DipCenter() float64 {
	return m.DipTop + m.DipHeight*0.5
}

func (m Monitor) String() string {
	name := m.DeviceName
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s phys=%s scale=%.3f dipTop=%.1f dipH=%.1f",
		name, m.Bounds, m.Scale, m.DipTop, m.DipHeight)
}
