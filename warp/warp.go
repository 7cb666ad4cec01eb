// Package warp computes where the pointer must land on the destination
// monitor so that its vertical placement, measured in device-independent
// pixels, matches the placement it had on the source monitor.
package warp

import (
	"fmt"
	"math"
	"strings"

	"github.com/rpdg/dipalign/screen"
)

// EdgeInset is how far inside the destination monitor the pointer is placed,
// so the relocated position never sits on the boundary itself.
const EdgeInset = 2

// Mode selects the vertical anchor shared by both monitors.
type Mode int

const (
	// Top keeps the same relative offset from each monitor's DIP top edge.
	Top Mode = iota
	// Center keeps the same relative offset from each monitor's DIP center.
	Center
)

func (m Mode) String() string {
	switch m {
	case Top:
		return "top"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "top" or "center", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "center":
		return Center, nil
	default:
		return Top, fmt.Errorf("invalid mode %q: use top|center", s)
	}
}

// Set and Type let Mode be used directly as a pflag value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *Mode) Type() string { return "mode" }

// Direction is the side the pointer crossed from.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == LeftToRight {
		return "L->R"
	}
	return "R->L"
}

// Result is the outcome of Compute, intermediate DIP values included.
type Result struct {
	Target     screen.Point
	SrcYDip    float64
	Rel        float64 // Top: offset in [0,1]; Center: offset from center, unclamped
	TargetYDip float64
}

// Target returns the physical position the pointer should be moved to after
// crossing the pair's boundary in direction dir. srcY is the physical Y of
// the last position observed before the crossing.
func Target(pair screen.Pair, mode Mode, dir Direction, srcY int32) screen.Point {
	return Compute(pair, mode, dir, srcY).Target
}

// Compute is Target with the intermediate values, for diagnostics.
func Compute(pair screen.Pair, mode Mode, dir Direction, srcY int32) Result {
	from, to := pair.Left, pair.Right
	if dir == RightToLeft {
		from, to = pair.Right, pair.Left
	}

	res := Result{SrcYDip: float64(srcY) / from.Scale}

	switch mode {
	case Center:
		res.Rel = (res.SrcYDip - from.DipCenter()) / from.DipHeight
		res.TargetYDip = to.DipCenter() + res.Rel*to.DipHeight
	default:
		res.Rel = clamp((res.SrcYDip-from.DipTop)/from.DipHeight, 0, 1)
		res.TargetYDip = to.DipTop + res.Rel*to.DipHeight
	}

	y := clampPhysical(math.Round(res.TargetYDip*to.Scale), to.Bounds.Top, to.Bounds.Bottom-1)

	x := to.Bounds.Left + EdgeInset
	if dir == RightToLeft {
		x = to.Bounds.Right - EdgeInset
	}

	res.Target = screen.Point{X: x, Y: y}
	return res
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampPhysical(v float64, lo, hi int32) int32 {
	if math.IsNaN(v) || v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int32(v)
}
