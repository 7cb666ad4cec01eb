package warp

import (
	"testing"

	"github.com/rpdg/dipalign/screen"
)

func monitor(t *testing.T, left, top, right, bottom int32, scale float64) screen.Monitor {
	t.Helper()
	m, err := screen.NewMonitor(screen.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, scale, "")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func pairOf(t *testing.T, left, right screen.Monitor) screen.Pair {
	t.Helper()
	p, err := screen.SelectPair([]screen.Monitor{left, right}, screen.DefaultSelectOptions())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// hiDPI (scale 2, 500 DIP tall) on the left of a 800px scale 1 monitor.
func hiLoPair(t *testing.T) screen.Pair {
	return pairOf(t,
		monitor(t, 0, 0, 2000, 1000, 2.0),
		monitor(t, 2000, 0, 3000, 800, 1.0),
	)
}

func TestTargetWorkedExamples(t *testing.T) {
	pair := hiLoPair(t)
	for _, mode := range []Mode{Top, Center} {
		res := Compute(pair, mode, LeftToRight, 500)
		if res.SrcYDip != 250 {
			t.Errorf("%s: SrcYDip = %v, want 250", mode, res.SrcYDip)
		}
		if res.TargetYDip != 400 {
			t.Errorf("%s: TargetYDip = %v, want 400", mode, res.TargetYDip)
		}
		if want := (screen.Point{X: 2002, Y: 400}); res.Target != want {
			t.Errorf("%s: Target = %v, want %v", mode, res.Target, want)
		}
	}
}

func TestTargetRightToLeft(t *testing.T) {
	pair := hiLoPair(t)

	got := Target(pair, Top, RightToLeft, 400)
	if want := (screen.Point{X: 1998, Y: 500}); got != want {
		t.Errorf("Top: %v, want %v", got, want)
	}

	// 799 is (799-400)/800 below the right center; mapped onto the left
	// monitor that is 998.75px and then the last row.
	got = Target(pair, Center, RightToLeft, 799)
	if want := (screen.Point{X: 1998, Y: 999}); got != want {
		t.Errorf("Center: %v, want %v", got, want)
	}
}

func TestTargetClampsToDestination(t *testing.T) {
	pair := pairOf(t,
		monitor(t, 0, 0, 1920, 1000, 1.0),
		monitor(t, 1920, 600, 2920, 1100, 1.0),
	)

	tests := []struct {
		name string
		mode Mode
		srcY int32
		want int32
	}{
		{"top above source", Top, -200, 600},
		{"top below source", Top, 1500, 1099},
		{"top last row", Top, 999, 1100 - 1},
		// relCenter = -0.7 is kept, the physical result is clamped.
		{"center above source", Center, -200, 600},
		{"center first row", Center, 0, 600},
		{"center mid", Center, 500, 850},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Target(pair, tt.mode, LeftToRight, tt.srcY)
			if got.Y != tt.want {
				t.Errorf("Y = %d, want %d", got.Y, tt.want)
			}
			if got.X != 1922 {
				t.Errorf("X = %d, want 1922", got.X)
			}
		})
	}
}

func TestCenterRelativeOffsetIsNotClamped(t *testing.T) {
	pair := pairOf(t,
		monitor(t, 0, 0, 1920, 1000, 1.0),
		monitor(t, 1920, 0, 3840, 3000, 1.0),
	)
	res := Compute(pair, Center, LeftToRight, -200)
	if res.Rel != -0.7 {
		t.Errorf("Rel = %v, want -0.7", res.Rel)
	}
	// 1500 - 0.7*3000 = -600, clamped to the top row.
	if res.Target.Y != 0 {
		t.Errorf("Y = %d, want 0", res.Target.Y)
	}
}

func TestTargetNonZeroDipTop(t *testing.T) {
	pair := pairOf(t,
		monitor(t, 0, 0, 1920, 1080, 1.0),
		monitor(t, 1920, -540, 5760, 1620, 2.0),
	)
	for _, mode := range []Mode{Top, Center} {
		if got := Target(pair, mode, LeftToRight, 540); got.Y != 540 {
			t.Errorf("%s: Y = %d, want 540", mode, got.Y)
		}
	}
	if got := Target(pair, Top, LeftToRight, 0); got.Y != -540 {
		t.Errorf("top edge: Y = %d, want -540", got.Y)
	}
	if got := Target(pair, Top, RightToLeft, -540); got != (screen.Point{X: 1918, Y: 0}) {
		t.Errorf("back: %v", got)
	}
}

func TestTopModeStaysInsideDestination(t *testing.T) {
	scales := []float64{1.0, 1.25, 1.5, 1.75, 2.0, 3.0}
	for _, ls := range scales {
		for _, rs := range scales {
			pair := pairOf(t,
				monitor(t, -1920, -300, 0, 1140, ls),
				monitor(t, 0, 0, 3840, 2160, rs),
			)
			for _, dir := range []Direction{LeftToRight, RightToLeft} {
				from, to := pair.Left, pair.Right
				if dir == RightToLeft {
					from, to = to, from
				}
				for y := from.Bounds.Top; y < from.Bounds.Bottom; y += 7 {
					res := Compute(pair, Top, dir, y)
					if res.TargetYDip < to.DipTop || res.TargetYDip > to.DipTop+to.DipHeight {
						t.Fatalf("scales %v/%v %s y=%d: dip %v outside [%v,%v]",
							ls, rs, dir, y, res.TargetYDip, to.DipTop, to.DipTop+to.DipHeight)
					}
					if res.Target.Y < to.Bounds.Top || res.Target.Y >= to.Bounds.Bottom {
						t.Fatalf("scales %v/%v %s y=%d: physical %d outside %s",
							ls, rs, dir, y, res.Target.Y, to.Bounds)
					}
				}
			}
		}
	}
}

func TestTopRoundTrip(t *testing.T) {
	pair := pairOf(t,
		monitor(t, 0, 0, 1920, 1080, 1.0),
		monitor(t, 1920, 0, 4480, 1440, 1.0),
	)
	for y := int32(0); y < 1080; y++ {
		there := Target(pair, Top, LeftToRight, y)
		back := Target(pair, Top, RightToLeft, there.Y)
		if d := back.Y - y; d < -1 || d > 1 {
			t.Fatalf("y=%d -> %d -> %d", y, there.Y, back.Y)
		}
	}
}

func TestEqualMonitorsModesAgree(t *testing.T) {
	pair := pairOf(t,
		monitor(t, 0, 0, 2560, 1440, 1.5),
		monitor(t, 2560, 0, 5120, 1440, 1.5),
	)
	for _, dir := range []Direction{LeftToRight, RightToLeft} {
		for y := int32(0); y < 1440; y++ {
			top := Target(pair, Top, dir, y)
			center := Target(pair, Center, dir, y)
			if top.Y != center.Y || top.Y != y {
				t.Fatalf("%s y=%d: top %d center %d", dir, y, top.Y, center.Y)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"top", Top, false},
		{"Center", Center, false},
		{" center ", Center, false},
		{"middle", Top, true},
		{"", Top, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var m Mode
	if err := m.Set("center"); err != nil || m != Center {
		t.Errorf("Set(center) = %v, %v", m, err)
	}
	if m.String() != "center" {
		t.Errorf("String = %q", m.String())
	}
}
