package mouse

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/warp"
)

type fakeMover struct {
	moves []screen.Point
	err   error
}

func (f *fakeMover) MoveTo(x, y int32) error {
	if f.err != nil {
		return f.err
	}
	f.moves = append(f.moves, screen.Point{X: x, Y: y})
	return nil
}

// testPair: scale 2 monitor, 500 DIP tall, left of a scale 1 monitor, 800 DIP tall.
func testPair(t *testing.T) screen.Pair {
	t.Helper()
	left, err := screen.NewMonitor(screen.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000}, 2.0, "left")
	if err != nil {
		t.Fatal(err)
	}
	right, err := screen.NewMonitor(screen.Rect{Left: 2000, Top: 0, Right: 3000, Bottom: 800}, 1.0, "right")
	if err != nil {
		t.Fatal(err)
	}
	pair, err := screen.SelectPair([]screen.Monitor{left, right}, screen.DefaultSelectOptions())
	if err != nil {
		t.Fatal(err)
	}
	return pair
}

func newTestDetector(t *testing.T) (*Detector, *fakeMover) {
	mv := &fakeMover{}
	return NewDetector(testPair(t), warp.Top, mv, zerolog.Nop()), mv
}

func feed(d *Detector, pts ...screen.Point) []Verdict {
	out := make([]Verdict, len(pts))
	for i, p := range pts {
		out[i] = d.Handle(p)
	}
	return out
}

func TestDetectorFirstEventOnlyRecords(t *testing.T) {
	d, mv := newTestDetector(t)

	if v := d.Handle(screen.Point{X: 2500, Y: 100}); v != PassThrough {
		t.Errorf("verdict = %s", v)
	}
	if len(mv.moves) != 0 {
		t.Errorf("unexpected moves %v", mv.moves)
	}
	if last, ok := d.Last(); !ok || last != (screen.Point{X: 2500, Y: 100}) {
		t.Errorf("Last = %v, %v", last, ok)
	}
}

func TestDetectorLeftToRight(t *testing.T) {
	d, mv := newTestDetector(t)

	v := feed(d, screen.Point{X: 1500, Y: 500}, screen.Point{X: 2001, Y: 510})
	if v[1] != Consumed {
		t.Fatalf("crossing verdict = %s, want consumed", v[1])
	}
	// Y before the crossing (500) is what gets aligned, not 510.
	if len(mv.moves) != 1 || mv.moves[0] != (screen.Point{X: 2002, Y: 400}) {
		t.Fatalf("moves = %v", mv.moves)
	}
	if last, _ := d.Last(); last != (screen.Point{X: 2002, Y: 400}) {
		t.Errorf("Last = %v, want relocation target", last)
	}
	if !d.Suppressing() {
		t.Error("expected suppression armed")
	}
}

func TestDetectorSyntheticEventIsSkipped(t *testing.T) {
	d, mv := newTestDetector(t)
	feed(d, screen.Point{X: 1500, Y: 500}, screen.Point{X: 2001, Y: 510})

	// Would be a right-to-left crossing if evaluated.
	if v := d.Handle(screen.Point{X: 100, Y: 100}); v != PassThrough {
		t.Errorf("synthetic verdict = %s", v)
	}
	if len(mv.moves) != 1 {
		t.Errorf("synthetic event triggered a move: %v", mv.moves)
	}
	if d.Suppressing() {
		t.Error("suppression not cleared")
	}
	if last, _ := d.Last(); last != (screen.Point{X: 2002, Y: 400}) {
		t.Errorf("Last = %v, synthetic event must not be recorded", last)
	}

	// Back across: srcY is the recorded 400 on the right monitor.
	if v := d.Handle(screen.Point{X: 1999, Y: 300}); v != Consumed {
		t.Fatalf("verdict = %s", v)
	}
	if got := mv.moves[1]; got != (screen.Point{X: 1998, Y: 500}) {
		t.Errorf("move = %v, want (1998,500)", got)
	}
}

func TestDetectorNextEventNeverReevaluated(t *testing.T) {
	nexts := []screen.Point{
		{X: 2002, Y: 400},
		{X: 0, Y: 0},
		{X: 1999, Y: 999},
		{X: 2000, Y: 0},
		{X: 5000, Y: -100},
	}
	for _, next := range nexts {
		d, mv := newTestDetector(t)
		feed(d, screen.Point{X: 1990, Y: 10}, screen.Point{X: 2010, Y: 10})
		if v := d.Handle(next); v != PassThrough {
			t.Errorf("next %v: verdict %s", next, v)
		}
		if len(mv.moves) != 1 {
			t.Errorf("next %v: moves %v", next, mv.moves)
		}
	}
}

func TestDetectorBoundaryExactness(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int32
		wantMoved bool
		wantX     int32
	}{
		{"left to boundary", 1999, 2000, true, 2002},
		{"left to left edge", 1998, 1999, false, 0},
		{"boundary to left", 2000, 1999, true, 1998},
		{"boundary to boundary", 2000, 2000, false, 0},
		{"right to right", 2000, 2500, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, mv := newTestDetector(t)
			v := feed(d, screen.Point{X: tt.from, Y: 200}, screen.Point{X: tt.to, Y: 200})

			if moved := len(mv.moves) == 1; moved != tt.wantMoved {
				t.Fatalf("moved = %v, want %v (moves %v)", moved, tt.wantMoved, mv.moves)
			}
			if !tt.wantMoved {
				if v[1] != PassThrough {
					t.Errorf("verdict = %s", v[1])
				}
				return
			}
			if v[1] != Consumed {
				t.Errorf("verdict = %s", v[1])
			}
			if mv.moves[0].X != tt.wantX {
				t.Errorf("X = %d, want %d", mv.moves[0].X, tt.wantX)
			}
		})
	}
}

func TestDetectorDisabledPassesThrough(t *testing.T) {
	d, mv := newTestDetector(t)
	d.SetEnabled(false)

	v := feed(d, screen.Point{X: 1500, Y: 500}, screen.Point{X: 2001, Y: 510})
	if v[1] != PassThrough {
		t.Errorf("verdict = %s", v[1])
	}
	if len(mv.moves) != 0 {
		t.Errorf("moves = %v", mv.moves)
	}
	if last, _ := d.Last(); last != (screen.Point{X: 2001, Y: 510}) {
		t.Errorf("Last = %v", last)
	}
	if d.Suppressing() {
		t.Error("suppression armed while disabled")
	}

	d.SetEnabled(true)
	if v := d.Handle(screen.Point{X: 1990, Y: 510}); v != Consumed {
		t.Errorf("re-enabled verdict = %s", v)
	}
}

func TestDetectorMoveFailure(t *testing.T) {
	d, mv := newTestDetector(t)
	mv.err = errors.New("access denied")

	v := feed(d, screen.Point{X: 1500, Y: 500}, screen.Point{X: 2001, Y: 510})
	if v[1] != PassThrough {
		t.Errorf("verdict = %s", v[1])
	}
	if d.Suppressing() {
		t.Error("suppression left armed after failed move")
	}
	if last, _ := d.Last(); last != (screen.Point{X: 2001, Y: 510}) {
		t.Errorf("Last = %v", last)
	}
}

func TestDetectorSetPairForgetsLast(t *testing.T) {
	d, mv := newTestDetector(t)
	d.Handle(screen.Point{X: 1500, Y: 500})

	d.SetPair(testPair(t))
	if _, ok := d.Last(); ok {
		t.Fatal("last position kept across SetPair")
	}
	if v := d.Handle(screen.Point{X: 2500, Y: 500}); v != PassThrough || len(mv.moves) != 0 {
		t.Errorf("verdict %s moves %v", v, mv.moves)
	}
}

func TestDetectorCenterMode(t *testing.T) {
	d, mv := newTestDetector(t)
	d.SetMode(warp.Center)

	feed(d, screen.Point{X: 2500, Y: 0}, screen.Point{X: 1900, Y: 0})
	// Top row of the 800px monitor is 0.5 above center -> top row of the left monitor.
	if len(mv.moves) != 1 || mv.moves[0] != (screen.Point{X: 1998, Y: 0}) {
		t.Errorf("moves = %v", mv.moves)
	}
}
