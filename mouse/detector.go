package mouse

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/warp"
)

// Verdict tells the event source what to do with a pointer-move event.
type Verdict int

const (
	// PassThrough lets the system apply the move as usual.
	PassThrough Verdict = iota
	// Consumed means the move was replaced by a relocation and must be dropped.
	Consumed
)

func (v Verdict) String() string {
	if v == Consumed {
		return "consumed"
	}
	return "pass"
}

// Mover relocates the system pointer. MoveTo must be synchronous.
type Mover interface {
	MoveTo(x, y int32) error
}

// Detector watches pointer moves for crossings of the pair's boundary and
// relocates the pointer to the DIP-aligned position on the other monitor.
//
// Handle, SetPair and SetMode must be called from the single goroutine that
// delivers events. SetEnabled may be called from anywhere.
type Detector struct {
	pair    screen.Pair
	mode    warp.Mode
	mover   Mover
	enabled atomic.Bool
	log     zerolog.Logger

	last     screen.Point
	haveLast bool
	// suppress is set while the event caused by our own relocation is pending.
	suppress bool
}

// NewDetector returns an enabled detector for pair that relocates the
// pointer through mover.
func NewDetector(pair screen.Pair, mode warp.Mode, mover Mover, logger zerolog.Logger) *Detector {
	d := &Detector{
		pair:  pair,
		mode:  mode,
		mover: mover,
		log:   logger.With().Str("module", "detector").Logger(),
	}
	d.enabled.Store(true)
	return d
}

func (d *Detector) Pair() screen.Pair { return d.pair }
func (d *Detector) Mode() warp.Mode   { return d.mode }

// SetPair replaces the monitor pair. The last observed position belongs to
// the old topology and is forgotten; a pending synthetic event is still
// suppressed.
func (d *Detector) SetPair(p screen.Pair) {
	d.pair = p
	d.haveLast = false
}

func (d *Detector) SetMode(m warp.Mode) { d.mode = m }

func (d *Detector) Enabled() bool           { return d.enabled.Load() }
func (d *Detector) SetEnabled(enabled bool) { d.enabled.Store(enabled) }

// Last returns the last recorded pointer position, if any.
func (d *Detector) Last() (screen.Point, bool) { return d.last, d.haveLast }

// Suppressing reports whether the next event will be skipped as synthetic.
func (d *Detector) Suppressing() bool { return d.suppress }

// Handle processes one pointer-move event at physical position pt.
func (d *Detector) Handle(pt screen.Point) Verdict {
	if d.suppress {
		d.suppress = false
		return PassThrough
	}

	if !d.haveLast {
		d.record(pt)
		return PassThrough
	}

	if dir, crossed := d.classify(pt); crossed {
		d.log.Debug().
			Stringer("dir", dir).
			Stringer("from", d.last).
			Stringer("to", pt).
			Bool("enabled", d.Enabled()).
			Msg("boundary crossed")

		if d.Enabled() && d.relocate(dir) {
			return Consumed
		}
	}

	d.record(pt)
	return PassThrough
}

func (d *Detector) classify(pt screen.Point) (warp.Direction, bool) {
	bx := d.pair.BoundaryX
	switch {
	case d.last.X < bx && pt.X >= bx:
		return warp.LeftToRight, true
	case d.last.X >= bx && pt.X < bx:
		return warp.RightToLeft, true
	}
	return warp.LeftToRight, false
}

func (d *Detector) relocate(dir warp.Direction) bool {
	res := warp.Compute(d.pair, d.mode, dir, d.last.Y)

	d.log.Debug().
		Int32("src_y", d.last.Y).
		Float64("src_y_dip", res.SrcYDip).
		Float64("rel", res.Rel).
		Float64("target_y_dip", res.TargetYDip).
		Stringer("target", res.Target).
		Msg("warp")

	// Armed before the move: the synthetic event may be delivered before MoveTo returns.
	d.suppress = true
	if err := d.mover.MoveTo(res.Target.X, res.Target.Y); err != nil {
		d.suppress = false
		d.log.Warn().Err(err).Stringer("target", res.Target).Msg("relocation failed")
		return false
	}

	d.last = res.Target
	d.haveLast = true
	return true
}

func (d *Detector) record(pt screen.Point) {
	d.last = pt
	d.haveLast = true
}
