package dipalign

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rpdg/dipalign/keyboard"
	"github.com/rpdg/dipalign/mouse"
	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/warp"
)

// Enumerator lists the active monitors sorted by ascending left edge.
// screen.Monitors is the system implementation.
type Enumerator func() ([]screen.Monitor, error)

// Options configures New.
type Options struct {
	Select   screen.SelectOptions
	Mode     warp.Mode
	Disabled bool // start with relocation turned off
}

// DefaultOptions selects the first two monitors in Top mode, enabled.
func DefaultOptions() Options {
	return Options{Select: screen.DefaultSelectOptions(), Mode: warp.Top}
}

// Hotkeys are the global shortcuts bound by Serve. Zero values are skipped.
type Hotkeys struct {
	Toggle keyboard.Hotkey
	Reload keyboard.Hotkey
}

// Aligner owns all alignment state: the active monitor pair, the enabled
// flag and the pointer tracking state. It is created once, its pair is
// replaced wholesale by Reload, and it is fed events by Serve or by any
// other source through Handle.
type Aligner struct {
	enumerate Enumerator
	opts      Options
	det       *mouse.Detector
	log       zerolog.Logger
}

// New enumerates monitors and selects the pair. Selection errors
// (ErrInsufficientMonitors, ErrInvalidIndex, ErrInvalidScale) are fatal
// configuration errors.
func New(enumerate Enumerator, mover mouse.Mover, opts Options, logger zerolog.Logger) (*Aligner, error) {
	a := &Aligner{
		enumerate: enumerate,
		opts:      opts,
		log:       logger.With().Str("module", "aligner").Logger(),
	}

	pair, err := a.selectPair()
	if err != nil {
		return nil, err
	}

	a.det = mouse.NewDetector(pair, opts.Mode, mover, logger)
	a.det.SetEnabled(!opts.Disabled)

	a.log.Info().
		Stringer("mode", opts.Mode).
		Int32("boundary_x", pair.BoundaryX).
		Stringer("left", pair.Left).
		Stringer("right", pair.Right).
		Bool("enabled", !opts.Disabled).
		Msg("monitor pair selected")
	return a, nil
}

func (a *Aligner) selectPair() (screen.Pair, error) {
	monitors, err := a.enumerate()
	if err != nil {
		return screen.Pair{}, fmt.Errorf("enumerate monitors: %w", err)
	}
	pair, err := screen.SelectPair(monitors, a.opts.Select)
	if err != nil {
		return screen.Pair{}, fmt.Errorf("select monitors: %w", err)
	}
	return pair, nil
}

// Handle processes one pointer-move event at physical position pt.
func (a *Aligner) Handle(pt screen.Point) mouse.Verdict {
	return a.det.Handle(pt)
}

func (a *Aligner) Pair() screen.Pair { return a.det.Pair() }
func (a *Aligner) Mode() warp.Mode   { return a.det.Mode() }
func (a *Aligner) Enabled() bool     { return a.det.Enabled() }

func (a *Aligner) SetEnabled(enabled bool) {
	a.det.SetEnabled(enabled)
	a.log.Info().Bool("enabled", enabled).Msg("alignment toggled")
}

// Toggle flips the enabled flag and returns the new value.
func (a *Aligner) Toggle() bool {
	enabled := !a.det.Enabled()
	a.SetEnabled(enabled)
	return enabled
}

// Reload re-enumerates monitors and replaces the active pair. On failure
// the previous pair stays active. Call it between events, from the event
// goroutine.
func (a *Aligner) Reload() error {
	pair, err := a.selectPair()
	if err != nil {
		a.log.Warn().Err(err).Msg("reload failed, keeping previous monitor pair")
		return err
	}
	a.det.SetPair(pair)
	a.log.Info().Int32("boundary_x", pair.BoundaryX).Msg("monitors reloaded")
	return nil
}

// logPointer reports where the pointer is when event delivery starts.
func (a *Aligner) logPointer(pt screen.Point, err error) {
	if err != nil {
		a.log.Warn().Err(err).Msg("running, pointer position unknown")
		return
	}
	ev := a.log.Info().Stringer("pointer", pt)
	if m, ok := a.Pair().MonitorAt(pt); ok {
		ev = ev.Str("monitor", m.DeviceName)
	}
	ev.Msg("running")
}
