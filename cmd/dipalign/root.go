package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpdg/dipalign"
	"github.com/rpdg/dipalign/keyboard"
	"github.com/rpdg/dipalign/mouse"
	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/warp"
)

var version = "dev"

type options struct {
	list       bool
	left       int
	right      int
	leftScale  float64
	rightScale float64
	mode       warp.Mode
	disabled   bool
	debug      bool
	noColor    bool

	toggleHotkey string
	reloadHotkey string
	hotkeys      dipalign.Hotkeys
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dipalign",
		Short: "Keep the pointer height aligned across monitors with different DPI",
		Long: `dipalign watches the pointer and, when it crosses from the left monitor to
the right one (or back), moves it to the same position in device-independent
pixels so it does not jump up or down on a monitor with another scale factor.

Monitors are numbered left to right as shown by --list.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			initLogger(cmd.ErrOrStderr(), opts.debug, opts.noColor)
			if opts.noColor {
				color.NoColor = true
			}
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.list, "list", false, "print the detected monitors and exit")
	f.IntVar(&opts.left, "left", screen.Unset, "index of the left monitor (default 0)")
	f.IntVar(&opts.right, "right", screen.Unset, "index of the right monitor (default 1)")
	f.Float64Var(&opts.leftScale, "left-scale", 0, "override the left monitor scale factor (e.g. 1.5)")
	f.Float64Var(&opts.rightScale, "right-scale", 0, "override the right monitor scale factor")
	f.Var(&opts.mode, "mode", "vertical anchor: top|center")
	f.BoolVar(&opts.disabled, "disabled", false, "start with alignment turned off")
	f.BoolVar(&opts.debug, "debug", false, "log every boundary crossing")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.StringVar(&opts.toggleHotkey, "toggle-hotkey", "ctrl+alt+m", "hotkey that enables/disables alignment (empty to disable)")
	f.StringVar(&opts.reloadHotkey, "reload-hotkey", "ctrl+alt+r", "hotkey that reloads the monitor layout (empty to disable)")

	return cmd
}

func (o *options) validate() error {
	if o.left < screen.Unset || o.right < screen.Unset {
		return fmt.Errorf("--left/--right must be a monitor index: %w", screen.ErrInvalidIndex)
	}
	if badScale(o.leftScale) || badScale(o.rightScale) {
		return fmt.Errorf("--left-scale/--right-scale must be positive: %w", screen.ErrInvalidScale)
	}

	var err error
	if o.hotkeys.Toggle, err = keyboard.ParseHotkey(o.toggleHotkey); err != nil {
		return fmt.Errorf("--toggle-hotkey: %w", err)
	}
	if o.hotkeys.Reload, err = keyboard.ParseHotkey(o.reloadHotkey); err != nil {
		return fmt.Errorf("--reload-hotkey: %w", err)
	}
	if !o.hotkeys.Toggle.IsZero() && o.hotkeys.Toggle == o.hotkeys.Reload {
		return fmt.Errorf("--toggle-hotkey and --reload-hotkey are both %s", o.hotkeys.Toggle)
	}
	return nil
}

// badScale reports a scale override that can never be applied. 0 means
// no override.
func badScale(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

func (o *options) selectOptions() screen.SelectOptions {
	return screen.SelectOptions{
		LeftIndex:  o.left,
		RightIndex: o.right,
		LeftScale:  o.leftScale,
		RightScale: o.rightScale,
	}
}

func run(cmd *cobra.Command, opts *options) error {
	if err := dipalign.EnablePerMonitorDPI(); err != nil {
		log.Warn().Err(err).Msg("failed to enable per-monitor DPI awareness, coordinates may be scaled")
	}

	if opts.list {
		monitors, err := screen.Monitors()
		if err != nil {
			return fmt.Errorf("enumerate monitors: %w", err)
		}
		printMonitors(cmd.OutOrStdout(), screen.VirtualBounds(), monitors, opts.selectOptions())
		return nil
	}

	a, err := dipalign.New(screen.Monitors, mouse.Cursor{}, dipalign.Options{
		Select:   opts.selectOptions(),
		Mode:     opts.mode,
		Disabled: opts.disabled,
	}, log.Logger)
	if err != nil {
		return fmt.Errorf("%w (use --list to see available monitors)", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", version).Msg("dipalign started, Ctrl+C to exit")
	if err := a.Serve(ctx, opts.hotkeys); err != nil {
		return err
	}
	log.Info().Msg("dipalign stopped")
	return nil
}
