//go:build windows

package dipalign

import (
	"context"
	"fmt"

	"github.com/rpdg/dipalign/keyboard"
	"github.com/rpdg/dipalign/mouse"
	"github.com/rpdg/dipalign/window"
)

const (
	hotkeyToggle = 1
	hotkeyReload = 2
)

// EnablePerMonitorDPI must be called before New so that monitor bounds and
// pointer coordinates are physical pixels.
func EnablePerMonitorDPI() error {
	return window.EnablePerMonitorDPI()
}

// Serve installs the low-level mouse hook on a dedicated OS thread and
// feeds every pointer move to Handle until ctx is done. Hotkey presses are
// posted to that same thread, so their actions run between events.
func (a *Aligner) Serve(ctx context.Context, keys Hotkeys) error {
	loop := window.NewLoop()
	var hook *mouse.Hook
	var bindings []*keyboard.Binding

	setup := func() error {
		var err error
		hook, err = mouse.InstallHook(a.Handle)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHookFailed, err)
		}
		a.log.Debug().Uint32("thread", loop.ThreadID()).Msg("mouse hook installed")

		bind := func(id int, h keyboard.Hotkey, fn func()) {
			if h.IsZero() {
				return
			}
			loop.OnPost(id, fn)
			b, err := keyboard.Register(h, func() {
				if err := loop.Post(id); err != nil {
					a.log.Warn().Err(err).Stringer("hotkey", h).Msg("hotkey dropped")
				}
			})
			if err != nil {
				a.log.Warn().Err(err).Stringer("hotkey", h).Msg("hotkey not registered")
				return
			}
			bindings = append(bindings, b)
			a.log.Info().Stringer("hotkey", h).Msg("hotkey registered")
		}
		bind(hotkeyToggle, keys.Toggle, func() { a.Toggle() })
		bind(hotkeyReload, keys.Reload, func() { _ = a.Reload() })
		return nil
	}

	teardown := func() {
		for _, b := range bindings {
			if err := b.Close(); err != nil {
				a.log.Warn().Err(err).Msg("unregister hotkey")
			}
		}
		if err := hook.Close(); err != nil {
			a.log.Warn().Err(err).Msg("remove mouse hook")
		}
	}

	stop := context.AfterFunc(ctx, func() {
		if err := loop.Quit(); err != nil {
			a.log.Error().Err(err).Msg("stop message loop")
		}
	})
	defer stop()

	a.logPointer(mouse.Cursor{}.Position())
	return loop.Run(setup, teardown)
}
