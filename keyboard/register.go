//go:build windows

package keyboard

import (
	"fmt"

	"golang.design/x/hotkey"
)

// modifierMap maps parsed modifiers to golang.design/x/hotkey modifiers.
var modifierMap = []struct {
	mod Modifier
	lib hotkey.Modifier
}{
	{ModControl, hotkey.ModCtrl},
	{ModAlt, hotkey.ModAlt},
	{ModShift, hotkey.ModShift},
	{ModWin, hotkey.ModWin},
}

// libHotkey converts h to the modifier list and key code golang.design/x/hotkey
// expects. On Windows its Key is the virtual-key code.
func libHotkey(h Hotkey) ([]hotkey.Modifier, hotkey.Key) {
	var mods []hotkey.Modifier
	for _, m := range modifierMap {
		if h.Modifiers&m.mod != 0 {
			mods = append(mods, m.lib)
		}
	}
	return mods, hotkey.Key(h.Key)
}

// Binding is a registered global hotkey.
type Binding struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

// Register registers h system-wide and calls fire on every key press.
// fire runs on an internal goroutine, so it should only hand the event
// over to the goroutine that owns the state it changes.
func Register(h Hotkey, fire func()) (*Binding, error) {
	mods, key := libHotkey(h)
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register hotkey %s: %w", h, err)
	}

	b := &Binding{hk: hk, done: make(chan struct{})}
	keydown := hk.Keydown()
	go func() {
		for {
			select {
			case <-keydown:
				fire()
			case <-b.done:
				return
			}
		}
	}()
	return b, nil
}

// Close unregisters the hotkey and stops delivering presses.
func (b *Binding) Close() error {
	close(b.done)
	if err := b.hk.Unregister(); err != nil {
		return fmt.Errorf("unregister hotkey: %w", err)
	}
	return nil
}
