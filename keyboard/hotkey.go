// Package keyboard parses and registers the global hotkeys that toggle
// alignment and reload the monitor layout.
package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHotkey implies a hotkey string that could not be parsed.
var ErrInvalidHotkey = errors.New("invalid hotkey")

// Modifier is a set of modifier keys, using the Win32 MOD_* bit values.
type Modifier uint32

const (
	ModAlt     Modifier = 0x0001
	ModControl Modifier = 0x0002
	ModShift   Modifier = 0x0004
	ModWin     Modifier = 0x0008
)

// VK is a Windows virtual-key code.
type VK uint32

const (
	VKPause    VK = 0x13
	VKSpace    VK = 0x20
	VKPageUp   VK = 0x21
	VKPageDown VK = 0x22
	VKEnd      VK = 0x23
	VKHome     VK = 0x24
	VKInsert   VK = 0x2D
	VKDelete   VK = 0x2E
	VKF1       VK = 0x70
	VKScroll   VK = 0x91
)

var namedKeys = map[string]VK{
	"pause":    VKPause,
	"space":    VKSpace,
	"pageup":   VKPageUp,
	"pagedown": VKPageDown,
	"end":      VKEnd,
	"home":     VKHome,
	"insert":   VKInsert,
	"delete":   VKDelete,
	"scroll":   VKScroll,
}

var modifierNames = []struct {
	mod   Modifier
	names []string
}{
	{ModControl, []string{"ctrl", "control"}},
	{ModAlt, []string{"alt"}},
	{ModShift, []string{"shift"}},
	{ModWin, []string{"win", "super"}},
}

// Hotkey is a key plus the modifiers that must be held with it.
type Hotkey struct {
	Modifiers Modifier
	Key       VK
}

// IsZero reports whether the hotkey is unset.
func (h Hotkey) IsZero() bool { return h.Key == 0 }

// ParseHotkey parses strings such as "ctrl+alt+m" or "win+shift+f9".
// An empty string yields the zero Hotkey. At least one modifier is required
// so that plain typing is never swallowed.
func ParseHotkey(s string) (Hotkey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Hotkey{}, nil
	}

	var h Hotkey
	parts := strings.Split(s, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i < len(parts)-1 {
			mod, ok := lookupModifier(p)
			if !ok {
				return Hotkey{}, fmt.Errorf("%w %q: unknown modifier %q", ErrInvalidHotkey, s, p)
			}
			h.Modifiers |= mod
			continue
		}
		vk, ok := lookupKey(p)
		if !ok {
			return Hotkey{}, fmt.Errorf("%w %q: unknown key %q", ErrInvalidHotkey, s, p)
		}
		h.Key = vk
	}

	if h.Modifiers == 0 {
		return Hotkey{}, fmt.Errorf("%w %q: at least one modifier is required", ErrInvalidHotkey, s)
	}
	return h, nil
}

func (h Hotkey) String() string {
	if h.IsZero() {
		return ""
	}
	var parts []string
	for _, m := range modifierNames {
		if h.Modifiers&m.mod != 0 {
			parts = append(parts, m.names[0])
		}
	}
	return strings.Join(append(parts, keyName(h.Key)), "+")
}

func lookupModifier(s string) (Modifier, bool) {
	for _, m := range modifierNames {
		for _, n := range m.names {
			if n == s {
				return m.mod, true
			}
		}
	}
	return 0, false
}

func lookupKey(s string) (VK, bool) {
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return VK(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return VK(c), true
		}
	}
	if vk, ok := namedKeys[s]; ok {
		return vk, true
	}
	var n int
	if _, err := fmt.Sscanf(s, "f%d", &n); err == nil && n >= 1 && n <= 24 && s == fmt.Sprintf("f%d", n) {
		return VKF1 + VK(n-1), true
	}
	return 0, false
}

func keyName(vk VK) string {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return string(rune(vk - 'A' + 'a'))
	case vk >= '0' && vk <= '9':
		return string(rune(vk))
	case vk >= VKF1 && vk < VKF1+24:
		return fmt.Sprintf("f%d", vk-VKF1+1)
	}
	for name, v := range namedKeys {
		if v == vk {
			return name
		}
	}
	return fmt.Sprintf("vk%#02x", uint32(vk))
}
