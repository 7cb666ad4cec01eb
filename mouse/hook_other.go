//go:build !windows

package mouse

import "github.com/rpdg/dipalign/screen"

type Handler func(pt screen.Point) Verdict

type Hook struct{}

func InstallHook(h Handler) (*Hook, error) { return nil, ErrUnsupportedPlatform }

func (h *Hook) Close() error { return nil }
