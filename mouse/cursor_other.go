//go:build !windows

package mouse

import "github.com/rpdg/dipalign/screen"

type Cursor struct{}

func (Cursor) MoveTo(x, y int32) error { return ErrUnsupportedPlatform }

func (Cursor) Position() (screen.Point, error) { return screen.Point{}, ErrUnsupportedPlatform }
