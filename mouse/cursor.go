//go:build windows

package mouse

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/window"
)

// Cursor moves and queries the system pointer in physical Virtual Desktop
// coordinates.
type Cursor struct{}

// MoveTo moves the pointer with SetCursorPos. The call is synchronous.
func (Cursor) MoveTo(x, y int32) error {
	r, _, err := window.ProcSetCursorPos.Call(uintptr(x), uintptr(y))
	if r == 0 {
		return fmt.Errorf("SetCursorPos(%d,%d) failed: %w", x, y, err)
	}
	return nil
}

func (Cursor) Position() (screen.Point, error) {
	var pt screen.Point
	r, _, err := window.ProcGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return screen.Point{}, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return pt, nil
}
