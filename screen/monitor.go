//go:build windows

package screen

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rpdg/dipalign/window"
)

// SM_CXVIRTUALSCREEN = 78
// SM_CYVIRTUALSCREEN = 79
// SM_XVIRTUALSCREEN = 76
// SM_YVIRTUALSCREEN = 77

// VirtualBounds returns the bounding rectangle of the entire virtual desktop.
// This includes all monitors.
func VirtualBounds() Rect {
	x, _, _ := window.ProcGetSystemMetrics.Call(76)
	y, _, _ := window.ProcGetSystemMetrics.Call(77)
	w, _, _ := window.ProcGetSystemMetrics.Call(78)
	h, _, _ := window.ProcGetSystemMetrics.Call(79)

	return Rect{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x) + int32(w),
		Bottom: int32(y) + int32(h),
	}
}

// Monitors returns all active monitors sorted by ascending physical left edge.
//
// Bounds are only in physical pixels when the process is Per-Monitor DPI
// Aware; call window.EnablePerMonitorDPI first. The scale is the monitor's
// effective DPI divided by 96, or 1.0 when the DPI cannot be queried.
func Monitors() ([]Monitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumResult, enumErr = nil, nil
	window.ProcEnumDisplayMonitors.Call(0, 0, enumProc, 0)
	monitors, err := enumResult, enumErr
	enumResult, enumErr = nil, nil
	if err != nil {
		return nil, err
	}

	SortByLeft(monitors)
	return monitors, nil
}

// The callback is created once; windows.NewCallback slots are never released.
var (
	enumMu     sync.Mutex
	enumResult []Monitor
	enumErr    error
	enumProc   = windows.NewCallback(enumMonitor)
)

func enumMonitor(hMonitor uintptr, hdcMonitor uintptr, lprcMonitor uintptr, dwData uintptr) uintptr {
	var mi monitorInfoExW
	mi.Size = uint32(unsafe.Sizeof(mi))

	ret, _, _ := window.ProcGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return 1
	}

	scale := 1.0
	if dpiX, _, err := window.GetDpiForMonitor(hMonitor); err == nil {
		scale = ScaleFromDPI(dpiX)
	}

	bounds := Rect{
		Left:   mi.Monitor.Left,
		Top:    mi.Monitor.Top,
		Right:  mi.Monitor.Right,
		Bottom: mi.Monitor.Bottom,
	}
	mon, err := NewMonitor(bounds, scale, windows.UTF16ToString(mi.Device[:]))
	if err != nil {
		enumErr = fmt.Errorf("monitor %s: %w", bounds, err)
		return 0
	}
	mon.Handle = hMonitor
	mon.WorkArea = Rect{
		Left:   mi.Work.Left,
		Top:    mi.Work.Top,
		Right:  mi.Work.Right,
		Bottom: mi.Work.Bottom,
	}
	mon.Primary = (mi.Flags & 1) != 0 // MONITORINFOF_PRIMARY = 1
	enumResult = append(enumResult, mon)
	return 1
}

type rectStruct struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rectStruct
	Work    rectStruct
	Flags   uint32
	Device  [32]uint16
}
