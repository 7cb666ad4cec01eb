//go:build windows

package window

import (
	"fmt"
	"unsafe"
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnablePerMonitorDPI makes the process Per-Monitor DPI Aware (V2) so that
// monitor bounds, hook coordinates and SetCursorPos all use physical pixels.
// It must run before any monitor is enumerated.
func EnablePerMonitorDPI() error {
	if err := ProcSetProcessDpiAwarenessCtx.Find(); err != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not found: %w", err)
	}
	r, _, err := ProcSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed: %w", err)
	}
	return nil
}

// GetDpiForMonitor returns the effective DPI of the monitor.
func GetDpiForMonitor(hmonitor uintptr) (dpiX, dpiY uint32, err error) {
	if ProcGetDpiForMonitor.Find() != nil {
		return 96, 96, fmt.Errorf("GetDpiForMonitor not found")
	}
	var dx, dy uint32
	// MDT_EFFECTIVE_DPI = 0
	r, _, _ := ProcGetDpiForMonitor.Call(hmonitor, 0, uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if r != 0 {
		return 96, 96, fmt.Errorf("GetDpiForMonitor failed: HRESULT 0x%08x", uint32(r))
	}
	return dx, dy, nil
}
