//go:build windows

package mouse

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rpdg/dipalign/screen"
	"github.com/rpdg/dipalign/window"
)

const (
	WH_MOUSE_LL  = 14
	HC_ACTION    = 0
	WM_MOUSEMOVE = 0x0200
)

type msllHookStruct struct {
	Pt        screen.Point
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Handler receives every pointer move in physical coordinates.
type Handler func(pt screen.Point) Verdict

// Hook is an installed WH_MOUSE_LL hook. Only one may exist at a time.
//
// The handler runs on the thread that called InstallHook, inside its
// message loop, so that thread must pump messages (see window.Loop).
type Hook struct {
	handle uintptr
}

var (
	hookMu      sync.Mutex
	hookHandle  uintptr
	hookHandler Handler
	hookProc    = windows.NewCallback(lowLevelMouseProc)
)

// InstallHook installs the low-level mouse hook on the calling thread and
// routes every pointer move to h. Only one hook may be installed at a time.
func InstallHook(h Handler) (*Hook, error) {
	hookMu.Lock()
	defer hookMu.Unlock()

	if hookHandle != 0 {
		return nil, ErrHookInstalled
	}

	hookHandler = h
	r, _, err := window.ProcSetWindowsHookExW.Call(WH_MOUSE_LL, hookProc, window.ModuleHandle(), 0)
	if r == 0 {
		hookHandler = nil
		return nil, fmt.Errorf("SetWindowsHookExW failed: %w", err)
	}
	hookHandle = r
	return &Hook{handle: r}, nil
}

// Close removes the hook. It must run on the installing thread.
func (h *Hook) Close() error {
	hookMu.Lock()
	defer hookMu.Unlock()

	if h.handle == 0 || h.handle != hookHandle {
		return nil
	}
	r, _, err := window.ProcUnhookWindowsHookEx.Call(h.handle)
	hookHandle, hookHandler, h.handle = 0, nil, 0
	if r == 0 {
		return fmt.Errorf("UnhookWindowsHookEx failed: %w", err)
	}
	return nil
}

func lowLevelMouseProc(nCode, wParam, lParam uintptr) uintptr {
	if int32(nCode) == HC_ACTION && wParam == WM_MOUSEMOVE && hookHandler != nil {
		ms := (*msllHookStruct)(unsafe.Pointer(lParam))
		if hookHandler(ms.Pt) == Consumed {
			return 1
		}
	}
	r, _, _ := window.ProcCallNextHookEx.Call(hookHandle, nCode, wParam, lParam)
	return r
}
