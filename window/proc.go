//go:build windows

package window

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	shcore   = windows.NewLazySystemDLL("shcore.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	ProcGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	ProcEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	ProcGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")

	ProcGetCursorPos = user32.NewProc("GetCursorPos")
	ProcSetCursorPos = user32.NewProc("SetCursorPos")

	ProcSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	ProcUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	ProcCallNextHookEx      = user32.NewProc("CallNextHookEx")

	ProcGetMessageW        = user32.NewProc("GetMessageW")
	ProcPeekMessageW       = user32.NewProc("PeekMessageW")
	ProcPostThreadMessageW = user32.NewProc("PostThreadMessageW")

	ProcSetProcessDpiAwarenessCtx = user32.NewProc("SetProcessDpiAwarenessContext") // Win10 1703+
	ProcGetDpiForMonitor          = shcore.NewProc("GetDpiForMonitor")

	ProcGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

// ModuleHandle returns the handle of the running executable.
func ModuleHandle() uintptr {
	h, _, _ := ProcGetModuleHandleW.Call(0)
	return h
}
