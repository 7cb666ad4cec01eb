//go:build windows

package window

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	WM_QUIT = 0x0012
	WM_APP  = 0x8000
)

// ErrLoopNotRunning implies a Post to a loop whose thread has not started
// or has already exited.
var ErrLoopNotRunning = errors.New("message loop not running")

type point struct {
	X, Y int32
}

type msg struct {
	HWnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

// Loop is a thread message loop. Low-level hooks are delivered to the
// thread that installed them, and only while that thread is inside
// GetMessageW. Work posted from other goroutines with Post runs on the same
// thread, so hook events and posted actions never overlap.
type Loop struct {
	mu       sync.Mutex
	threadID uint32
	quit     bool
	actions  map[uintptr]func()
}

// NewLoop returns a loop with no actions. It starts pumping on Run.
func NewLoop() *Loop {
	return &Loop{actions: make(map[uintptr]func())}
}

// ThreadID returns the id of the thread running the loop, or 0.
func (l *Loop) ThreadID() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threadID
}

// OnPost runs fn on the loop thread whenever Post(id) is called.
func (l *Loop) OnPost(id int, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actions[uintptr(id)] = fn
}

// Post queues the action registered for id. It is safe to call from any
// goroutine while Run is pumping.
func (l *Loop) Post(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.threadID == 0 {
		return ErrLoopNotRunning
	}
	r, _, err := ProcPostThreadMessageW.Call(uintptr(l.threadID), WM_APP, uintptr(id), 0)
	if r == 0 {
		return fmt.Errorf("PostThreadMessageW failed: %w", err)
	}
	return nil
}

// Run locks the calling goroutine to its OS thread, runs setup there and
// pumps messages until Quit is called. teardown runs on the same thread
// before Run returns, and only if setup succeeded.
func (l *Loop) Run(setup func() error, teardown func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Force the thread message queue into existence before publishing the
	// thread id, otherwise PostThreadMessageW from Quit can be lost.
	var m msg
	ProcPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, 0) // PM_NOREMOVE

	l.mu.Lock()
	l.threadID = windows.GetCurrentThreadId()
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.threadID = 0
		l.mu.Unlock()
	}()

	if err := setup(); err != nil {
		return err
	}
	defer teardown()

	l.mu.Lock()
	quit := l.quit
	l.mu.Unlock()
	if quit {
		return nil
	}

	for {
		r, _, err := ProcGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case 0: // WM_QUIT
			return nil
		case -1:
			return fmt.Errorf("GetMessageW failed: %w", err)
		}
		if m.Message == WM_APP && m.HWnd == 0 {
			l.mu.Lock()
			fn := l.actions[m.WParam]
			l.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}

// Quit asks the loop to stop. It is safe to call from any goroutine, and
// before Run has started.
func (l *Loop) Quit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quit = true
	if l.threadID == 0 {
		return nil
	}
	r, _, err := ProcPostThreadMessageW.Call(uintptr(l.threadID), WM_QUIT, 0, 0)
	if r == 0 {
		return fmt.Errorf("PostThreadMessageW failed: %w", err)
	}
	return nil
}
