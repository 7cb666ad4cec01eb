// Package window wraps the user32/shcore calls the aligner needs: DPI
// awareness, per-monitor DPI, and a thread message loop that owns the
// low-level mouse hook and runs hotkey actions between hook events.
//
// Everything except this file is Windows only.
package window
