package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rpdg/dipalign/screen"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	sideColor   = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
)

// printMonitors writes the virtual desktop bounds, the monitor table and
// the pair the current selection options would produce.
func printMonitors(w io.Writer, desktop screen.Rect, monitors []screen.Monitor, sel screen.SelectOptions) {
	headerColor.Fprintln(w, "Virtual desktop:")
	fmt.Fprintf(w, "  phys=%s  size=%dx%d\n", desktop, desktop.Width(), desktop.Height())
	headerColor.Fprintln(w, "Monitors (sorted left->right):")

	pair, pairErr := screen.SelectPair(monitors, sel)
	for i, m := range monitors {
		side := ""
		if pairErr == nil {
			switch i {
			case pair.LeftIndex:
				side = sideColor.Sprint(" <- left")
				m = pair.Left
			case pair.RightIndex:
				side = sideColor.Sprint(" <- right")
				m = pair.Right
			}
		}
		primary := ""
		if m.Primary {
			primary = " primary"
		}
		name := m.DeviceName
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(w, "  [%d] %s  phys=%s  scale=%.3f  dipTop=%.1f  dipH=%.1f%s%s\n",
			i, name, m.Bounds, m.Scale, m.DipTop, m.DipHeight, primary, side)
	}

	if pairErr != nil {
		errorColor.Fprintf(w, "No usable pair: %v\n", pairErr)
		return
	}
	fmt.Fprintf(w, "Boundary X = %d\n", pair.BoundaryX)
}
