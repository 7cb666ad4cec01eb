// Package dipalign keeps the pointer's vertical position visually aligned
// when it moves between two monitors with different scale factors or
// heights.
//
// Without correction Windows maps the crossing point in physical pixels, so
// the pointer jumps up or down when it enters a monitor with another DPI.
// dipalign watches every pointer move through a low-level mouse hook and,
// when the pointer crosses the boundary between the chosen left and right
// monitor, moves it to the position that has the same offset in
// device-independent pixels (DIP), measured from the monitor top edge or
// center.
//
// Example:
//
//	if err := dipalign.EnablePerMonitorDPI(); err != nil {
//	    log.Printf("dpi awareness: %v", err)
//	}
//	a, err := dipalign.New(screen.Monitors, mouse.Cursor{}, dipalign.DefaultOptions(), logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = a.Serve(ctx, dipalign.Hotkeys{})
package dipalign
