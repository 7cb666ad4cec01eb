//go:build !windows

package dipalign

import "context"

func EnablePerMonitorDPI() error { return nil }

func (a *Aligner) Serve(ctx context.Context, keys Hotkeys) error {
	return ErrUnsupportedPlatform
}
