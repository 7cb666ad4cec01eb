package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	initLogger(os.Stderr, false, false)
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("dipalign failed")
		os.Exit(1)
	}
}
