package main

import (
	"github.com/rs/zerolog"
	"os"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(newApp(os.Stdout, log)).Execute(); err != nil {
		log.Error().Err(err).Msg("tieredcache failed")
		os.Exit(1)
	}
}
