package main

import (
	"os"
	"time"

	"perfectplay/cmd"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("perfectplay failed")
	}
}
