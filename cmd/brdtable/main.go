package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Station-Manager/brd"
)

func main() {
	logger := brd.NewLogger(os.Stderr, zerolog.WarnLevel)

	svc := brd.NewService(brd.DefaultConfig(), logger)
	if err := svc.Initialize(); err != nil {
		logger.Fatal().Err(err).Msg("initialize")
	}
	if err := svc.Render(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("render")
	}
}
