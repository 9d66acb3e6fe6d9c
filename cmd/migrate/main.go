package main

import (
	"dentsched/config"
	"dentsched/helper"
	"dentsched/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/drop/step-up) is required")
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Invalid migration direction")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Migrate(cfg, action); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
