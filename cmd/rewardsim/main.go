package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/DanSteel1337/5PT-sub000/cmd/rewardsim/cmd"
)

// main is the entry point for the reward projection CLI.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found. Relying on OS environment variables.")
	}

	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("rewardsim failed")
		os.Exit(1)
	}
}
