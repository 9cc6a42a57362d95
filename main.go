package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smart-budget/planner/internal/config"
	"github.com/smart-budget/planner/internal/shell"
	"github.com/smart-budget/planner/internal/store"
)

func main() {
	cfg := config.Load()

	// Log format defaults to human readable for the interactive session,
	// JSON when explicitly requested. Logs go to stderr so they do not
	// interleave with the menu.
	output := io.Writer(os.Stderr)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		log.Warn().Err(err).Msg("could not load categories, using defaults")
		categories = config.DefaultCategories
	}

	st := store.Open(cfg.DataFile)

	if err := shell.New(st, categories).Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
