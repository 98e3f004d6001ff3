// main.go
//
// Entrypoint for the solver API server. Loads .env config, the dictionary
// snapshot, and serves the HTTP API. The interactive terminal client lives
// in cmd/solvecli.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/dict"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/session"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	entries, err := dict.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	log.Info().Int("entries", len(entries)).Msg("dictionary loaded")

	sessions := session.NewMemoryStore()
	srv := httpserver.New(sessions, entries)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-solver")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
