package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/api/routes"
	"github.com/leilao-digital/app-console-admin/internal/config"
	"github.com/leilao-digital/app-console-admin/internal/observability"
)

func main() {
	cfg := config.LoadConfig()

	configurarLogs(cfg.LogLevel)

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Info().Str("porta", cfg.ServerPort).Str("api", cfg.APIBaseURL).Msg("console iniciado")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("erro ao iniciar servidor")
	}
}

func configurarLogs(nivel string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parsed, err := zerolog.ParseLevel(strings.ToLower(nivel))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
