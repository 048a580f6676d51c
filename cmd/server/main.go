package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wakala/remittance/internal/api"
	"github.com/wakala/remittance/internal/config"
	"github.com/wakala/remittance/internal/remit"
	"github.com/wakala/remittance/internal/repository"
	"github.com/wakala/remittance/internal/seed"
)

func main() {
	// .env is optional; real deployments configure the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg)

	logger.Info().Str("db", cfg.DBPath).Msg("initializing document store")
	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("init db")
	}
	defer db.Close()

	orderRepo := repository.NewOrderRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	partyRepo := repository.NewPartyRepo(db)
	fileRepo := repository.NewFileRepo(db)

	generator := remit.NewGenerator(repository.NewDocumentStore(db))
	generator.SetNamePrefixLen(cfg.OrderNamePrefixLen)

	// Seed the store on first start so the API has working data.
	ctx := context.Background()
	count, err := orderRepo.Count(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("count payment orders")
	}
	if count == 0 {
		ds, err := seed.Load(cfg.SeedPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.SeedPath).Msg("fixture not loaded, starting empty")
		} else if err := seed.Apply(ctx, seed.Repositories{
			Orders:  orderRepo,
			Entries: entryRepo,
			Parties: partyRepo,
		}, ds, logger); err != nil {
			logger.Fatal().Err(err).Msg("seed document store")
		}
	} else {
		logger.Info().Int("payment_orders", count).Msg("document store already populated, skipping seed")
	}

	router := api.NewRouter(orderRepo, fileRepo, generator, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("bank remittance file service listening")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
