package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"contacts/internal/config"
	"contacts/internal/db"
	"contacts/internal/logger"
	"contacts/internal/repository"
	"contacts/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, db.Options{MaxOpenConns: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	reqs, err := loadContacts(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("failed to load seed file")
	}
	log.Info().Int("count", len(reqs)).Str("file", cfg.SeedFile).Msg("loaded seed contacts")

	svc := service.NewContactService(repository.NewContactRepository(gormDB), service.NewContactValidator())
	result, err := svc.Import(context.Background(), reqs)
	if err != nil {
		log.Fatal().Err(err).Int("created", result.Created).Msg("seed aborted")
	}

	log.Info().
		Int("created", result.Created).
		Int("duplicates", result.Duplicates).
		Int("invalid", result.Invalid).
		Msg("seed completed")
}

// loadContacts reads a JSON array of contacts from path.
func loadContacts(path string) ([]service.CreateContactRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var reqs []service.CreateContactRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return reqs, nil
}
