package main

import (
	"context"
	"time"

	"github.com/clothyvs/dashboard-backend/internal/config"
	"github.com/clothyvs/dashboard-backend/internal/database"
	"github.com/clothyvs/dashboard-backend/internal/logger"
	"github.com/clothyvs/dashboard-backend/internal/service"
	"github.com/rs/zerolog"
)

// create-admin seeds the default dashboard administrator. It is safe to run
// repeatedly: an existing account with the same email is left untouched.
// Edit SEED_ADMIN_* in the environment or .env before running.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.MustLoad()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.SeedAdmin.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid seed admin configuration")
		return
	}

	// ─── Initialize Service ────────────────────────────────────────────
	connector := database.NewMongoConnector(cfg, log)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	provisioner := service.NewAdminProvisioner(connector, hasher, cfg.SeedAdmin, log)

	// ─── Provision ─────────────────────────────────────────────────────
	// Failures are logged by Run; this is a one-shot bootstrap, not retried.
	provisioner.Run(context.Background())
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
