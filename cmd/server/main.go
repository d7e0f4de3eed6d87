package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/auth"
	"github.com/taskflow-dev/taskflow-api/internal/config"
	"github.com/taskflow-dev/taskflow-api/internal/constants"
	"github.com/taskflow-dev/taskflow-api/internal/database"
	"github.com/taskflow-dev/taskflow-api/internal/router"
	"github.com/taskflow-dev/taskflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		zl.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		zl.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.SeedAdmin(cfg.Admin); err != nil {
		zl.Fatal().Err(err).Msg("failed to seed bootstrap admin")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, constants.TokenTTL)
	r := router.New(database.GetDB(), tokens)

	zl.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal().Err(err).Msg("server stopped")
	}
}
