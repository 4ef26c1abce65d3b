package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/api"
	"github.com/linguanest/lingua-back/internal/app"
	"github.com/linguanest/lingua-back/internal/config"
	"github.com/linguanest/lingua-back/internal/cron"
	"github.com/linguanest/lingua-back/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg := config.Load()
	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	if err := db.InitDB(cfg.DBUrl); err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	ctx := context.Background()
	if err := db.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}
	if err := db.SeedTeachers(ctx); err != nil {
		logger.Fatal("teacher seed failed", zap.Error(err))
	}

	jobs := cron.StartJobs(cfg, logger)
	defer jobs.Stop()

	r := api.SetupRouter(cfg, logger)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
