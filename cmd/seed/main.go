package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-account-service/config"
	"github.com/oksasatya/go-account-service/internal/application"
	"github.com/oksasatya/go-account-service/internal/container"
	"github.com/oksasatya/go-account-service/pkg/helpers"
)

// seed registers a demo account through the same service the API uses.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accounts, closeStore, err := container.OpenAccounts(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open account store: %v", err)
	}
	defer closeStore()

	svc := application.NewService(accounts, helpers.NewBcryptHasher(cfg.BcryptCost), logger)
	view, err := svc.Register(ctx, application.RegisterInput{
		Username: cfg.SeedUsername,
		Email:    cfg.SeedEmail,
		Password: cfg.SeedPassword,
	})
	switch {
	case errors.Is(err, application.ErrAccountExists):
		logger.WithField("email", cfg.SeedEmail).Info("seed account already exists")
	case err != nil:
		logger.WithError(err).Error("failed to seed account")
		return
	default:
		logger.WithFields(map[string]any{"id": view.ID, "username": view.Username, "email": view.Email}).Info("seeded account")
	}
}
