// Seeds the database with a demo account for local development: user
// "demo" with the default category set and starter budget settings.
package main

import (
	"context"
	"log"

	"spendaily/internal/models"
	"spendaily/internal/repository"
	"spendaily/pkg/auth"
	"spendaily/pkg/config"
	"spendaily/pkg/logger"
	"spendaily/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Bootstrap(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	settingsRepo := repository.NewBudgetSettingsRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if existing, _ := userRepo.GetByUsername(ctx, demoUsername); existing != nil {
		appLogger.Info("Demo user already exists, nothing to do",
			zap.String("username", demoUsername))
		return
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: demoUsername,
		Email:    demoEmail,
		Password: hashed,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	if _, err := categoryRepo.SeedDefaults(ctx, user.ID); err != nil {
		appLogger.Fatal("Failed to seed default categories", zap.Error(err))
	}

	if _, err := settingsRepo.Upsert(ctx, &models.BudgetSetting{
		UserID:               user.ID,
		MonthlyIncome:        decimal.NewFromInt(3000),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	}); err != nil {
		appLogger.Fatal("Failed to seed budget settings", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("username", demoUsername))
}
