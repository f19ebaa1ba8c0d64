package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendaily/internal/api"
	"spendaily/internal/api/handlers"
	"spendaily/internal/events"
	"spendaily/internal/realtime"
	"spendaily/internal/repository"
	"spendaily/internal/service"
	"spendaily/pkg/auth"
	"spendaily/pkg/config"
	"spendaily/pkg/logger"
	"spendaily/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting spendaily service")

	// Initialize database
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Bootstrap(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	settingsRepo := repository.NewBudgetSettingsRepository(db, appLogger)
	goalRepo := repository.NewSavingsGoalRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Event bus and websocket hub. Every subscriber sees every mutation
	// event; the hub fans them out to connected clients.
	bus := events.NewBus()
	hub := realtime.NewHub(appLogger)
	go hub.Run(ctx)
	bus.Subscribe(hub.Broadcast)

	// Initialize services
	authService := service.NewAuthService(userRepo, categoryRepo, settingsRepo, jwtManager, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	txService := service.NewTransactionService(txRepo, bus, appLogger)
	budgetService := service.NewBudgetService(settingsRepo, txRepo, goalRepo, bus, appLogger)
	goalService := service.NewSavingsGoalService(goalRepo, bus, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	goalHandler := handlers.NewSavingsGoalHandler(goalService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, categoryHandler, txHandler, budgetHandler, goalHandler, hub, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
