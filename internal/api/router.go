package api

import (
	"spendaily/internal/api/handlers"
	"spendaily/internal/realtime"
	"spendaily/pkg/auth"
	"spendaily/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	transactionHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	goalHandler *handlers.SavingsGoalHandler,
	hub *realtime.Hub,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Auth routes
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Get("/me", middleware.AuthMiddleware(jwtManager, appLogger), authHandler.Me)

	// Protected API routes
	api := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", categoryHandler.Create)

	api.Get("/transactions", transactionHandler.List)
	api.Get("/transactions/range", transactionHandler.ListByDateRange)
	api.Post("/transactions", transactionHandler.Create)
	api.Get("/transactions/:id", transactionHandler.Get)
	api.Patch("/transactions/:id", transactionHandler.Update)
	api.Delete("/transactions/:id", transactionHandler.Delete)

	api.Get("/budget-settings", budgetHandler.GetSettings)
	api.Post("/budget-settings", budgetHandler.UpsertSettings)

	api.Get("/savings-goals", goalHandler.List)
	api.Post("/savings-goals", goalHandler.Create)
	api.Patch("/savings-goals/:id", goalHandler.Patch)
	api.Delete("/savings-goals/:id", goalHandler.Delete)

	api.Get("/daily-budget", budgetHandler.DailyBudget)

	// Realtime channel
	app.Get("/ws",
		realtime.UpgradeRequired,
		middleware.WebsocketAuthMiddleware(jwtManager, appLogger),
		hub.Handler(),
	)

	return app
}
