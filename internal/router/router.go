package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lingora-app/lingora-api/internal/config"
	"github.com/lingora-app/lingora-api/internal/handler"
	"github.com/lingora-app/lingora-api/internal/middleware"
	"github.com/lingora-app/lingora-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AccountHandler   *handler.AccountHandler
	LessonHandler    *handler.LessonHandler
	WalletHandler    *handler.WalletHandler
	PayoutHandler    *handler.PayoutHandler
	CommunityHandler *handler.CommunityHandler
	StatsHandler     *handler.StatsHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AccountHandler != nil {
		accounts := api.Group("/accounts")
		accounts.Use("/auth/login", middleware.RateLimit("login", 10, time.Minute))
		deps.AccountHandler.Register(accounts)
	}

	if deps.LessonHandler != nil {
		deps.LessonHandler.Register(api.Group("/lessons", jwtMiddleware))
	}

	if deps.WalletHandler != nil {
		deps.WalletHandler.Register(api.Group("/wallet", jwtMiddleware))
	}

	if deps.PayoutHandler != nil {
		deps.PayoutHandler.Register(api.Group("/payouts", jwtMiddleware))
	}

	if deps.CommunityHandler != nil {
		deps.CommunityHandler.Register(api.Group("/community", jwtMiddleware))
	}

	if deps.StatsHandler != nil {
		deps.StatsHandler.Register(api)
	}

	// Admin surface: vetting, payout decisions, moderation.
	admin := app.Group("/api/admin", jwtMiddleware, middleware.RequireRole("admin"))
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterAdmin(admin.Group("/accounts"))
	}
	if deps.PayoutHandler != nil {
		deps.PayoutHandler.RegisterAdmin(admin.Group("/payouts"))
	}
	if deps.CommunityHandler != nil {
		deps.CommunityHandler.RegisterAdmin(admin.Group("/community"))
	}
}
