package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hr360/assistant/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	chat *handlers.ChatHandler,
	resume *handlers.ResumeHandler,
	insights *handlers.InsightsHandler,
	applications *handlers.ApplicationHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Assistant chat
	v1.Post("/chat", authMW, chat.Chat)

	// Resume screening
	rg := v1.Group("/resumes", authMW)
	rg.Post("/analyze", resume.Analyze)
	rg.Get("/", resume.List)
	rg.Get("/:id", resume.Get)
	rg.Delete("/:id", resume.Delete)

	// Performance insights
	v1.Post("/insights/performance", authMW, insights.Performance)

	// Application tracking
	ag := v1.Group("/applications", authMW)
	ag.Post("/", applications.Apply)
	ag.Get("/", applications.List)
	ag.Get("/stats", applications.Stats)
	ag.Get("/:id", applications.Get)
	ag.Post("/:id/withdraw", applications.Withdraw)
}
