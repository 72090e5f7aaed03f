package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ppandov/trail-service/internal/config"
	"github.com/ppandov/trail-service/internal/handlers"
	"github.com/ppandov/trail-service/internal/middleware"
	"github.com/ppandov/trail-service/internal/policy"
)

// Setup builds the routing table once at startup; nothing mutates it
// afterwards.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	trailHandler *handlers.TrailHandler,
	featureHandler *handlers.FeatureHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	users := app.Group("/users")

	// Login-specific rate limit: 10 req/min per IP (stricter)
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	users.Post("/login", loginLimiter, authHandler.Login)
	users.Post("/refresh", authHandler.Refresh)
	users.Post("/logout", authHandler.Logout)
	users.Get("/import_users", userHandler.ImportUsers)

	users.Get("/all",
		middleware.JWTProtected(cfg), middleware.RequireOperation(policy.ReadUser),
		userHandler.List)
	users.Post("/create",
		middleware.JWTProtected(cfg), middleware.RequireOperation(policy.WriteUser),
		userHandler.Create)
	users.Get("/:id",
		middleware.JWTProtected(cfg), middleware.RequireOperation(policy.ReadUser),
		userHandler.Get)
	users.Delete("/:id",
		middleware.JWTProtected(cfg), middleware.RequireOperation(policy.WriteUser),
		userHandler.Delete)

	trails := app.Group("/trails", middleware.JWTProtected(cfg))
	trails.Get("/", middleware.RequireOperation(policy.ReadTrailList), trailHandler.List)
	trails.Post("/", middleware.RequireOperation(policy.WriteTrail), trailHandler.Create)
	trails.Get("/:id", middleware.RequireOperation(policy.ReadTrailDetail), trailHandler.Get)
	trails.Put("/:id", middleware.RequireOperation(policy.WriteTrail), trailHandler.Update)
	trails.Delete("/:id", middleware.RequireOperation(policy.WriteTrail), trailHandler.Delete)
	trails.Post("/:id/features/:feature_id", middleware.RequireOperation(policy.WriteTrail), trailHandler.AttachFeature)
	trails.Delete("/:id/features/:feature_id", middleware.RequireOperation(policy.WriteTrail), trailHandler.DetachFeature)

	features := app.Group("/features", middleware.JWTProtected(cfg))
	features.Get("/", middleware.RequireOperation(policy.ReadFeature), featureHandler.List)
	features.Post("/", middleware.RequireOperation(policy.WriteFeature), featureHandler.Create)
	features.Delete("/:id", middleware.RequireOperation(policy.WriteFeature), featureHandler.Delete)
}
