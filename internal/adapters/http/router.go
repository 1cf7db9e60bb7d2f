package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/dronegeo/internal/pkg/metrics"
	"github.com/samirrijal/dronegeo/internal/pkg/telemetry"
)

// SetupRoutes registers the REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(requestid.New())

	// Tracing must run before the request logger so the span is in the user context
	app.Use(telemetry.Middleware())
	app.Use(RequestIDLogMiddleware())
	app.Use(AccessLogMiddleware())

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Settings.rateLimit(),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return newError(c, fiber.StatusTooManyRequests, "rate_limited", "too many requests, please try again later")
		},
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	app.Use(ETagMiddleware())
	app.Use(CachingMiddleware())

	app.Get("/health", HealthHandler(deps))
	app.Get("/ready", ReadyHandler(deps))

	reqTimeout := deps.Settings.requestTimeout()
	v1 := app.Group("/api/v1")
	v1.Get("/", IndexHandler(deps))
	v1.Get("/uid", UIDHandler(deps))
	v1.Post("/distanceTo", timeout.NewWithContext(DistanceHandler(deps), reqTimeout))
	v1.Post("/isCloseTo", timeout.NewWithContext(IsCloseToHandler(deps), reqTimeout))
	v1.Post("/nextPosition", timeout.NewWithContext(NextPositionHandler(deps), reqTimeout))
	v1.Post("/isInRegion", timeout.NewWithContext(IsInRegionHandler(deps), reqTimeout))

	app.Post("/graphql", timeout.NewWithContext(GraphQLHandler(deps), reqTimeout))

	SetupDocs(app)

	// Region check relay only exists when NATS is configured
	if deps.NATS == nil {
		return
	}
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(RegionEventsHandler(deps.NATS)))
}
