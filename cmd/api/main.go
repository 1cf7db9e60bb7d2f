package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/samirrijal/dronegeo/internal/adapters/http"
	natsadapter "github.com/samirrijal/dronegeo/internal/adapters/nats"
	"github.com/samirrijal/dronegeo/internal/adapters/valkey"
	"github.com/samirrijal/dronegeo/internal/core/ports"
	"github.com/samirrijal/dronegeo/internal/core/usecases"
	"github.com/samirrijal/dronegeo/internal/pkg/config"
	"github.com/samirrijal/dronegeo/internal/pkg/logging"
	"github.com/samirrijal/dronegeo/internal/pkg/telemetry"
)

func main() {
	// Local overrides; real environment variables win
	_ = godotenv.Load(".env")

	cfg, err := config.Load("dronegeo-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	deps := &http.Dependencies{
		Settings: http.Settings{
			UID:            cfg.Service.UID,
			ExternalURL:    cfg.Service.ExternalURL,
			RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
			RateLimit:      cfg.Server.RateLimit,
		},
	}

	// Region result cache (optional)
	var cache ports.CacheService
	if cfg.Valkey.Enabled {
		c, err := valkey.New(cfg.Valkey.Addr)
		if err != nil {
			slog.Warn("valkey unavailable", "error", err)
		} else {
			defer c.Close()
			cache = c
			deps.Cache = c
		}
	}

	// Region check events (optional)
	var events ports.EventPublisher
	if cfg.NATS.Enabled {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable", "error", err)
		} else {
			defer pub.Close()
			events = pub
			deps.NATS = pub.Conn()
		}
	}

	deps.Positions = usecases.NewPositionService(usecases.GeometryConfig{
		CloseThreshold:  cfg.Geometry.CloseThreshold,
		StepSize:        cfg.Geometry.StepSize,
		CacheTTLSeconds: cfg.Valkey.TTL,
	}, cache, events)

	app := fiber.New(fiber.Config{
		ReadTimeout:           time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:             1024 * 1024, // 1 MB max request body
		AppName:               "Drone Geometry API",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       3600,
	}))

	http.SetupRoutes(app, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr,
			"close_threshold", cfg.Geometry.CloseThreshold,
			"step_size", cfg.Geometry.StepSize,
			"cache", deps.Cache != nil,
			"events", deps.NATS != nil,
		)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
