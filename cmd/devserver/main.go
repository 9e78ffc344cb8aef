package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"wakili/internal/config"
	"wakili/internal/http/handler"
	"wakili/internal/http/middleware"
	"wakili/internal/otel"
	"wakili/internal/repository/memory"
	"wakili/internal/service"
	"wakili/internal/storage"
)

// devserver is the in-memory reference backend for the Wakili document
// manager. It implements the same REST surface as the production backend so
// the dashboard and client tests can run against it locally. Nothing it
// stores survives a restart.
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// In-memory blob store and document records
	blobStore := storage.NewMemory()
	docRepo := memory.NewDocumentMemory()

	docSvc := service.NewDocumentService(blobStore, docRepo)
	caseSvc := service.NewFixtureCaseService()
	logSvc := service.NewMemoryLogService()

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(),
		BodyLimit:    int(cfg.DevServer.MaxUploadSize),
	})

	// Register global middleware.
	// RequestID adds/propagates X-Request-ID and stores it in context.
	app.Use(middleware.RequestID())
	// JSON logger for structured request logs.
	app.Use(middleware.Logger(os.Stdout))
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Register HTTP routes with injected services.
	handler.RegisterRoutes(app, docSvc, caseSvc, logSvc)

	addr := ":" + cfg.DevServer.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
