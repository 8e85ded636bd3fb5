package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/Hashimp6/broperty/docs"
	"github.com/Hashimp6/broperty/internal/config"
	handlers "github.com/Hashimp6/broperty/internal/http/handler"
	"github.com/Hashimp6/broperty/internal/http/middleware"
	"github.com/Hashimp6/broperty/internal/logger"
	tracing "github.com/Hashimp6/broperty/internal/otel"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/service"
	"github.com/Hashimp6/broperty/internal/storage"
	"github.com/Hashimp6/broperty/internal/whatsapp"
)

// @title Broperty API
// @version 1.0
// @description Property listings with geo-ranked search, showings and a WhatsApp assistant.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}

	st, err := openStores(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.close()

	// Media uploads answer 503 when no bucket is configured
	var objStore storage.Storage = storage.Unavailable{}
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			zl.Fatal("failed to initialize object storage", zap.Error(err))
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zl.Fatal("failed to register http metrics", zap.Error(err))
	}
	searchMetrics, err := service.NewSearchMetrics(reg)
	if err != nil {
		zl.Fatal("failed to register search metrics", zap.Error(err))
	}

	defaults := search.Defaults{
		RadiusKm:    cfg.Search.DefaultRadiusKm,
		PageSize:    cfg.Search.DefaultPageSize,
		MaxPageSize: cfg.Search.MaxPageSize,
	}
	propertySvc := service.NewPropertyService(st.properties, st.users, objStore, defaults, searchMetrics, zl)
	showingSvc := service.NewShowingService(st.showings, st.properties, st.users)
	chatbotSvc := service.NewChatbotService(st.properties, whatsapp.NewClient(cfg.WhatsApp), cfg.WhatsApp.VerifyToken, zl)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    64 << 20,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zl))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Recover(zl))
	app.Use(middleware.Identity())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Store:      st.health,
		Properties: propertySvc,
		Showings:   showingSvc,
		Chatbot:    chatbotSvc,
		Gatherer:   reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		zl.Info("shutdown_started")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("http shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	zl.Info("server_starting", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))

	if err := app.Listen(addr); err != nil {
		zl.Error("failed to start server", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		zl.Warn("tracing shutdown failed", zap.Error(err))
	}
}
