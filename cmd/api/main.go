package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"doclib/docs"
	"doclib/internal/config"
	"doclib/internal/directory"
	handlers "doclib/internal/http/handler"
	"doclib/internal/http/middleware"
	"doclib/internal/logging"
	"doclib/internal/otel"
	"doclib/internal/seed"
	"doclib/internal/service"
	"doclib/internal/store"
	"doclib/internal/upload"
)

const shutdownTimeout = 10 * time.Second

// @title Document Library API
// @version 1.0
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "doclib: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment first; .env is auto-loaded if present.
	cfg := config.Load()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	gateway, closeGateway, err := openGateway(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGateway() //nolint:errcheck

	metrics := store.NewMetrics()
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("register store metrics: %w", err)
	}

	opts := []store.Option{
		store.WithLogger(logger),
		store.WithActor(cfg.Store.ActorID),
		store.WithActivityLimit(cfg.Store.ActivityLimit),
		store.WithMetrics(metrics),
	}
	if !cfg.Store.SeedDemo {
		opts = append(opts, store.WithSeed(seed.Empty))
	}
	st, err := store.Open(ctx, gateway, opts...)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	logger.Info("library store opened",
		zap.String("backend", cfg.Store.Backend),
		zap.Int("documents", len(st.Documents())),
		zap.Int("folders", len(st.Folders())),
	)

	svc := service.NewLibraryService(st, directory.New(seed.Users()), upload.New(cfg.Store.UploadMaxBytes), logger)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	// Multipart overhead on top of the largest accepted file.
	app := fiber.New(handlers.AppConfig(int(cfg.Store.UploadMaxBytes) + 1<<20))

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	handlers.RegisterRoutes(app, svc)

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

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info("http server listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("http shutdown failed", zap.Error(err))
	}
	return nil
}
