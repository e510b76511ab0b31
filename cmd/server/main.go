package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"hirely.app/api/common/id"
	"hirely.app/api/common/logger"
	"hirely.app/api/common/otel"
	"hirely.app/api/core/config"
	"hirely.app/api/core/db"
	"hirely.app/api/internal/http/middleware"
	httprouter "hirely.app/api/internal/http/router"
	"hirely.app/api/internal/queue"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/storage"
	"hirely.app/api/internal/store"
)

// streamBlock doubles as the SSE keepalive interval.
const streamBlock = 25 * time.Second

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "hirely api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if cfg.AutoMigrate {
		if err := database.MigrateUp(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "migrations applied")
	}

	// Both backends are optional. The interfaces stay untyped nil when a
	// backend is off so the services can tell.
	var (
		publisher service.NotificationPublisher
		stream    *queue.Reader
		objects   service.ObjectStorage
	)

	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		producer := queue.NewProducer(redisClient, slog.Default())
		defer producer.Close()

		publisher = producer
		stream = queue.NewReader(redisClient, streamBlock)
		slog.InfoContext(ctx, "redis connected")
	} else {
		slog.InfoContext(ctx, "redis disabled, notifications will not be streamed")
	}

	if cfg.Storage.Enabled() {
		bucket, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			slog.ErrorContext(ctx, "failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		objects = bucket
		slog.InfoContext(ctx, "object storage ready", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	} else {
		slog.InfoContext(ctx, "object storage disabled, uploads will return 503")
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), cfg, publisher, objects)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := httprouter.RouterConfig{
		SessionTTL:   cfg.Session.TTL,
		SecureCookie: cfg.IsProduction(),
		Ready:        database.Ping,
	}
	if stream != nil {
		routerCfg.Stream = stream
	}

	router := setupRouter(cfg, services, routerCfg)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, routerCfg httprouter.RouterConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	httprouter.SetupRoutes(router, services, routerCfg)

	return router
}

const banner = `
██╗  ██╗██╗██████╗ ███████╗██╗  ██╗   ██╗
██║  ██║██║██╔══██╗██╔════╝██║  ╚██╗ ██╔╝
███████║██║██████╔╝█████╗  ██║   ╚████╔╝
██╔══██║██║██╔══██╗██╔══╝  ██║    ╚██╔╝
██║  ██║██║██║  ██║███████╗███████╗██║
╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝
`
