package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stwalsh4118/cadastre/internal/config"
	"github.com/stwalsh4118/cadastre/internal/database"
	"github.com/stwalsh4118/cadastre/internal/handlers"
	"github.com/stwalsh4118/cadastre/internal/logger"
	"github.com/stwalsh4118/cadastre/internal/metrics"
	"github.com/stwalsh4118/cadastre/internal/middleware"
	"github.com/stwalsh4118/cadastre/internal/observability"
	"github.com/stwalsh4118/cadastre/internal/registry"
	"github.com/stwalsh4118/cadastre/internal/repository"
	"github.com/stwalsh4118/cadastre/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	// regionParallelism bounds concurrent upstream calls per region tree request
	regionParallelism = 4
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting cadastre gateway", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"registry":    cfg.Registry.BaseURL,
	})

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal("Failed to register request validators", err, nil)
	}

	ctx := context.Background()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.Observability, handlers.APIVersion, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", err, map[string]interface{}{
			"endpoint": cfg.Observability.TracingEndpoint,
		})
	}
	defer shutdownTracer()

	// Registry client
	transport := registry.NewHTTPTransport(registry.TransportOptions{
		Timeout:          cfg.Registry.Timeout,
		MaxResponseBytes: cfg.Registry.MaxResponseBytes,
		UserAgent:        cfg.Registry.UserAgent,
	})
	resolver := registry.NewResolver(cfg.Registry.BaseURL)

	var opts []services.Option
	var m *metrics.Metrics
	if cfg.Observability.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		opts = append(opts, services.WithMetrics(m))
	}

	checks := map[string]handlers.Pinger{}
	var journalRepo repository.JournalRepository
	if cfg.Journal.Enabled {
		// Create database connection pool
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to journal database", err, map[string]interface{}{
				"host": cfg.Database.Host,
				"port": cfg.Database.Port,
				"name": cfg.Database.Name,
			})
		}
		defer db.Close()

		journalRepo = repository.NewJournalRepository(db)
		if err := journalRepo.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare lookup journal", err, nil)
		}

		log.Info("Lookup journal enabled", map[string]interface{}{
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.Name,
			"pool_min": cfg.Database.PoolMin,
			"pool_max": cfg.Database.PoolMax,
		})

		checks["journal"] = db
		opts = append(opts, services.WithJournal(journalRepo))
	}

	cadastreService := services.NewCadastreService(resolver, transport, log, opts...)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Tracing -> Logger -> Recovery -> CORS -> Metrics
	router.Use(middleware.RequestID())
	if cfg.Observability.TracingEnabled {
		router.Use(middleware.Tracing())
	}
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	if m != nil {
		router.Use(middleware.Metrics(m))
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(checks, cfg.Server.Env, resolver.BaseURL())
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	handlers.RegisterCadastreRoutes(v1, handlers.NewCadastreHandler(cadastreService, regionParallelism))
	if journalRepo != nil {
		handlers.RegisterJournalRoutes(v1, handlers.NewJournalHandler(journalRepo))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
