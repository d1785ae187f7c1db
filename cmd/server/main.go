package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forecast-inference-service/internal/adapters/primary/http/handlers"
	"forecast-inference-service/internal/adapters/primary/http/middleware"
	"forecast-inference-service/internal/adapters/secondary/forecaster"
	"forecast-inference-service/internal/adapters/secondary/postgres"
	"forecast-inference-service/internal/config"
	output "forecast-inference-service/internal/core/ports/output"
	"forecast-inference-service/internal/core/services"
	"forecast-inference-service/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	lifecycle := services.NewLifecycle()

	// Load the model before anything serves. A server with no model must not
	// come up, so load failure is fatal and the exit code is non-zero.
	log.Infof("loading model artifact from %s", cfg.Model.Path)
	predictor, err := forecaster.LoadWithRetry(
		context.Background(), cfg.Model.Path,
		uint64(cfg.Model.LoadRetries), cfg.Model.LoadBackoff,
	)
	if err != nil {
		lifecycle.Stop()
		log.Fatalf("load model artifact: %v", err)
	}
	defer predictor.Close()

	meta := predictor.Metadata()
	log.WithFields(log.Fields{
		"model_name":        meta.ModelName,
		"model_version":     meta.ModelVersion,
		"model_type":        meta.ModelType,
		"freq":              meta.Freq.String(),
		"prediction_length": meta.PredictionLength,
	}).Info("model artifact loaded")

	// Prediction audit log (Optional - based on config)
	var auditLog output.PredictionLogRepository
	if cfg.AuditLog.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.AuditLog.DSN())
		if err != nil {
			log.Fatalf("parse audit log db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.AuditLog.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.AuditLog.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.AuditLog.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create audit log db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping audit log db: %v", err)
		}
		auditLog = postgres.NewPredictionLogRepository(pool)
		log.Info("prediction audit log enabled")
	} else {
		log.Info("prediction audit log disabled")
	}

	m := metrics.New()
	m.SetModelInfo(meta)

	inferenceSvc := services.NewInferenceService(
		predictor, lifecycle, auditLog,
		cfg.Server.MaxConcurrent, cfg.Server.RequestTimeout,
	)

	h := handlers.New(inferenceSvc, lifecycle)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(m), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Healthz)
	router.GET("/readyz", h.Readyz)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	lifecycle.MarkReady()

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown: stop admitting requests, drain in-flight ones up to
	// the grace timeout, then close the listener.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, draining")

	if !lifecycle.Drain(cfg.Server.ShutdownTimeout) {
		log.Warn("drain grace period expired with requests still in flight")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
	}

	lifecycle.Stop()
	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
