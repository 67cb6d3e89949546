package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devtools/backend/internal/config"
	"devtools/backend/internal/handler"
	"devtools/backend/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := observability.InitLogger("devtools", cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := runGracefulShutdown(srv, cfg.ShutdownTimeout, logger)

	logger.Info().Str("addr", cfg.Addr).Str("env", cfg.AppEnv).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-done
	logger.Info().Msg("Server stopped")
}

func newRouter(cfg config.Config, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(observability.RequestLogger(logger))
	if cfg.MetricsEnabled {
		observability.RegisterMetrics()
		r.Use(observability.RequestMetricsMiddleware())
	}
	r.Use(observability.Recovery(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	if err := r.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		logger.Fatal().Err(err).Msg("Invalid trusted proxies")
	}

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	handler.Register(r)
	return r
}

func runGracefulShutdown(srv *http.Server, timeout time.Duration, logger zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info().Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Server shutdown error")
		}
		close(done)
	}()

	return done
}
