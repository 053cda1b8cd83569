package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/internal/router"
	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/httpserver"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/requestid"
)

const serviceName = "localekit"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	// The Secure flag stays off in development so cookies work over plain
	// http on localhost.
	cookies := cookie.New(cookie.WithSecure(cfg.IsProduction()))

	handler := router.New(cfg, log, cookies)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithReadTimeout(cfg.ReadTimeout),
		httpserver.WithWriteTimeout(cfg.WriteTimeout),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)

	if err := srv.Run(context.Background(), handler); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
