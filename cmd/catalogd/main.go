// Command catalogd serves the fitness permission catalog over HTTP so a
// bridge running in another process can fetch the kind ordinals and resolve
// permission requests to platform type identifiers.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arvarik/fitness-go/fitness"
)

const envFilePath = ".env"

func main() {
	envErr := godotenv.Load(envFilePath)

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if envErr != nil {
		logger.Debug(".env file not loaded, using environment variables", "err", envErr)
	}

	catalog := fitness.NewCatalog(
		fitness.WithPlatform(cfg.Platform),
		fitness.WithVersion(cfg.Version),
	)
	srv := newServer(catalog, logger, cfg.TrustProxy)

	ctx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	limiter := newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	go limiter.Run(ctx, limiterSweepInterval, limiterIdleTTL)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.routes(limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("catalogd listening",
			"addr", cfg.Addr,
			"platform", cfg.Platform.Name(),
			"version", cfg.Version.String(),
			"trust_proxy", cfg.TrustProxy,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "addr", cfg.Addr, "err", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
}
