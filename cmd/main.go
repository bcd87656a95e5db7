// board-service — proxy gateway for the job-listing board.
//
// Serves GET /jobs and POST /jobs toward the remote jobs API, substituting
// the in-process fallback dataset whenever upstream is unreachable. The
// caller-facing surface never reports an upstream failure: list always
// answers 200 and create always answers 201.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jobgrid/board-service/internal/cache"
	"jobgrid/board-service/internal/config"
	"jobgrid/board-service/internal/gateway"
	"jobgrid/board-service/internal/scheduler"
	"jobgrid/board-service/internal/upstream"
)

func main() {
	// .env is a dev convenience; in deployment the process env is the source
	// of truth.
	_ = godotenv.Load()

	zapLog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zapLog.Sync()
	logger := zapLog.Sugar()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("config error", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	up := upstream.New(cfg.UpstreamURL, cfg.UpstreamTimeout, logger)

	// The listing cache is optional: without REDIS_URL every list request
	// goes straight to upstream (or the fallback dataset).
	var listing *cache.Listing
	if cfg.RedisURL != "" {
		listing, err = cache.New(ctx, cfg.RedisURL, cfg.CacheTTL, logger)
		if err != nil {
			logger.Warnw("redis unavailable, continuing without listing cache", "err", err)
			listing = nil
		} else {
			defer listing.Close()
		}
	}

	h := gateway.NewHandler(up, listing, logger)
	router := gateway.NewRouter(h, logger)

	var warm *scheduler.Scheduler
	if listing != nil {
		warm = scheduler.New(h, cfg.WarmIntervalHrs, logger)
		if err := warm.Start(ctx); err != nil {
			logger.Fatalw("scheduler error", "err", err)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infow("listening", "addr", srv.Addr, "upstream", cfg.UpstreamURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if warm != nil {
		warm.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnw("shutdown error", "err", err)
	}
	logger.Info("stopped")
}
