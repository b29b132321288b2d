package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/socialnet/internal/client/cli"
	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/config"
	"github.com/dmitrijs2005/socialnet/internal/client/metrics"
	"github.com/dmitrijs2005/socialnet/internal/filex"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()

	if _, err := filex.EnsureParentDir(cfg.LogFile); err != nil {
		log.Fatalf("log dir: %v", err)
	}
	logger, logCloser := logging.NewFileLogger(logging.FileOptions{Path: cfg.LogFile, Level: cfg.LogLevel})
	defer logCloser.Close()

	if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		log.Fatalf("database dir: %v", err)
	}
	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer repos.Close()

	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(ctx, cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	logger.Info(ctx, "starting client", "server", cfg.ServerURL, "database", cfg.DatabasePath)

	api := client.NewHTTPClient(cfg.Endpoints, cfg.RequestTimeout, logger)
	app := cli.NewApp(api, repos.LocalStorage, logger, os.Stdin, os.Stdout)

	app.Run(ctx)

	logger.Info(ctx, "client stopped")
}

func startMetricsServer(ctx context.Context, addr string, logger logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server failed", "error", err)
		}
	}()
	return srv
}
