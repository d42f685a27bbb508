// cmd/stemcelld/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/FairForge/stemcell/internal/api"
	"github.com/FairForge/stemcell/internal/config"
	"github.com/FairForge/stemcell/internal/logger"
	"github.com/FairForge/stemcell/internal/metrics"
	"github.com/FairForge/stemcell/internal/runtimes"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("STEMCELL_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stemcelld: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)

	log, err := logger.New(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stemcelld: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// The manifest is read once at startup; changing it requires a restart.
	raw, err := os.ReadFile(cfg.Manifest.Path) // #nosec G304 - path comes from the operator
	if err != nil {
		log.Fatal("failed to read runtime manifest", zap.String("path", cfg.Manifest.Path), zap.Error(err))
	}

	resolved, err := runtimes.Resolve(raw, cfg.Manifest.ResolverConfig())
	metrics.RecordResolution(err)
	if err != nil {
		log.Fatal("failed to resolve runtime manifest", zap.String("path", cfg.Manifest.Path), zap.Error(err))
	}
	metrics.RecordRuntimes(resolved)

	log.Info("runtime manifest resolved",
		zap.Strings("kinds", resolved.KnownContainerRuntimes()),
		zap.Int("blackboxes", len(resolved.BlackboxImages())),
		zap.Int("stem_cell_pools", len(resolved.StemCells())),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.NewServer(resolved, log).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("shutdown error", zap.Error(err))
		}
	}()

	log.Info("stemcelld listening", zap.Int("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
}
