// Package vocinoservice wires the vocino HTTP service together.
package vocinoservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vocino/vocino/internal/api"
	"github.com/vocino/vocino/internal/audio"
	"github.com/vocino/vocino/internal/config"
	"github.com/vocino/vocino/internal/health"
	"github.com/vocino/vocino/internal/logger"
	"github.com/vocino/vocino/internal/store"
	"github.com/vocino/vocino/internal/store/memstore"
	mongostore "github.com/vocino/vocino/internal/store/mongo"
)

// Run starts the vocino HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("vocino")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Str("audio_dir", cfg.AudioDir).
		Msg("Vocino service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	mat := audio.NewMaterializer(st, cfg.AudioDir, log)

	// Health checkers: store probe plus the service aggregate.
	storeChecker := store.NewStoreHealthChecker(st, log, 2*time.Second)
	go storeChecker.Start(ctx, 30*time.Second)
	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	go svcHealth.Start(ctx, 30*time.Second)

	router := api.NewRouter(api.Deps{
		Store:            st,
		Materializer:     mat,
		Log:              log,
		ServiceIsHealthy: svcHealth.IsHealthy,
		StoreIsHealthy:   storeChecker.IsHealthy,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore builds the configured store driver.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, err := mongostore.Open(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return mongostore.New(ctx, client, cfg.MongoDatabase)
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
}
