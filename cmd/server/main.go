// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

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

	"github.com/alfainternational/ma-sub000/internal/api"
	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/database"
	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/eventprocessor"
	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/supervisor"
	"github.com/alfainternational/ma-sub000/internal/supervisor/services"
	"github.com/alfainternational/ma-sub000/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const storeProbeInterval = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logging.Init(cfg.Logging)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("db_driver", cfg.Database.Driver).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting assessment server")

	store, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	// Consumed events are forwarded to event stream clients.
	hub := websocket.NewHub()
	system, err := eventprocessor.NewSystem(cfg, hub.BroadcastEvent)
	if err != nil {
		return fmt.Errorf("start event system: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := system.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("Error closing event system")
		}
	}()

	analyzer, err := engine.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}
	svc := engine.NewService(analyzer, store, cfg.Engine, engine.WithPublisher(system.Bus))

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}
	router := api.NewRouter(
		api.NewHandler(svc, version).WithEventStream(hub, cfg.Server.CORSOrigins),
		api.NewChiMiddleware(api.MiddlewareConfigFrom(cfg.Server)),
	)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddDataService(services.NewStoreProbeService(svc, storeProbeInterval))
	tree.AddMessagingService(system.Router)
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, s := range unstopped {
			logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Server stopped")
	return nil
}
