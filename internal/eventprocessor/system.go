// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// System bundles the bus, the router consuming it and the optional embedded
// NATS server.
type System struct {
	Bus    *Bus
	Router *Router
	Audit  *AuditHandler
	Server *EmbeddedServer
}

// NewSystem builds the event system from application config. When NATS is
// enabled but unavailable the in-process transport is used instead and a
// warning is logged.
func NewSystem(cfg *config.Config, onEvent EventFunc) (*System, error) {
	logger := NewWatermillLogger()
	busCfg := DefaultBusConfig()
	busCfg.TopicPrefix = cfg.Events.TopicPrefix

	sys := &System{}
	if cfg.NATS.Enabled {
		bus, srv, err := openNATS(&cfg.NATS, busCfg)
		if err != nil {
			logging.Warn().Err(err).Msg("NATS transport unavailable, using in-process event bus")
		} else {
			sys.Bus, sys.Server = bus, srv
		}
	}
	if sys.Bus == nil {
		sys.Bus = NewChannelBus(busCfg, logger)
	}

	routerCfg := DefaultRouterConfig()
	router, err := NewBusRouter(&routerCfg, sys.Bus, logger)
	if err != nil {
		return nil, errors.Join(err, sys.Close(context.Background()))
	}
	sys.Router = router
	sys.Audit = NewAuditHandler(onEvent)
	sys.Audit.Register(router, sys.Bus)

	logging.Info().
		Str("transport", sys.Bus.Transport()).
		Strs("topics", sys.Bus.Topics()).
		Msg("Event system initialized")
	return sys, nil
}

func openNATS(cfg *config.NATSConfig, busCfg BusConfig) (*Bus, *EmbeddedServer, error) {
	url := cfg.URL
	var srv *EmbeddedServer
	if cfg.Embedded {
		serverCfg := DefaultServerConfig()
		serverCfg.StoreDir = cfg.StoreDir
		serverCfg.Port = cfg.Port
		var err error
		srv, err = NewEmbeddedServer(&serverCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("start embedded NATS: %w", err)
		}
		url = srv.ClientURL()
	}

	natsCfg := DefaultNATSConfig(url)
	natsCfg.MaxReconnects = cfg.MaxReconnects
	if cfg.ReconnectWait > 0 {
		natsCfg.ReconnectWait = cfg.ReconnectWait
	}
	bus, err := NewNATSBus(natsCfg, busCfg, nil)
	if err != nil {
		if srv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = errors.Join(err, srv.Shutdown(ctx))
		}
		return nil, nil, err
	}
	return bus, srv, nil
}

// Close stops the router, the bus and the embedded server in that order.
func (s *System) Close(ctx context.Context) error {
	var errs []error
	if s.Router != nil {
		errs = append(errs, s.Router.Close())
	}
	if s.Bus != nil {
		errs = append(errs, s.Bus.Close())
	}
	if s.Server != nil {
		errs = append(errs, s.Server.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
