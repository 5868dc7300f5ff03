// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

The tree has three layers so a failing layer restarts on its own:

	RootSupervisor ("ma-sub000")
	├── DataSupervisor ("data-layer")
	│   └── StoreProbeService
	├── MessagingSupervisor ("messaging-layer")
	│   └── eventprocessor.Router ("event-router")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, failure, backoff) are forwarded to slog
through sutureslog, and from there to zerolog via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.FromConfig(cfg))
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreProbeService(svc, 30*time.Second))
	tree.AddMessagingService(system.Router)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)

Serve blocks until ctx is canceled. Services get ShutdownTimeout to stop;
UnstoppedServiceReport lists the ones that did not.
*/
package supervisor
