// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package services adapts server components to suture.Service.

Each wrapper turns a component's own lifecycle (ListenAndServe/Shutdown, a
polling loop) into Serve(ctx) and names itself through fmt.Stringer so
supervisor logs identify it.

HTTPServerService runs an *http.Server and drains it on cancellation.

StoreProbeService pings the session store on an interval. Failures are logged
on the transition only, and each ping goes through the engine's store circuit
breaker so the breaker state stays current between requests.

WebSocketHubService runs the event stream hub, which closes its clients on
cancellation.

The event router needs no wrapper: eventprocessor.Router implements Serve and
String directly.
*/
package services
