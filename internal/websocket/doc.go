// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package websocket streams assessment events to connected clients.

The event router consumes published events and hands each one to
Hub.BroadcastEvent, which fans it out to every client connected to
GET /api/v1/events/ws. A client may pass ?session_id= to receive only
that session's events.

Key Components:

  - Hub: owns the client set and the broadcast queue; runs under the
    supervisor via RunWithContext
  - Client: one connection with a read pump and a write pump
  - Message: the JSON frame, {"type", "session_id", "data"}

Frames:

	{"type":"status_changed","session_id":"…","data":{…AssessmentEvent…}}
	{"type":"analyzed","session_id":"…","data":{…AssessmentEvent…}}
	{"type":"pong","data":null}

Clients may send {"type":"ping"} and receive a pong. The server pings
every pingPeriod and drops connections that miss pongWait.

Backpressure:

Broadcast never blocks. When the hub queue is full the message is dropped
and logged; when a client's send buffer is full the client is
disconnected.
*/
package websocket
