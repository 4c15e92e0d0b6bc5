// Package api provides the REST API server for the bot control panel.
//
// Every REST operation is declared once in package contract. NewRouter walks
// that table and mounts one handler per route name, so a route without a
// handler (or a handler without a route) is a startup error rather than a
// silent 404.
//
// # Response Format
//
// Successful responses are the bare contract response type, for example a
// JSON array for list endpoints. There is no envelope.
//
// Error responses use the following format:
//
//	{
//	  "message": "Human-readable error message",
//	  "code": "validation_failed",
//	  "field": "isEnabled"
//	}
//
// The field member is present only for validation failures.
//
// # Extra Endpoints
//
// Besides the contract routes the router serves GET /api/health,
// GET /api/version, GET /metrics (Prometheus), the GET /api/logs/stream
// websocket and, when configured, the static web UI.
package api
