// Package api implements the request gateway for the banking REST API.
//
// Every call goes through Client.Request, which wraps the endpoint's
// uniform envelope contract:
//
//	{"status": "success"|"error", "message": "...", "data": {...}}
//
// Any non-2xx HTTP status or an "error" envelope is collapsed into a
// single *RequestError carrying the server's message and nothing else.
// Callers branch only on that error, never on HTTP status codes.
//
// The gateway is deliberately minimal: no retries, no backoff, no
// timeout handling. A failure is terminal for that call and surfaces
// immediately to the caller.
package api
