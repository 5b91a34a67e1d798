// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request correlation, request logging, CORS, tracing
// and panic recovery. It also owns the global error handler that
// turns every failure into a {"error": "..."} response.
package middleware
