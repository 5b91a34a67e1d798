// Package errs defines custom error types and utilities.
//
// Its purpose is to carry an HTTP status and a client-facing message
// from wherever a request fails to the global error handler, so every
// failure reaches the client in the same `{"error": "..."}` shape.
package errs
