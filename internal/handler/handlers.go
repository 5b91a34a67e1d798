// Package handler is the HTTP entry point after the router.
//
// It decodes requests, calls the service layer and maps service
// outcomes to HTTP errors. All formatting of error bodies happens in
// the global error handler.
package handler

import (
	"github.com/deppfellow/contact-form/internal/server"
	"github.com/deppfellow/contact-form/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Submission *SubmissionHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Submission: NewSubmissionHandler(s, services.Submission),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
	}
}
