// Package repository handles all interactions with the store.
//
// Repositories bind a domain object to its collection so services
// never deal with collection names or store drivers directly.
package repository

import (
	"time"

	"github.com/deppfellow/contact-form/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Submission *SubmissionRepository
}

// NewRepositories builds every repository over the server's store.
func NewRepositories(s *server.Server) *Repositories {
	var slowThreshold time.Duration
	if s.Config != nil && s.Config.Observability != nil {
		slowThreshold = s.Config.Observability.Logging.SlowQueryThreshold
	}

	return &Repositories{
		Submission: NewSubmissionRepository(s.DB, s.Metrics, s.Logger, slowThreshold),
	}
}
