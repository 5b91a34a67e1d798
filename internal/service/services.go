// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives decoded data from the handler, validates it, performs
// business operations, and calls repository methods to interact
// with the store.
package service

import (
	"github.com/deppfellow/contact-form/internal/lib/job"
	"github.com/deppfellow/contact-form/internal/repository"
	"github.com/deppfellow/contact-form/internal/server"
)

type Services struct {
	Submission *SubmissionService
	Job        *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier Notifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Submission: NewSubmissionService(repos.Submission, notifier, s.Metrics, s.Logger),
		Job:        s.Job,
	}, nil
}
