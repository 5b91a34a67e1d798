package service

import (
	"context"
	"errors"

	"github.com/deppfellow/contact-form/internal/metrics"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/deppfellow/contact-form/internal/validation"
	"github.com/rs/zerolog"
)

// Kind classifies why a submission was rejected.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindStorage
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// FailedToStoreMessage is reported when the store accepted a create but
// returned no record for it.
const FailedToStoreMessage = "Failed to store submission"

// SubmitError is returned by Submit. Message is safe to show to clients.
type SubmitError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

type submissionCreator interface {
	Create(ctx context.Context, form model.FormData) ([]model.Record, error)
}

// Notifier is told about every stored submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, submission *model.SubmissionResponse) error
}

type SubmissionService struct {
	repo     submissionCreator
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zerolog.Logger
}

// NewSubmissionService wires the service. notifier and m may be nil.
func NewSubmissionService(repo submissionCreator, notifier Notifier, m *metrics.Metrics, logger *zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Submit validates data, stores it as one new submission and returns
// the stored id together with the fields exactly as submitted.
func (s *SubmissionService) Submit(ctx context.Context, data model.FormData) (*model.SubmissionResponse, error) {
	if err := validation.ValidateForm(data); err != nil {
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return nil, &SubmitError{Kind: KindValidation, Message: err.Error(), Err: err}
	}

	records, err := s.repo.Create(ctx, data)
	if err != nil {
		s.metrics.ObserveSubmission(metrics.OutcomeStoreFail)
		return nil, &SubmitError{Kind: KindStorage, Message: "Database error: " + err.Error(), Err: err}
	}

	if len(records) == 0 {
		s.metrics.ObserveSubmission(metrics.OutcomeInternal)
		return nil, &SubmitError{
			Kind:    KindInternal,
			Message: FailedToStoreMessage,
			Err:     errors.New("store returned no records"),
		}
	}

	s.metrics.ObserveSubmission(metrics.OutcomeStored)
	resp := model.NewSubmissionResponse(records[0].ID, data)

	s.logger.Info().
		Str("submission_id", resp.ID).
		Msg("submission stored")

	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, resp); err != nil {
			s.metrics.NotificationFailed()
			s.logger.Warn().
				Err(err).
				Str("submission_id", resp.ID).
				Msg("failed to enqueue submission notification")
		}
	}

	return resp, nil
}
