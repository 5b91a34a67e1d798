package repository

import (
	"context"
	"time"

	"github.com/deppfellow/contact-form/internal/database"
	"github.com/deppfellow/contact-form/internal/metrics"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/rs/zerolog"
)

// SubmissionCollection is the collection every contact form submission
// is written to.
const SubmissionCollection = "submissions"

type SubmissionRepository struct {
	store   database.Store
	metrics *metrics.Metrics
	logger  *zerolog.Logger
	// slowThreshold of zero disables slow store call warnings.
	slowThreshold time.Duration
}

func NewSubmissionRepository(store database.Store, m *metrics.Metrics, logger *zerolog.Logger, slowThreshold time.Duration) *SubmissionRepository {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &SubmissionRepository{
		store:         store,
		metrics:       m,
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// Create stores form as a new submission document and returns what the
// store reports as created.
func (r *SubmissionRepository) Create(ctx context.Context, form model.FormData) ([]model.Record, error) {
	start := time.Now()
	records, err := r.store.Create(ctx, SubmissionCollection, form)
	elapsed := time.Since(start)

	r.metrics.ObserveStoreCreate(r.store.Name(), elapsed)
	if r.slowThreshold > 0 && elapsed > r.slowThreshold {
		r.logger.Warn().
			Str("driver", r.store.Name()).
			Str("collection", SubmissionCollection).
			Dur("duration", elapsed).
			Dur("threshold", r.slowThreshold).
			Msg("slow store call")
	}

	return records, err
}
