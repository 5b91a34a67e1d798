package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleSubmissionReceivedTask emails the configured recipient about a
// stored submission. Returning an error makes Asynq retry the task.
func (j *JobService) handleSubmissionReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p SubmissionReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal submission payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.recipient == "" {
		j.logger.Warn().
			Str("submission_id", p.Submission.ID).
			Msg("No notification recipient configured, dropping task")
		return nil
	}

	j.logger.Info().
		Str("type", "submission_received").
		Str("submission_id", p.Submission.ID).
		Msg("Processing submission notification task")

	if err := j.mailer.SendSubmissionReceivedEmail(ctx, j.recipient, p.Submission); err != nil {
		j.logger.Error().
			Str("type", "submission_received").
			Str("submission_id", p.Submission.ID).
			Err(err).
			Msg("Failed to send submission notification")
		return err
	}

	j.logger.Info().
		Str("type", "submission_received").
		Str("submission_id", p.Submission.ID).
		Msg("Successfully sent submission notification")

	return nil
}
