package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/contact-form/internal/model"
	"github.com/hibiken/asynq"
)

// TaskSubmissionReceived is the job type name stored in Redis.
const TaskSubmissionReceived = "email:submission_received"

// SubmissionReceivedPayload is the JSON payload for TaskSubmissionReceived.
type SubmissionReceivedPayload struct {
	Submission model.SubmissionResponse `json:"submission"`
}

// NewSubmissionReceivedTask builds a notification task for a stored
// submission. It retries up to 3 times and times out after 30 seconds.
func NewSubmissionReceivedTask(submission model.SubmissionResponse) (*asynq.Task, error) {
	payload, err := json.Marshal(SubmissionReceivedPayload{Submission: submission})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskSubmissionReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifySubmission enqueues a notification for submission.
func (j *JobService) NotifySubmission(ctx context.Context, submission *model.SubmissionResponse) error {
	task, err := NewSubmissionReceivedTask(*submission)
	if err != nil {
		return err
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("submission_id", submission.ID).
		Msg("enqueued submission notification")
	return nil
}
