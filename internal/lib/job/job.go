// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"

	"github.com/deppfellow/contact-form/internal/config"
	"github.com/deppfellow/contact-form/internal/lib/email"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type mailer interface {
	SendSubmissionReceivedEmail(ctx context.Context, to string, submission model.SubmissionResponse) error
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	client enqueuer
	closer interface{ Close() error }
	server *asynq.Server

	mailer    mailer
	recipient string

	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks more worker share; submission
// notifications run on "default".
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		client:    client,
		closer:    client,
		server:    server,
		mailer:    email.NewClient(cfg, logger),
		recipient: cfg.Notify.Recipient,
		logger:    logger,
	}
}

// Start registers task handlers and starts the worker server.
// asynq.Server.Start returns once workers are running.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSubmissionReceived, j.handleSubmissionReceivedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if j.closer != nil {
		if err := j.closer.Close(); err != nil {
			j.logger.Warn().Err(err).Msg("failed to close job client")
		}
	}
}
