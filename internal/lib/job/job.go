// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - the API enqueues tasks (producer) through asynq.Client
//   - a worker server processes them (consumer) through asynq.Server
//
// Every committed change to the cafe/tienda relation is published here as an
// association:changed task and written to the audit log by a worker.
package job

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/config"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Queue names and their share of the worker pool.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis instance in cfg.
//
// Concurrency 10 is split across queues by weight (6/3/1), so audit
// tasks on the low queue never starve request-driven work.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAssociationChanged, j.handleAssociationChangedTask)
	return mux
}

// Start registers the handlers and starts the workers in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return errors.Wrap(err, "start job server")
	}
	return nil
}

// Stop waits for in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}

// PublishAssociationChange enqueues an association:changed task for event.
func (j *JobService) PublishAssociationChange(ctx context.Context, event model.AssociationEvent) error {
	task, err := NewAssociationChangedTask(event)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return errors.Wrapf(err, "enqueue %s", TaskAssociationChanged)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("action", string(event.Action)).
		Msg("association change enqueued")

	return nil
}
