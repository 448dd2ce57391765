package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// handleAssociationChangedTask writes one audit record per relation change.
//
// A malformed payload will never decode, so it is skipped instead of retried.
func (j *JobService) handleAssociationChangedTask(_ context.Context, t *asynq.Task) error {
	var event model.AssociationEvent
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		return fmt.Errorf("failed to unmarshal association event: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "audit").
		Str("action", string(event.Action)).
		Str("owner_type", event.OwnerType).
		Str("owner_id", event.OwnerID).
		Str("related_type", event.RelatedType).
		Strs("related_ids", event.RelatedIDs).
		Time("occurred_at", event.OccurredAt).
		Msg("association changed")

	return nil
}

// asynqLogger adapts zerolog to asynq.Logger so worker logs share the app format.
type asynqLogger struct {
	log zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{log: logger.With().Str("component", "jobs").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...any)  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...any)  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...any) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...any) { l.log.Fatal().Msg(fmt.Sprint(args...)) }
