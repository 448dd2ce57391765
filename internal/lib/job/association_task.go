package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// TaskAssociationChanged is the task type stored in Redis for relation changes.
const TaskAssociationChanged = "association:changed"

// NewAssociationChangedTask serializes event into an audit task.
func NewAssociationChangedTask(event model.AssociationEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal association event")
	}

	return asynq.NewTask(
		TaskAssociationChanged,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}
