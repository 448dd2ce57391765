package job

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJobService(buf *bytes.Buffer) *JobService {
	logger := zerolog.New(buf)
	return &JobService{logger: &logger}
}

func TestNewAssociationChangedTask(t *testing.T) {
	event := model.AssociationEvent{
		Action:      model.AssociationReplaced,
		OwnerType:   model.EntityCafe,
		OwnerID:     "c1",
		RelatedType: model.EntityTienda,
		RelatedIDs:  []string{"t1", "t2"},
		OccurredAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	task, err := NewAssociationChangedTask(event)
	require.NoError(t, err)
	assert.Equal(t, TaskAssociationChanged, task.Type())

	var decoded model.AssociationEvent
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, event, decoded)
}

func TestHandleAssociationChangedTaskWritesAudit(t *testing.T) {
	var buf bytes.Buffer
	j := newTestJobService(&buf)

	task, err := NewAssociationChangedTask(model.AssociationEvent{
		Action:      model.AssociationAdded,
		OwnerType:   model.EntityTienda,
		OwnerID:     "t1",
		RelatedType: model.EntityCafe,
		RelatedIDs:  []string{"c9"},
	})
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "audit", record["type"])
	assert.Equal(t, "added", record["action"])
	assert.Equal(t, "t1", record["owner_id"])
	assert.Equal(t, []any{"c9"}, record["related_ids"])
}

func TestHandleAssociationChangedTaskSkipsBadPayload(t *testing.T) {
	var buf bytes.Buffer
	j := newTestJobService(&buf)

	err := j.handleAssociationChangedTask(context.Background(), asynq.NewTask(TaskAssociationChanged, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Zero(t, buf.Len())
}
