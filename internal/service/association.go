package service

import (
	"context"
	"time"

	"github.com/deppfellow/cafe-tienda/internal/metrics"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/rs/zerolog"
)

// AssociationPublisher receives every committed change of the relation.
type AssociationPublisher interface {
	PublishAssociationChange(ctx context.Context, event model.AssociationEvent) error
}

// changeRecorder counts relation changes and forwards them to the publisher.
// Publishing is best effort: the change is already committed.
type changeRecorder struct {
	publisher AssociationPublisher
	now       func() time.Time
}

func newChangeRecorder(publisher AssociationPublisher) changeRecorder {
	return changeRecorder{publisher: publisher, now: time.Now}
}

func (r changeRecorder) record(ctx context.Context, action model.AssociationAction, ownerType, ownerID, relatedType string, relatedIDs []string) {
	metrics.AssociationMutations.WithLabelValues(ownerType, string(action)).Inc()

	if r.publisher == nil {
		return
	}

	event := model.AssociationEvent{
		Action:      action,
		OwnerType:   ownerType,
		OwnerID:     ownerID,
		RelatedType: relatedType,
		RelatedIDs:  relatedIDs,
		OccurredAt:  r.now().UTC(),
	}

	if err := r.publisher.PublishAssociationChange(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("action", string(action)).
			Str("owner_id", ownerID).
			Msg("failed to publish association change")
	}
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
