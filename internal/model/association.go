package model

import "time"

// Association owner/related entity names, as used in events and metrics.
const (
	EntityCafe   = "cafe"
	EntityTienda = "tienda"
)

// AssociationAction names a mutation of the cafe/tienda relation.
type AssociationAction string

const (
	AssociationAdded    AssociationAction = "added"
	AssociationReplaced AssociationAction = "replaced"
	AssociationRemoved  AssociationAction = "removed"
)

// AssociationEvent records one committed change of the relation, seen from
// the owner side of the operation.
type AssociationEvent struct {
	Action      AssociationAction `json:"action"`
	OwnerType   string            `json:"owner_type"`
	OwnerID     string            `json:"owner_id"`
	RelatedType string            `json:"related_type"`
	RelatedIDs  []string          `json:"related_ids"`
	OccurredAt  time.Time         `json:"occurred_at"`
}
