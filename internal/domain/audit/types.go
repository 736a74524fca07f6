package audit

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Ref is the stored form of a changed field whose value is another entity.
// Only the id and a display label survive into the trail, never the nested
// object graph.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type FieldChange struct {
	Field string `json:"field"`
	Old   any    `json:"old"`
	New   any    `json:"new"`
}

// Record is one append-only trail entry. Changes is populated for updates
// only; creates and deletes store identity, actor and time.
type Record struct {
	EntityType string
	EntityID   uuid.UUID
	Action     Action
	Actor      string
	OccurredAt time.Time
	Changes    []FieldChange
}

func Created(entityType string, entityID uuid.UUID, actor string, at time.Time) Record {
	return Record{EntityType: entityType, EntityID: entityID, Action: ActionCreate, Actor: actor, OccurredAt: at}
}

func Deleted(entityType string, entityID uuid.UUID, actor string, at time.Time) Record {
	return Record{EntityType: entityType, EntityID: entityID, Action: ActionDelete, Actor: actor, OccurredAt: at}
}

func Updated(entityType string, entityID uuid.UUID, actor string, at time.Time, changes []FieldChange) Record {
	return Record{EntityType: entityType, EntityID: entityID, Action: ActionUpdate, Actor: actor, OccurredAt: at, Changes: changes}
}
