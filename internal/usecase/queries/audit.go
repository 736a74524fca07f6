package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditLogView struct {
	ID         uuid.UUID       `json:"id"`
	EntityType string          `json:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor"`
	RecordedAt time.Time       `json:"recorded_at"`
	Changes    json.RawMessage `json:"changes,omitempty"`
}

type AuditQueries interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*AuditLogView, error)
}
