package response

import (
	"encoding/json"
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   uuid.UUID       `json:"entityId"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor"`
	RecordedAt time.Time       `json:"recordedAt"`
	Changes    json.RawMessage `json:"changes,omitempty"`
}

func FromAuditLogView(rm *queries.AuditLogView) *AuditLogResponse {
	return &AuditLogResponse{
		ID:         rm.ID,
		EntityType: rm.EntityType,
		EntityID:   rm.EntityID,
		Action:     rm.Action,
		Actor:      rm.Actor,
		RecordedAt: rm.RecordedAt,
		Changes:    rm.Changes,
	}
}

func FromAuditLogViews(rms []*queries.AuditLogView) []*AuditLogResponse {
	resps := make([]*AuditLogResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromAuditLogView(rm)
	}
	return resps
}
