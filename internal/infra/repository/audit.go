package repository

import (
	"context"
	"encoding/json"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type AuditRepository struct {
	db db.DBTX
}

func NewAuditRepository(dbtx db.DBTX) *AuditRepository {
	return &AuditRepository{db: dbtx}
}

// Insert appends one trail entry. Changes serialize to JSONB; creates and
// deletes store NULL there.
func (r *AuditRepository) Insert(ctx context.Context, rec audit.Record) error {
	var changes []byte
	if len(rec.Changes) > 0 {
		var err error
		changes, err = json.Marshal(rec.Changes)
		if err != nil {
			return wrap("failed to marshal audit changes", err)
		}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (id, entity_type, entity_id, action, actor, changes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), rec.EntityType, rec.EntityID, string(rec.Action), rec.Actor, changes, rec.OccurredAt,
	)
	if err != nil {
		return wrap("failed to insert audit log", err)
	}
	return nil
}
