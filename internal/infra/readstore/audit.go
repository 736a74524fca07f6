package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditReadStore struct {
	db db.DBTX
}

func NewAuditReadStore(dbtx db.DBTX) *AuditReadStore {
	return &AuditReadStore{db: dbtx}
}

func (s *AuditReadStore) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*queries.AuditLogView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, entity_type, entity_id, action, actor, changes, recorded_at
		FROM audit_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY recorded_at, id`, entityType, entityID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list audit logs", err)
	}
	defer rows.Close()

	views := make([]*queries.AuditLogView, 0)
	for rows.Next() {
		var v queries.AuditLogView
		if err := rows.Scan(&v.ID, &v.EntityType, &v.EntityID, &v.Action, &v.Actor, &v.Changes, &v.RecordedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan audit log row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate audit log rows", err)
	}
	return views, nil
}
