package readstore

import (
	"context"

	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

func (s *StaffReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, name, role, last_login_at
		FROM staff_users WHERE id = $1`, id)

	var v queries.StaffView
	if err := row.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.LastLoginAt); err != nil {
		return nil, viewErr(err, "StaffUser", id.String(), "failed to find staff user")
	}
	return &v, nil
}
