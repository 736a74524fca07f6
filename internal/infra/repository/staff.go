package repository

import (
	"context"
	"time"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) ByID(ctx context.Context, id uuid.UUID) (*staff.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, name, role, last_login_at FROM staff_users WHERE id = $1`, id)
}

func (r *StaffRepository) ByEmail(ctx context.Context, email string) (*staff.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, name, role, last_login_at FROM staff_users WHERE email = $1`, email)
}

func (r *StaffRepository) get(ctx context.Context, sql string, arg any) (*staff.User, error) {
	var (
		id                          uuid.UUID
		email, passwordHash, name   string
		role                        string
		lastLoginAt                 *time.Time
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&id, &email, &passwordHash, &name, &role, &lastLoginAt)
	if err != nil {
		return nil, wrap("failed to load staff user", err)
	}
	return staff.Reconstruct(id, email, passwordHash, name, staff.Role(role), lastLoginAt), nil
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE staff_users SET last_login_at = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return wrap("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "staff user not found for update", nil)
	}
	return nil
}
