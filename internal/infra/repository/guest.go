package repository

import (
	"context"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guests (id, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)`,
		g.ID(), g.FirstName(), g.LastName(), g.Email(), g.Phone(),
	)
	if err != nil {
		return wrap("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) ByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	var (
		guestID                             uuid.UUID
		firstName, lastName, email, phone   string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone FROM guests WHERE id = $1`, id,
	).Scan(&guestID, &firstName, &lastName, &email, &phone)
	if err != nil {
		return nil, wrap("failed to load guest", err)
	}
	return guest.Reconstruct(guestID, firstName, lastName, email, phone), nil
}
