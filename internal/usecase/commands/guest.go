package commands

import (
	"context"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/guest"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateGuestParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type GuestView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

type GuestCommands interface {
	Create(ctx context.Context, params CreateGuestParams, actor shared.Actor) (*GuestView, error)
}

type guestCommands struct {
	uow   shared.UnitOfWork
	trail shared.AuditTrail
	clock clock.Clock
}

func NewGuestCommands(uow shared.UnitOfWork, trail shared.AuditTrail, clk clock.Clock) GuestCommands {
	return &guestCommands{uow: uow, trail: trail, clock: clk}
}

func (c *guestCommands) Create(ctx context.Context, params CreateGuestParams, actor shared.Actor) (*GuestView, error) {
	g, err := guest.New(params.FirstName, params.LastName, params.Email, params.Phone)
	if err != nil {
		return nil, errs.Validation("guest", err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Guests().Create(ctx, g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Duplicate(entityGuest, "email", params.Email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created(entityGuest, g.ID(), actor.String(), c.clock.Now()))
	return &GuestView{
		ID:        g.ID(),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email(),
		Phone:     g.Phone(),
	}, nil
}
