package commands

import (
	"context"
	"errors"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomParams struct {
	Number       string
	CategoryID   uuid.UUID
	MaxOccupancy int
}

type CreateCategoryParams struct {
	Name           string
	BasePriceCents int64
	MaxOccupancy   int
}

type RoomCommands interface {
	CreateCategory(ctx context.Context, params CreateCategoryParams, actor shared.Actor) (*queries.RoomCategoryView, error)
	CreateRoom(ctx context.Context, params CreateRoomParams, actor shared.Actor) (*queries.RoomView, error)
	// FinishCleaning moves a CLEANING room back to AVAILABLE; this is the
	// only occupancy transition housekeeping may apply directly.
	FinishCleaning(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error)
	StartMaintenance(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error)
	FinishMaintenance(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error)
}

type roomCommands struct {
	uow   shared.UnitOfWork
	views queries.RoomQueries
	trail shared.AuditTrail
	clock clock.Clock
}

func NewRoomCommands(
	uow shared.UnitOfWork,
	views queries.RoomQueries,
	trail shared.AuditTrail,
	clk clock.Clock,
) RoomCommands {
	return &roomCommands{uow: uow, views: views, trail: trail, clock: clk}
}

func (c *roomCommands) CreateCategory(ctx context.Context, params CreateCategoryParams, actor shared.Actor) (*queries.RoomCategoryView, error) {
	basePrice, err := money.NewNonNegative(params.BasePriceCents)
	if err != nil {
		return nil, errs.Validation("basePrice", err.Error())
	}
	cat, err := room.NewCategory(params.Name, basePrice, params.MaxOccupancy)
	if err != nil {
		return nil, errs.Validation("category", err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().CreateCategory(ctx, cat); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Duplicate("RoomCategory", "name", params.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created("RoomCategory", cat.ID(), actor.String(), c.clock.Now()))
	return &queries.RoomCategoryView{
		ID:             cat.ID(),
		Name:           cat.Name(),
		BasePriceCents: cat.BasePrice().Cents(),
		MaxOccupancy:   cat.MaxOccupancy(),
	}, nil
}

func (c *roomCommands) CreateRoom(ctx context.Context, params CreateRoomParams, actor shared.Actor) (*queries.RoomView, error) {
	rm, err := room.NewRoom(params.Number, params.CategoryID, params.MaxOccupancy)
	if err != nil {
		return nil, errs.Validation("room", err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().CategoryByID(ctx, params.CategoryID); err != nil {
			return mapNotFound(err, "RoomCategory", params.CategoryID)
		}
		if err := tx.Rooms().Create(ctx, rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Duplicate(entityRoom, "number", params.Number)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created(entityRoom, rm.ID(), actor.String(), c.clock.Now()))
	return c.views.GetByID(ctx, rm.ID())
}

func (c *roomCommands) FinishCleaning(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error) {
	return c.setStatus(ctx, roomID, actor, func(rm *room.Room) error { return rm.FinishCleaning() })
}

func (c *roomCommands) StartMaintenance(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error) {
	return c.setStatus(ctx, roomID, actor, func(rm *room.Room) error { return rm.StartMaintenance() })
}

func (c *roomCommands) FinishMaintenance(ctx context.Context, roomID uuid.UUID, actor shared.Actor) (*queries.RoomView, error) {
	return c.setStatus(ctx, roomID, actor, func(rm *room.Room) error { return rm.FinishMaintenance() })
}

// setStatus applies a direct occupancy change, refusing rooms that an
// active reservation currently owns: those only move through the
// reservation lifecycle.
func (c *roomCommands) setStatus(ctx context.Context, roomID uuid.UUID, actor shared.Actor, apply func(rm *room.Room) error) (*queries.RoomView, error) {
	var before, after *room.Room

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockByID(ctx, roomID)
		if err != nil {
			return mapNotFound(err, entityRoom, roomID)
		}

		active, err := tx.Reservations().FindActiveByRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if len(active) > 0 && (rm.Status() == room.StatusReserved || rm.Status() == room.StatusOccupied) {
			return &errs.InvalidTransitionError{Entity: entityRoom, ID: roomID.String(), From: rm.Status().String()}
		}

		before = rm.Clone()
		if err := apply(rm); err != nil {
			if errors.Is(err, room.ErrInvalidStatus) {
				return &errs.InvalidTransitionError{Entity: entityRoom, ID: roomID.String(), From: before.Status().String()}
			}
			return err
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return err
		}
		after = rm
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changes := audit.Diff(room.AuditFields, before, after); len(changes) > 0 {
		c.trail.Record(ctx, audit.Updated(entityRoom, roomID, actor.String(), c.clock.Now(), changes))
	}
	return c.views.GetByID(ctx, roomID)
}
