package commands

import (
	"context"
	"errors"
	"time"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	entityReservation = "Reservation"
	entityRoom        = "Room"
	entityGuest       = "Guest"
	entityRatePlan    = "RatePlan"
	entityRate        = "Rate"
	entityInvoice     = "Invoice"
)

type CreateReservationParams struct {
	GuestID    uuid.UUID
	RoomID     uuid.UUID
	RatePlanID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams, actor shared.Actor) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error)
}

type reservationCommands struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	views   queries.ReservationQueries
	trail   shared.AuditTrail
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	views queries.ReservationQueries,
	trail shared.AuditTrail,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommands{
		uow:     uow,
		factory: factory,
		views:   views,
		trail:   trail,
		clock:   clk,
	}
}

// Create books a room for a stay. The room row lock taken first
// serializes concurrent bookings of the same room, so the conflict scan
// and the insert behave as one atomic step.
func (c *reservationCommands) Create(ctx context.Context, params CreateReservationParams, actor shared.Actor) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Validation("checkInDate", err.Error())
	}

	var created *reservation.Reservation
	var roomBefore, roomAfter *room.Room

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockByID(ctx, params.RoomID)
		if err != nil {
			return mapNotFound(err, entityRoom, params.RoomID)
		}

		if _, err := tx.Guests().ByID(ctx, params.GuestID); err != nil {
			return mapNotFound(err, entityGuest, params.GuestID)
		}
		if _, err := tx.RatePlans().ByID(ctx, params.RatePlanID); err != nil {
			return mapNotFound(err, entityRatePlan, params.RatePlanID)
		}

		rate, err := tx.RatePlans().RateFor(ctx, params.RatePlanID, rm.CategoryID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return &errs.RateNotFoundError{
					RatePlanID: params.RatePlanID.String(),
					CategoryID: rm.CategoryID().String(),
				}
			}
			return err
		}

		active, err := tx.Reservations().FindActiveByRoom(ctx, rm.ID())
		if err != nil {
			return err
		}
		for _, other := range active {
			if other.Stay().Overlaps(stay) {
				return &errs.ConflictError{
					RoomID:   rm.ID().String(),
					CheckIn:  stay.CheckIn().Format(time.DateOnly),
					CheckOut: stay.CheckOut().Format(time.DateOnly),
				}
			}
		}

		res, err := c.factory.Create(
			params.GuestID,
			reservation.RoomSpec{ID: rm.ID(), CategoryID: rm.CategoryID(), MaxOccupancy: rm.MaxOccupancy()},
			params.RatePlanID,
			stay,
			params.GuestCount,
			rate.Price(),
		)
		if err != nil {
			return mapFactoryErr(err)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		roomBefore = rm.Clone()
		rm.MarkReserved()
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return err
		}
		roomAfter = rm
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	c.trail.Record(ctx, audit.Created(entityReservation, created.ID(), actor.String(), now))
	c.recordRoomChange(ctx, roomBefore, roomAfter, actor, now)

	return c.views.GetByID(ctx, created.ID())
}

func (c *reservationCommands) CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error) {
	return c.transition(ctx, id, actor, func(res *reservation.Reservation, rm *room.Room, now time.Time) error {
		if err := res.CheckIn(now); err != nil {
			return transitionErr(err, res)
		}
		rm.MarkOccupied()
		return nil
	})
}

func (c *reservationCommands) CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error) {
	return c.transition(ctx, id, actor, func(res *reservation.Reservation, rm *room.Room, now time.Time) error {
		if err := res.CheckOut(now); err != nil {
			return transitionErr(err, res)
		}
		rm.MarkCleaning()
		return nil
	})
}

func (c *reservationCommands) Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.ReservationView, error) {
	return c.transition(ctx, id, actor, func(res *reservation.Reservation, rm *room.Room, _ time.Time) error {
		if err := res.Cancel(); err != nil {
			return transitionErr(err, res)
		}
		rm.ReleaseAfterCancel()
		return nil
	})
}

// transition applies one lifecycle step to a reservation and its room
// inside a single unit of work, then records both changes on the trail.
func (c *reservationCommands) transition(
	ctx context.Context,
	id uuid.UUID,
	actor shared.Actor,
	apply func(res *reservation.Reservation, rm *room.Room, now time.Time) error,
) (*queries.ReservationView, error) {
	var resBefore, resAfter *reservation.Reservation
	var roomBefore, roomAfter *room.Room

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByID(ctx, id)
		if err != nil {
			return mapNotFound(err, entityReservation, id)
		}
		rm, err := tx.Rooms().LockByID(ctx, res.RoomID())
		if err != nil {
			return mapNotFound(err, entityRoom, res.RoomID())
		}

		resBefore = res.Clone()
		roomBefore = rm.Clone()

		if err := apply(res, rm, c.clock.Now()); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm); err != nil {
			return err
		}
		resAfter = res
		roomAfter = rm
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if changes := audit.Diff(reservation.AuditFields, resBefore, resAfter); len(changes) > 0 {
		c.trail.Record(ctx, audit.Updated(entityReservation, resAfter.ID(), actor.String(), now, changes))
	}
	c.recordRoomChange(ctx, roomBefore, roomAfter, actor, now)

	return c.views.GetByID(ctx, id)
}

func (c *reservationCommands) recordRoomChange(ctx context.Context, before, after *room.Room, actor shared.Actor, now time.Time) {
	if before == nil || after == nil {
		return
	}
	if changes := audit.Diff(room.AuditFields, before, after); len(changes) > 0 {
		c.trail.Record(ctx, audit.Updated(entityRoom, after.ID(), actor.String(), now, changes))
	}
}

func transitionErr(err error, res *reservation.Reservation) error {
	switch {
	case errors.Is(err, reservation.ErrNotCheckInable),
		errors.Is(err, reservation.ErrNotCheckOutable),
		errors.Is(err, reservation.ErrNotCancellable):
		return &errs.InvalidTransitionError{
			Entity: entityReservation,
			ID:     res.ID().String(),
			From:   res.Status().String(),
		}
	default:
		return err
	}
}

func mapFactoryErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrStayInPast):
		return errs.Validation("checkInDate", "check-in date cannot be in the past")
	case errors.Is(err, reservation.ErrTooManyGuests):
		return errs.Validation("guestCount", "guest count exceeds room capacity")
	case errors.Is(err, reservation.ErrInvalidStayPeriod):
		return errs.Validation("checkInDate", "check-in date must be before check-out date")
	default:
		return err
	}
}

func mapNotFound(err error, entity string, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(entity, id.String())
	}
	return err
}
