package commands

import (
	"context"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/rateplan"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatePlanCommands interface {
	Create(ctx context.Context, name, description string, actor shared.Actor) (*queries.RatePlanView, error)
	AddRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, priceCents int64, actor shared.Actor) (*queries.RatePlanView, error)
	UpdateRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, priceCents int64, actor shared.Actor) (*queries.RatePlanView, error)
	RemoveRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, actor shared.Actor) (*queries.RatePlanView, error)
	Delete(ctx context.Context, ratePlanID uuid.UUID, actor shared.Actor) error
}

type ratePlanCommands struct {
	uow   shared.UnitOfWork
	views queries.RatePlanQueries
	trail shared.AuditTrail
	clock clock.Clock
}

func NewRatePlanCommands(
	uow shared.UnitOfWork,
	views queries.RatePlanQueries,
	trail shared.AuditTrail,
	clk clock.Clock,
) RatePlanCommands {
	return &ratePlanCommands{uow: uow, views: views, trail: trail, clock: clk}
}

func (c *ratePlanCommands) Create(ctx context.Context, name, description string, actor shared.Actor) (*queries.RatePlanView, error) {
	plan, err := rateplan.New(name, description)
	if err != nil {
		return nil, errs.Validation("name", err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RatePlans().Create(ctx, plan); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Duplicate(entityRatePlan, "name", name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created(entityRatePlan, plan.ID(), actor.String(), c.clock.Now()))
	return c.views.GetByID(ctx, plan.ID())
}

// AddRate maps (plan, category) to a nightly price; at most one mapping
// may exist per pair.
func (c *ratePlanCommands) AddRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, priceCents int64, actor shared.Actor) (*queries.RatePlanView, error) {
	price, err := money.NewNonNegative(priceCents)
	if err != nil {
		return nil, errs.Validation("price", err.Error())
	}
	rate, err := rateplan.NewRate(ratePlanID, categoryID, price)
	if err != nil {
		return nil, errs.Validation("price", err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.RatePlans().ByID(ctx, ratePlanID); err != nil {
			return mapNotFound(err, entityRatePlan, ratePlanID)
		}
		if _, err := tx.Rooms().CategoryByID(ctx, categoryID); err != nil {
			return mapNotFound(err, "RoomCategory", categoryID)
		}
		if err := tx.RatePlans().AddRate(ctx, rate); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Duplicate(entityRate, "ratePlanId,categoryId",
					ratePlanID.String()+","+categoryID.String())
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created(entityRate, ratePlanID, actor.String(), c.clock.Now()))
	return c.views.GetByID(ctx, ratePlanID)
}

func (c *ratePlanCommands) UpdateRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, priceCents int64, actor shared.Actor) (*queries.RatePlanView, error) {
	price, err := money.NewNonNegative(priceCents)
	if err != nil {
		return nil, errs.Validation("price", err.Error())
	}

	var before, after *rateplan.Rate

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rate, err := tx.RatePlans().RateFor(ctx, ratePlanID, categoryID)
		if err != nil {
			return mapRateNotFound(err, ratePlanID, categoryID)
		}
		before = rate.Clone()
		if err := rate.Reprice(price); err != nil {
			return errs.Validation("price", err.Error())
		}
		if err := tx.RatePlans().UpdateRate(ctx, rate); err != nil {
			return err
		}
		after = rate
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changes := audit.Diff(rateplan.RateAuditFields, before, after); len(changes) > 0 {
		c.trail.Record(ctx, audit.Updated(entityRate, ratePlanID, actor.String(), c.clock.Now(), changes))
	}
	return c.views.GetByID(ctx, ratePlanID)
}

func (c *ratePlanCommands) RemoveRate(ctx context.Context, ratePlanID, categoryID uuid.UUID, actor shared.Actor) (*queries.RatePlanView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.RatePlans().RateFor(ctx, ratePlanID, categoryID); err != nil {
			return mapRateNotFound(err, ratePlanID, categoryID)
		}
		return tx.RatePlans().RemoveRate(ctx, ratePlanID, categoryID)
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Deleted(entityRate, ratePlanID, actor.String(), c.clock.Now()))
	return c.views.GetByID(ctx, ratePlanID)
}

// Delete refuses while any reservation, in any lifecycle state, still
// references the plan; the check counts references, not date overlaps.
func (c *ratePlanCommands) Delete(ctx context.Context, ratePlanID uuid.UUID, actor shared.Actor) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.RatePlans().ByID(ctx, ratePlanID); err != nil {
			return mapNotFound(err, entityRatePlan, ratePlanID)
		}
		count, err := tx.Reservations().CountByRatePlan(ctx, ratePlanID)
		if err != nil {
			return err
		}
		if count > 0 {
			return &errs.InUseError{Entity: entityRatePlan, ID: ratePlanID.String(), Referrers: count}
		}
		return tx.RatePlans().Delete(ctx, ratePlanID)
	})
	if err != nil {
		return err
	}

	c.trail.Record(ctx, audit.Deleted(entityRatePlan, ratePlanID, actor.String(), c.clock.Now()))
	return nil
}

func mapRateNotFound(err error, ratePlanID, categoryID uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return &errs.RateNotFoundError{RatePlanID: ratePlanID.String(), CategoryID: categoryID.String()}
	}
	return err
}
