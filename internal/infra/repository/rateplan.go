package repository

import (
	"context"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/rateplan"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type RatePlanRepository struct {
	db db.DBTX
}

func NewRatePlanRepository(dbtx db.DBTX) *RatePlanRepository {
	return &RatePlanRepository{db: dbtx}
}

func (r *RatePlanRepository) Create(ctx context.Context, plan *rateplan.RatePlan) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rate_plans (id, name, description)
		VALUES ($1, $2, $3)`,
		plan.ID(), plan.Name(), plan.Description(),
	)
	if err != nil {
		return wrap("failed to create rate plan", err)
	}
	return nil
}

func (r *RatePlanRepository) ByID(ctx context.Context, id uuid.UUID) (*rateplan.RatePlan, error) {
	var (
		planID            uuid.UUID
		name, description string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description FROM rate_plans WHERE id = $1`, id,
	).Scan(&planID, &name, &description)
	if err != nil {
		return nil, wrap("failed to load rate plan", err)
	}
	return rateplan.Reconstruct(planID, name, description), nil
}

func (r *RatePlanRepository) Update(ctx context.Context, plan *rateplan.RatePlan) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rate_plans SET name = $2, description = $3, updated_at = now() WHERE id = $1`,
		plan.ID(), plan.Name(), plan.Description(),
	)
	if err != nil {
		return wrap("failed to update rate plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "rate plan not found for update", nil)
	}
	return nil
}

func (r *RatePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rate_plans WHERE id = $1`, id)
	if err != nil {
		return wrap("failed to delete rate plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "rate plan not found for delete", nil)
	}
	return nil
}

func (r *RatePlanRepository) RateFor(ctx context.Context, ratePlanID, categoryID uuid.UUID) (*rateplan.Rate, error) {
	var priceCents int64
	err := r.db.QueryRow(ctx, `
		SELECT price_cents FROM rate_plan_prices
		WHERE rate_plan_id = $1 AND category_id = $2`,
		ratePlanID, categoryID,
	).Scan(&priceCents)
	if err != nil {
		return nil, wrap("failed to load rate", err)
	}
	return rateplan.ReconstructRate(ratePlanID, categoryID, money.New(priceCents)), nil
}

func (r *RatePlanRepository) AddRate(ctx context.Context, rate *rateplan.Rate) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rate_plan_prices (rate_plan_id, category_id, price_cents)
		VALUES ($1, $2, $3)`,
		rate.RatePlanID(), rate.CategoryID(), rate.Price().Cents(),
	)
	if err != nil {
		return wrap("failed to add rate", err)
	}
	return nil
}

func (r *RatePlanRepository) UpdateRate(ctx context.Context, rate *rateplan.Rate) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rate_plan_prices SET price_cents = $3, updated_at = now()
		WHERE rate_plan_id = $1 AND category_id = $2`,
		rate.RatePlanID(), rate.CategoryID(), rate.Price().Cents(),
	)
	if err != nil {
		return wrap("failed to update rate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "rate not found for update", nil)
	}
	return nil
}

func (r *RatePlanRepository) RemoveRate(ctx context.Context, ratePlanID, categoryID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM rate_plan_prices
		WHERE rate_plan_id = $1 AND category_id = $2`,
		ratePlanID, categoryID,
	)
	if err != nil {
		return wrap("failed to remove rate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "rate not found for delete", nil)
	}
	return nil
}
