package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatePlanReadStore struct {
	db db.DBTX
}

func NewRatePlanReadStore(dbtx db.DBTX) *RatePlanReadStore {
	return &RatePlanReadStore{db: dbtx}
}

func (s *RatePlanReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.RatePlanView, error) {
	row := s.db.QueryRow(ctx, `SELECT id, name, description FROM rate_plans WHERE id = $1`, id)

	var v queries.RatePlanView
	if err := row.Scan(&v.ID, &v.Name, &v.Description); err != nil {
		return nil, viewErr(err, "RatePlan", id.String(), "failed to find rate plan")
	}

	rates, err := s.ratesFor(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Rates = rates
	return &v, nil
}

func (s *RatePlanReadStore) List(ctx context.Context) ([]*queries.RatePlanView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, description FROM rate_plans ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rate plans", err)
	}
	defer rows.Close()

	views := make([]*queries.RatePlanView, 0)
	for rows.Next() {
		var v queries.RatePlanView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan rate plan row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate rate plan rows", err)
	}

	for _, v := range views {
		rates, err := s.ratesFor(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Rates = rates
	}
	return views, nil
}

func (s *RatePlanReadStore) ratesFor(ctx context.Context, planID uuid.UUID) ([]queries.RateView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.category_id, c.name, p.price_cents
		FROM rate_plan_prices p
		JOIN room_categories c ON c.id = p.category_id
		WHERE p.rate_plan_id = $1
		ORDER BY c.name`, planID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rates", err)
	}
	defer rows.Close()

	rates := make([]queries.RateView, 0)
	for rows.Next() {
		var r queries.RateView
		if err := rows.Scan(&r.CategoryID, &r.CategoryName, &r.PriceCents); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan rate row", err)
		}
		rates = append(rates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate rate rows", err)
	}
	return rates, nil
}
