package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomViewQuery = `
	SELECT r.id, r.number, r.category_id, c.name, c.base_price_cents, r.status, r.max_occupancy
	FROM rooms r
	JOIN room_categories c ON c.id = r.category_id`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := s.db.QueryRow(ctx, roomViewQuery+` WHERE r.id = $1`, id)
	view, err := scanRoomView(row)
	if err != nil {
		return nil, viewErr(err, "Room", id.String(), "failed to find room")
	}
	return view, nil
}

func (s *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, roomViewQuery+` ORDER BY r.number`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rooms", err)
	}
	defer rows.Close()
	return collectRoomViews(rows)
}

func (s *RoomReadStore) ListByStatus(ctx context.Context, status string) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, roomViewQuery+` WHERE r.status = $1 ORDER BY r.number`, status)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rooms by status", err)
	}
	defer rows.Close()
	return collectRoomViews(rows)
}

func (s *RoomReadStore) ListCategories(ctx context.Context) ([]*queries.RoomCategoryView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, base_price_cents, max_occupancy
		FROM room_categories ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list room categories", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomCategoryView, 0)
	for rows.Next() {
		var v queries.RoomCategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.BasePriceCents, &v.MaxOccupancy); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room category row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate room category rows", err)
	}
	return views, nil
}

func collectRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate room rows", err)
	}
	return views, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(&v.ID, &v.Number, &v.CategoryID, &v.CategoryName, &v.BasePriceCents, &v.Status, &v.MaxOccupancy)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
