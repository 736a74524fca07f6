package repository

import (
	"context"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, number, category_id, status, max_occupancy)
		VALUES ($1, $2, $3, $4, $5)`,
		rm.ID(), rm.Number(), rm.CategoryID(), rm.Status().String(), rm.MaxOccupancy(),
	)
	if err != nil {
		return wrap("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) ByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	return r.get(ctx, `SELECT id, number, category_id, status, max_occupancy FROM rooms WHERE id = $1`, id)
}

func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	return r.get(ctx, `SELECT id, number, category_id, status, max_occupancy FROM rooms WHERE id = $1 FOR UPDATE`, id)
}

func (r *RoomRepository) get(ctx context.Context, sql string, id uuid.UUID) (*room.Room, error) {
	var (
		roomID, categoryID uuid.UUID
		number, status     string
		maxOccupancy       int
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(&roomID, &number, &categoryID, &status, &maxOccupancy)
	if err != nil {
		return nil, wrap("failed to load room", err)
	}
	return room.Reconstruct(roomID, number, categoryID, room.Status(status), maxOccupancy), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`,
		rm.ID(), rm.Status().String(),
	)
	if err != nil {
		return wrap("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found for update", nil)
	}
	return nil
}

func (r *RoomRepository) CreateCategory(ctx context.Context, cat *room.Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO room_categories (id, name, base_price_cents, max_occupancy)
		VALUES ($1, $2, $3, $4)`,
		cat.ID(), cat.Name(), cat.BasePrice().Cents(), cat.MaxOccupancy(),
	)
	if err != nil {
		return wrap("failed to create room category", err)
	}
	return nil
}

func (r *RoomRepository) CategoryByID(ctx context.Context, id uuid.UUID) (*room.Category, error) {
	var (
		catID          uuid.UUID
		name           string
		basePriceCents int64
		maxOccupancy   int
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, base_price_cents, max_occupancy FROM room_categories WHERE id = $1`, id,
	).Scan(&catID, &name, &basePriceCents, &maxOccupancy)
	if err != nil {
		return nil, wrap("failed to load room category", err)
	}
	return room.ReconstructCategory(catID, name, money.New(basePriceCents), maxOccupancy), nil
}
