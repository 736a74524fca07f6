package readstore

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewQuery = `
	SELECT r.id, r.number, r.guest_id, g.first_name || ' ' || g.last_name,
	       r.room_id, rm.number, r.rate_plan_id, rp.name,
	       r.check_in_date, r.check_out_date, r.guest_count, r.status,
	       r.actual_check_in, r.actual_check_out, r.total_cents, r.payment_status,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN guests g ON g.id = r.guest_id
	JOIN rooms rm ON rm.id = r.room_id
	JOIN rate_plans rp ON rp.id = r.rate_plan_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		return nil, viewErr(err, "Reservation", id.String(), "failed to find reservation")
	}
	return view, nil
}

func (s *ReservationReadStore) GetByNumber(ctx context.Context, number string) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewQuery+` WHERE r.number = $1`, number)
	view, err := scanReservationView(row)
	if err != nil {
		return nil, viewErr(err, "Reservation", number, "failed to find reservation by number")
	}
	return view, nil
}

func (s *ReservationReadStore) ListByStatus(ctx context.Context, status string) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewQuery+` WHERE r.status = $1 ORDER BY r.check_in_date, r.number`, status)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservations by status", err)
	}
	defer rows.Close()
	return collectReservationViews(rows)
}

func (s *ReservationReadStore) ListByRoomAndRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	// Half-open range intersection: [check_in, check_out) against [from, to).
	rows, err := s.db.Query(ctx, reservationViewQuery+`
		WHERE r.room_id = $1 AND r.check_in_date < $3 AND r.check_out_date > $2
		ORDER BY r.check_in_date`, roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservations by room and range", err)
	}
	defer rows.Close()
	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservation rows", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.Number, &v.GuestID, &v.GuestName,
		&v.RoomID, &v.RoomNumber, &v.RatePlanID, &v.RatePlanName,
		&v.CheckInDate, &v.CheckOutDate, &v.GuestCount, &v.Status,
		&v.ActualCheckIn, &v.ActualCheckOut, &v.TotalCents, &v.PaymentStatus,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
