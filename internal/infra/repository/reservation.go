package repository

import (
	"context"
	"time"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

const reservationColumns = `id, number, guest_id, room_id, rate_plan_id,
	check_in_date, check_out_date, guest_count, status,
	actual_check_in, actual_check_out, total_cents, payment_status`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID(), res.Number(), res.GuestID(), res.RoomID(), res.RatePlanID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(), res.GuestCount(), res.Status().String(),
		res.ActualCheckIn(), res.ActualCheckOut(), res.Total().Cents(), res.PaymentStatus().String(),
	)
	if err != nil {
		return wrap("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations WHERE id = $1 FOR UPDATE`, id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, wrap("failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $2, actual_check_in = $3, actual_check_out = $4,
		    total_cents = $5, payment_status = $6, updated_at = now()
		WHERE id = $1`,
		res.ID(), res.Status().String(), res.ActualCheckIn(), res.ActualCheckOut(),
		res.Total().Cents(), res.PaymentStatus().String(),
	)
	if err != nil {
		return wrap("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found for update", nil)
	}
	return nil
}

func (r *ReservationRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1
		  AND status NOT IN ('CANCELLED', 'NO_SHOW', 'CHECKED_OUT')
		ORDER BY check_in_date`, roomID)
	if err != nil {
		return nil, wrap("failed to query active reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, wrap("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("failed to iterate reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) CountByRatePlan(ctx context.Context, ratePlanID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE rate_plan_id = $1`, ratePlanID,
	).Scan(&count)
	if err != nil {
		return 0, wrap("failed to count reservations by rate plan", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, guestID, roomID, ratePlanID  uuid.UUID
		number, status, paymentStatus    string
		checkIn, checkOut                time.Time
		guestCount                       int
		actualCheckIn, actualCheckOut    *time.Time
		totalCents                       int64
	)
	if err := row.Scan(
		&id, &number, &guestID, &roomID, &ratePlanID,
		&checkIn, &checkOut, &guestCount, &status,
		&actualCheckIn, &actualCheckOut, &totalCents, &paymentStatus,
	); err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(
		id, number, guestID, roomID, ratePlanID,
		stay, guestCount, reservation.Status(status),
		actualCheckIn, actualCheckOut,
		money.New(totalCents), reservation.PaymentStatus(paymentStatus),
	), nil
}
