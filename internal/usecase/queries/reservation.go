package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	Number         string     `json:"number"`
	GuestID        uuid.UUID  `json:"guest_id"`
	GuestName      string     `json:"guest_name"`
	RoomID         uuid.UUID  `json:"room_id"`
	RoomNumber     string     `json:"room_number"`
	RatePlanID     uuid.UUID  `json:"rate_plan_id"`
	RatePlanName   string     `json:"rate_plan_name"`
	CheckInDate    time.Time  `json:"check_in_date"`
	CheckOutDate   time.Time  `json:"check_out_date"`
	GuestCount     int        `json:"guest_count"`
	Status         string     `json:"status"`
	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`
	TotalCents     int64      `json:"total_cents"`
	PaymentStatus  string     `json:"payment_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetByNumber(ctx context.Context, number string) (*ReservationView, error)
	ListByStatus(ctx context.Context, status string) ([]*ReservationView, error)
	// ListByRoomAndRange returns reservations on the room whose stay
	// intersects the half-open [from, to) date range.
	ListByRoomAndRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}
