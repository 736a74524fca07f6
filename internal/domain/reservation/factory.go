package reservation

import (
	"fmt"
	"strings"
	"time"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/pkg/clock"

	"github.com/google/uuid"
)

// RoomSpec is the slice of room state the factory needs; the full room
// aggregate stays behind its own repository.
type RoomSpec struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	MaxOccupancy int
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// Create builds a CONFIRMED reservation. Availability and rate existence
// are checked by the caller inside the booking transaction; everything
// date- and capacity-shaped is validated here.
func (f *Factory) Create(
	guestID uuid.UUID,
	room RoomSpec,
	ratePlanID uuid.UUID,
	stay StayPeriod,
	guestCount int,
	nightlyRate money.Money,
) (*Reservation, error) {
	if stay.StartsBefore(clock.Today(f.clock)) {
		return nil, ErrStayInPast
	}
	if guestCount <= 0 {
		return nil, ErrTooManyGuests
	}
	if guestCount > room.MaxOccupancy {
		return nil, ErrTooManyGuests
	}

	total := nightlyRate.MulInt(int64(stay.Nights()))

	return &Reservation{
		id:            uuid.New(),
		number:        newReservationNumber(f.clock.Now()),
		guestID:       guestID,
		roomID:        room.ID,
		ratePlanID:    ratePlanID,
		stay:          stay,
		guestCount:    guestCount,
		status:        StatusConfirmed,
		total:         total,
		paymentStatus: PaymentUnpaid,
	}, nil
}

// newReservationNumber yields RSV-YYYYMMDD-XXXXXX; the suffix is random,
// uniqueness is enforced by the reservations.number constraint.
func newReservationNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("RSV-%s-%s", now.UTC().Format("20060102"), suffix)
}
