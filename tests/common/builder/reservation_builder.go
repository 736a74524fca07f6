//go:build unit || e2e

package builder

import (
	"time"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder assembles a reservation around a fixed mock clock so
// "today" is stable across assertions.
type ReservationBuilder struct {
	GuestID          uuid.UUID
	Room             reservation.RoomSpec
	RatePlanID       uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	GuestCount       int
	NightlyRateCents int64
	Now              time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		GuestID: uuid.New(),
		Room: reservation.RoomSpec{
			ID:           uuid.New(),
			CategoryID:   uuid.New(),
			MaxOccupancy: 2,
		},
		RatePlanID:       uuid.New(),
		CheckIn:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		GuestCount:       2,
		NightlyRateCents: 12000,
		Now:              now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	factory := reservation.NewFactory(clock.NewMockClock(b.Now))
	return factory.Create(b.GuestID, b.Room, b.RatePlanID, stay, b.GuestCount, money.New(b.NightlyRateCents))
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		GuestID:    b.GuestID,
		RoomID:     b.Room.ID,
		RatePlanID: b.RatePlanID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.ReservationView{
		ID:            uuid.New(),
		Number:        "RSV-20250301-ABC123",
		GuestID:       b.GuestID,
		GuestName:     "Taro Yamada",
		RoomID:        b.Room.ID,
		RoomNumber:    "101",
		RatePlanID:    b.RatePlanID,
		RatePlanName:  "Standard",
		CheckInDate:   b.CheckIn,
		CheckOutDate:  b.CheckOut,
		GuestCount:    b.GuestCount,
		Status:        reservation.StatusConfirmed.String(),
		TotalCents:    b.NightlyRateCents * nights,
		PaymentStatus: reservation.PaymentUnpaid.String(),
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

// BuildCreateRequestBody yields the JSON body map the create endpoint
// accepts; map form so tests can knock out individual fields.
func (b *ReservationBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"guest_id":       b.GuestID.String(),
		"room_id":        b.Room.ID.String(),
		"rate_plan_id":   b.RatePlanID.String(),
		"check_in_date":  b.CheckIn.Format(time.DateOnly),
		"check_out_date": b.CheckOut.Format(time.DateOnly),
		"guest_count":    b.GuestCount,
	}
}
