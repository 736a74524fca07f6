package request

import (
	"time"

	"hotelcore/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID      uuid.UUID `json:"guest_id" binding:"required"`
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	RatePlanID   uuid.UUID `json:"rate_plan_id" binding:"required"`
	CheckInDate  string    `json:"check_in_date" binding:"required"`
	CheckOutDate string    `json:"check_out_date" binding:"required"`
	GuestCount   int       `json:"guest_count" binding:"required,min=1"`
}

// ToParams parses the calendar dates; they travel as "2006-01-02" strings
// and become UTC midnights.
func (r CreateReservationRequest) ToParams() (commands.CreateReservationParams, error) {
	checkIn, err := time.ParseInLocation(time.DateOnly, r.CheckInDate, time.UTC)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}
	checkOut, err := time.ParseInLocation(time.DateOnly, r.CheckOutDate, time.UTC)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}

	return commands.CreateReservationParams{
		GuestID:    r.GuestID,
		RoomID:     r.RoomID,
		RatePlanID: r.RatePlanID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}
