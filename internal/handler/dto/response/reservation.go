package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	Number         string     `json:"number"`
	GuestID        uuid.UUID  `json:"guestId"`
	GuestName      string     `json:"guestName"`
	RoomID         uuid.UUID  `json:"roomId"`
	RoomNumber     string     `json:"roomNumber"`
	RatePlanID     uuid.UUID  `json:"ratePlanId"`
	RatePlanName   string     `json:"ratePlanName"`
	CheckInDate    string     `json:"checkInDate"`
	CheckOutDate   string     `json:"checkOutDate"`
	GuestCount     int        `json:"guestCount"`
	Status         string     `json:"status"`
	ActualCheckIn  *time.Time `json:"actualCheckIn,omitempty"`
	ActualCheckOut *time.Time `json:"actualCheckOut,omitempty"`
	TotalCents     int64      `json:"totalCents"`
	PaymentStatus  string     `json:"paymentStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// Field names match the view; only the calendar dates need reshaping.
	_ = copier.Copy(&resp, rm)
	resp.CheckInDate = rm.CheckInDate.Format(time.DateOnly)
	resp.CheckOutDate = rm.CheckOutDate.Format(time.DateOnly)
	return &resp
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	resps := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromReservationView(rm)
	}
	return resps
}
