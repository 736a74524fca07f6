package reservation

import (
	"errors"
	"time"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNotCheckInable  = errors.New("reservation cannot be checked in from its current status")
	ErrNotCheckOutable = errors.New("only checked-in reservations can be checked out")
	ErrNotCancellable  = errors.New("checked-out reservations cannot be cancelled")
	ErrTooManyGuests   = errors.New("guest count exceeds room capacity")
)

type Reservation struct {
	id             uuid.UUID
	number         string
	guestID        uuid.UUID
	roomID         uuid.UUID
	ratePlanID     uuid.UUID
	stay           StayPeriod
	guestCount     int
	status         Status
	actualCheckIn  *time.Time
	actualCheckOut *time.Time
	total          money.Money
	paymentStatus  PaymentStatus
}

func Reconstruct(
	id uuid.UUID,
	number string,
	guestID, roomID, ratePlanID uuid.UUID,
	stay StayPeriod,
	guestCount int,
	status Status,
	actualCheckIn, actualCheckOut *time.Time,
	total money.Money,
	paymentStatus PaymentStatus,
) *Reservation {
	return &Reservation{
		id:             id,
		number:         number,
		guestID:        guestID,
		roomID:         roomID,
		ratePlanID:     ratePlanID,
		stay:           stay,
		guestCount:     guestCount,
		status:         status,
		actualCheckIn:  actualCheckIn,
		actualCheckOut: actualCheckOut,
		total:          total,
		paymentStatus:  paymentStatus,
	}
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) Number() string                  { return r.number }
func (r *Reservation) GuestID() uuid.UUID              { return r.guestID }
func (r *Reservation) RoomID() uuid.UUID               { return r.roomID }
func (r *Reservation) RatePlanID() uuid.UUID           { return r.ratePlanID }
func (r *Reservation) Stay() StayPeriod                { return r.stay }
func (r *Reservation) GuestCount() int                 { return r.guestCount }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) ActualCheckIn() *time.Time       { return r.actualCheckIn }
func (r *Reservation) ActualCheckOut() *time.Time      { return r.actualCheckOut }
func (r *Reservation) Total() money.Money              { return r.total }
func (r *Reservation) PaymentStatus() PaymentStatus    { return r.paymentStatus }

// CheckIn is legal from PENDING or CONFIRMED.
func (r *Reservation) CheckIn(now time.Time) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrNotCheckInable
	}
	r.status = StatusCheckedIn
	r.actualCheckIn = &now
	return nil
}

// CheckOut is legal only from CHECKED_IN.
func (r *Reservation) CheckOut(now time.Time) error {
	if r.status != StatusCheckedIn {
		return ErrNotCheckOutable
	}
	r.status = StatusCheckedOut
	r.actualCheckOut = &now
	return nil
}

// Cancel is legal from any status except CHECKED_OUT. Cancelling an
// already cancelled reservation is a no-op transition the source design
// permits, so it is not rejected here.
func (r *Reservation) Cancel() error {
	if r.status == StatusCheckedOut {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) MarkPaymentPaid() {
	r.paymentStatus = PaymentPaid
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}

// AuditFields declares the change-captured fields of a reservation.
// Actual check-in/out timestamps are part of the trail; created/updated
// bookkeeping is not.
var AuditFields = []audit.FieldSpec[*Reservation]{
	{Name: "number", Value: func(r *Reservation) any { return r.number }},
	{Name: "guest", Value: func(r *Reservation) any { return audit.Ref{ID: r.guestID.String()} }},
	{Name: "room", Value: func(r *Reservation) any { return audit.Ref{ID: r.roomID.String()} }},
	{Name: "ratePlan", Value: func(r *Reservation) any { return audit.Ref{ID: r.ratePlanID.String()} }},
	{Name: "checkInDate", Value: func(r *Reservation) any { return r.stay.CheckIn().Format(time.DateOnly) }},
	{Name: "checkOutDate", Value: func(r *Reservation) any { return r.stay.CheckOut().Format(time.DateOnly) }},
	{Name: "guestCount", Value: func(r *Reservation) any { return r.guestCount }},
	{Name: "status", Value: func(r *Reservation) any { return r.status.String() }},
	{Name: "actualCheckIn", Value: func(r *Reservation) any { return r.actualCheckIn }},
	{Name: "actualCheckOut", Value: func(r *Reservation) any { return r.actualCheckOut }},
	{Name: "totalCents", Value: func(r *Reservation) any { return r.total.Cents() }},
	{Name: "paymentStatus", Value: func(r *Reservation) any { return r.paymentStatus.String() }},
}
