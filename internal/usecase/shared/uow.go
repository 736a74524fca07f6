package shared

import (
	"context"
	"time"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/guest"
	"hotelcore/internal/domain/invoice"
	"hotelcore/internal/domain/rateplan"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/domain/staff"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one transaction. Every command is one
// unit of work; the audit trail runs in its own (see AuditTrail).
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Guests() GuestRepository
	RatePlans() RatePlanRepository
	Invoices() InvoiceRepository
	Staff() StaffRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// LockByID loads the aggregate under FOR UPDATE for lifecycle transitions.
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	// FindActiveByRoom returns reservations on the room whose status is not
	// terminal; the conflict predicate runs over these in the usecase.
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error)
	CountByRatePlan(ctx context.Context, ratePlanID uuid.UUID) (int64, error)
}

type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) error
	ByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// LockByID takes the room row lock that serializes concurrent bookings
	// of the same room.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	UpdateStatus(ctx context.Context, rm *room.Room) error
	CreateCategory(ctx context.Context, cat *room.Category) error
	CategoryByID(ctx context.Context, id uuid.UUID) (*room.Category, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	ByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
}

type RatePlanRepository interface {
	Create(ctx context.Context, plan *rateplan.RatePlan) error
	ByID(ctx context.Context, id uuid.UUID) (*rateplan.RatePlan, error)
	Update(ctx context.Context, plan *rateplan.RatePlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	RateFor(ctx context.Context, ratePlanID, categoryID uuid.UUID) (*rateplan.Rate, error)
	AddRate(ctx context.Context, rate *rateplan.Rate) error
	UpdateRate(ctx context.Context, rate *rateplan.Rate) error
	RemoveRate(ctx context.Context, ratePlanID, categoryID uuid.UUID) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *invoice.Invoice) error
	LockByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)
	InsertLine(ctx context.Context, invoiceID uuid.UUID, line invoice.Line) error
	DeleteLine(ctx context.Context, invoiceID, lineID uuid.UUID) error
	UpdateTotals(ctx context.Context, inv *invoice.Invoice) error
	UpdatePayment(ctx context.Context, inv *invoice.Invoice) error
}

type StaffRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (*staff.User, error)
	ByEmail(ctx context.Context, email string) (*staff.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuditTrail records mutations on a separate unit of work. Implementations
// never return an error to the caller; failures are logged and dropped.
type AuditTrail interface {
	Record(ctx context.Context, rec audit.Record)
}
