package room

import (
	"errors"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber      = errors.New("room number cannot be empty")
	ErrInvalidOccupancy = errors.New("max occupancy must be positive")
	ErrInvalidStatus    = errors.New("invalid room status")
)

// Category is the template a room is built from; its base price is the
// room's own nightly price, independent of any rate plan.
type Category struct {
	id           uuid.UUID
	name         string
	basePrice    money.Money
	maxOccupancy int
}

func NewCategory(name string, basePrice money.Money, maxOccupancy int) (*Category, error) {
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}
	if basePrice.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	if maxOccupancy <= 0 {
		return nil, ErrInvalidOccupancy
	}
	return &Category{
		id:           uuid.New(),
		name:         name,
		basePrice:    basePrice,
		maxOccupancy: maxOccupancy,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name string, basePrice money.Money, maxOccupancy int) *Category {
	return &Category{id: id, name: name, basePrice: basePrice, maxOccupancy: maxOccupancy}
}

func (c *Category) ID() uuid.UUID          { return c.id }
func (c *Category) Name() string           { return c.name }
func (c *Category) BasePrice() money.Money { return c.basePrice }
func (c *Category) MaxOccupancy() int      { return c.maxOccupancy }

type Room struct {
	id           uuid.UUID
	number       string
	categoryID   uuid.UUID
	status       Status
	maxOccupancy int
}

func NewRoom(number string, categoryID uuid.UUID, maxOccupancy int) (*Room, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if maxOccupancy <= 0 {
		return nil, ErrInvalidOccupancy
	}
	return &Room{
		id:           uuid.New(),
		number:       number,
		categoryID:   categoryID,
		status:       StatusAvailable,
		maxOccupancy: maxOccupancy,
	}, nil
}

func Reconstruct(id uuid.UUID, number string, categoryID uuid.UUID, status Status, maxOccupancy int) *Room {
	return &Room{id: id, number: number, categoryID: categoryID, status: status, maxOccupancy: maxOccupancy}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Number() string        { return r.number }
func (r *Room) CategoryID() uuid.UUID { return r.categoryID }
func (r *Room) Status() Status        { return r.status }
func (r *Room) MaxOccupancy() int     { return r.maxOccupancy }

// Occupancy transitions below are driven by the reservation lifecycle;
// rooms under an active reservation never change status through any
// other path.

func (r *Room) MarkReserved()  { r.status = StatusReserved }
func (r *Room) MarkOccupied()  { r.status = StatusOccupied }
func (r *Room) MarkCleaning()  { r.status = StatusCleaning }
func (r *Room) MarkAvailable() { r.status = StatusAvailable }

// ReleaseAfterCancel frees the room only when the cancelled reservation
// actually held it; a room in CLEANING or MAINTENANCE keeps its state.
func (r *Room) ReleaseAfterCancel() {
	if r.status == StatusReserved || r.status == StatusOccupied {
		r.status = StatusAvailable
	}
}

func (r *Room) FinishCleaning() error {
	if r.status != StatusCleaning {
		return ErrInvalidStatus
	}
	r.status = StatusAvailable
	return nil
}

func (r *Room) StartMaintenance() error {
	if r.status == StatusReserved || r.status == StatusOccupied {
		return ErrInvalidStatus
	}
	r.status = StatusMaintenance
	return nil
}

func (r *Room) FinishMaintenance() error {
	if r.status != StatusMaintenance {
		return ErrInvalidStatus
	}
	r.status = StatusAvailable
	return nil
}

// AuditFields is the statically declared change-capture contract for rooms.
// Status is the only field the booking core mutates, but number and
// category moves from room administration are captured too.
var AuditFields = []audit.FieldSpec[*Room]{
	{Name: "number", Value: func(r *Room) any { return r.number }},
	{Name: "status", Value: func(r *Room) any { return r.status.String() }},
	{Name: "category", Value: func(r *Room) any { return audit.Ref{ID: r.categoryID.String()} }},
	{Name: "maxOccupancy", Value: func(r *Room) any { return r.maxOccupancy }},
}

func (r *Room) Clone() *Room {
	c := *r
	return &c
}
