package rateplan

import (
	"errors"
	"strings"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("rate plan name cannot be empty")
	ErrNegativePrice = errors.New("nightly price cannot be negative")
)

// RatePlan is a named price list; the (plan, category) -> price mapping
// itself lives in Rate rows, at most one per pair.
type RatePlan struct {
	id          uuid.UUID
	name        string
	description string
}

func New(name, description string) (*RatePlan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &RatePlan{
		id:          uuid.New(),
		name:        name,
		description: description,
	}, nil
}

func Reconstruct(id uuid.UUID, name, description string) *RatePlan {
	return &RatePlan{id: id, name: name, description: description}
}

func (p *RatePlan) ID() uuid.UUID       { return p.id }
func (p *RatePlan) Name() string        { return p.name }
func (p *RatePlan) Description() string { return p.description }

func (p *RatePlan) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.name = name
	return nil
}

func (p *RatePlan) Clone() *RatePlan {
	c := *p
	return &c
}

type Rate struct {
	ratePlanID uuid.UUID
	categoryID uuid.UUID
	price      money.Money
}

func NewRate(ratePlanID, categoryID uuid.UUID, price money.Money) (*Rate, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Rate{ratePlanID: ratePlanID, categoryID: categoryID, price: price}, nil
}

func ReconstructRate(ratePlanID, categoryID uuid.UUID, price money.Money) *Rate {
	return &Rate{ratePlanID: ratePlanID, categoryID: categoryID, price: price}
}

func (r *Rate) RatePlanID() uuid.UUID { return r.ratePlanID }
func (r *Rate) CategoryID() uuid.UUID { return r.categoryID }
func (r *Rate) Price() money.Money    { return r.price }

func (r *Rate) Reprice(price money.Money) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	r.price = price
	return nil
}

func (r *Rate) Clone() *Rate {
	c := *r
	return &c
}

var RateAuditFields = []audit.FieldSpec[*Rate]{
	{Name: "ratePlan", Value: func(r *Rate) any { return audit.Ref{ID: r.ratePlanID.String()} }},
	{Name: "category", Value: func(r *Rate) any { return audit.Ref{ID: r.categoryID.String()} }},
	{Name: "priceCents", Value: func(r *Rate) any { return r.price.Cents() }},
}
