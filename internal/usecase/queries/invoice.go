package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InvoiceLineView struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	AmountCents    int64     `json:"amount_cents"`
	Category       string    `json:"category"`
}

type InvoiceView struct {
	ID            uuid.UUID         `json:"id"`
	Number        string            `json:"number"`
	ReservationID uuid.UUID         `json:"reservation_id"`
	SubtotalCents int64             `json:"subtotal_cents"`
	TaxCents      int64             `json:"tax_cents"`
	DiscountCents int64             `json:"discount_cents"`
	TotalCents    int64             `json:"total_cents"`
	Status        string            `json:"status"`
	PaymentMethod *string           `json:"payment_method,omitempty"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	IssuedAt      time.Time         `json:"issued_at"`
	Lines         []InvoiceLineView `json:"lines"`
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	GetByReservation(ctx context.Context, reservationID uuid.UUID) (*InvoiceView, error)
}
