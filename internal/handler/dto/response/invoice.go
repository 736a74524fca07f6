package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InvoiceLineResponse struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	AmountCents    int64     `json:"amountCents"`
	Category       string    `json:"category"`
}

type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	Number        string                `json:"number"`
	ReservationID uuid.UUID             `json:"reservationId"`
	SubtotalCents int64                 `json:"subtotalCents"`
	TaxCents      int64                 `json:"taxCents"`
	DiscountCents int64                 `json:"discountCents"`
	TotalCents    int64                 `json:"totalCents"`
	Status        string                `json:"status"`
	PaymentMethod *string               `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time            `json:"paidAt,omitempty"`
	IssuedAt      time.Time             `json:"issuedAt"`
	Lines         []InvoiceLineResponse `json:"lines"`
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
