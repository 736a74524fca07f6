package request

import (
	"hotelcore/internal/usecase/commands"
)

type GenerateInvoiceRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
}

type AddInvoiceLineRequest struct {
	Description    string `json:"description" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required,min=0"`
	Category       string `json:"category" binding:"required,oneof=ROOM_CHARGE SERVICE FOOD OTHER"`
}

func (r AddInvoiceLineRequest) ToParams() commands.AddLineParams {
	return commands.AddLineParams{
		Description:    r.Description,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
		AmountCents:    r.UnitPriceCents * int64(r.Quantity),
		Category:       r.Category,
	}
}

type MarkInvoicePaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=CASH CARD TRANSFER"`
}
