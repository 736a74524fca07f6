package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/money"

	"github.com/google/uuid"
)

// TaxRatePercent is the fixed tax applied to every invoice subtotal.
const TaxRatePercent = 10

var (
	ErrClosed           = errors.New("invoice is closed for changes")
	ErrAlreadyPaid      = errors.New("invoice is already paid")
	ErrLineNotFound     = errors.New("invoice line not found")
	ErrEmptyDescription = errors.New("line description cannot be empty")
	ErrInvalidQuantity  = errors.New("line quantity must be positive")
)

// Line amount is caller-supplied and deliberately not derived from
// quantity x unit price; discounted or bundled charges set their own amount.
type Line struct {
	id          uuid.UUID
	description string
	quantity    int
	unitPrice   money.Money
	amount      money.Money
	category    LineCategory
}

func NewLine(description string, quantity int, unitPrice, amount money.Money, category LineCategory) (Line, error) {
	if strings.TrimSpace(description) == "" {
		return Line{}, ErrEmptyDescription
	}
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	if amount.IsNegative() {
		return Line{}, money.ErrNegativeAmount
	}
	return Line{
		id:          uuid.New(),
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		amount:      amount,
		category:    category,
	}, nil
}

func ReconstructLine(id uuid.UUID, description string, quantity int, unitPrice, amount money.Money, category LineCategory) Line {
	return Line{id: id, description: description, quantity: quantity, unitPrice: unitPrice, amount: amount, category: category}
}

func (l Line) ID() uuid.UUID          { return l.id }
func (l Line) Description() string    { return l.description }
func (l Line) Quantity() int          { return l.quantity }
func (l Line) UnitPrice() money.Money { return l.unitPrice }
func (l Line) Amount() money.Money    { return l.amount }
func (l Line) Category() LineCategory { return l.category }

type Invoice struct {
	id            uuid.UUID
	number        string
	reservationID uuid.UUID
	lines         []Line
	subtotal      money.Money
	tax           money.Money
	discount      money.Money
	total         money.Money
	status        Status
	paymentMethod *string
	paidAt        *time.Time
	issuedAt      time.Time
}

// Generate issues the invoice for a reservation with a single room-charge
// line. The room charge is the room's own nightly price times nights,
// independent of the rate plan total carried on the reservation.
func Generate(reservationID uuid.UUID, roomNumber string, nightlyPrice money.Money, nights int, issuedAt time.Time) (*Invoice, error) {
	roomCharge := nightlyPrice.MulInt(int64(nights))
	line, err := NewLine(
		fmt.Sprintf("Room %s charge (%d nights)", roomNumber, nights),
		nights,
		nightlyPrice,
		roomCharge,
		LineRoomCharge,
	)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		id:            uuid.New(),
		number:        newInvoiceNumber(issuedAt),
		reservationID: reservationID,
		lines:         []Line{line},
		discount:      money.Zero(),
		status:        StatusPending,
		issuedAt:      issuedAt,
	}
	inv.recompute()
	return inv, nil
}

func Reconstruct(
	id uuid.UUID,
	number string,
	reservationID uuid.UUID,
	lines []Line,
	subtotal, tax, discount, total money.Money,
	status Status,
	paymentMethod *string,
	paidAt *time.Time,
	issuedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		number:        number,
		reservationID: reservationID,
		lines:         lines,
		subtotal:      subtotal,
		tax:           tax,
		discount:      discount,
		total:         total,
		status:        status,
		paymentMethod: paymentMethod,
		paidAt:        paidAt,
		issuedAt:      issuedAt,
	}
}

func (i *Invoice) ID() uuid.UUID            { return i.id }
func (i *Invoice) Number() string           { return i.number }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) Subtotal() money.Money    { return i.subtotal }
func (i *Invoice) Tax() money.Money         { return i.tax }
func (i *Invoice) Discount() money.Money    { return i.discount }
func (i *Invoice) Total() money.Money       { return i.total }
func (i *Invoice) Status() Status           { return i.status }
func (i *Invoice) PaymentMethod() *string   { return i.paymentMethod }
func (i *Invoice) PaidAt() *time.Time       { return i.paidAt }
func (i *Invoice) IssuedAt() time.Time      { return i.issuedAt }

func (i *Invoice) Lines() []Line {
	out := make([]Line, len(i.lines))
	copy(out, i.lines)
	return out
}

func (i *Invoice) AddLine(line Line) error {
	if i.status == StatusPaid {
		return ErrClosed
	}
	i.lines = append(i.lines, line)
	i.recompute()
	return nil
}

func (i *Invoice) RemoveLine(lineID uuid.UUID) error {
	if i.status == StatusPaid {
		return ErrClosed
	}
	for idx, l := range i.lines {
		if l.id == lineID {
			i.lines = append(i.lines[:idx], i.lines[idx+1:]...)
			i.recompute()
			return nil
		}
	}
	return ErrLineNotFound
}

func (i *Invoice) MarkPaid(paymentMethod string, now time.Time) error {
	if i.status == StatusPaid {
		return ErrAlreadyPaid
	}
	i.status = StatusPaid
	i.paymentMethod = &paymentMethod
	i.paidAt = &now
	return nil
}

// recompute re-derives subtotal, tax and total from the line set; any
// line mutation funnels through here so the totals invariant holds.
func (i *Invoice) recompute() {
	subtotal := money.Zero()
	for _, l := range i.lines {
		subtotal = subtotal.Add(l.amount)
	}
	i.subtotal = subtotal
	i.tax = subtotal.Percent(TaxRatePercent)
	i.total = subtotal.Add(i.tax).Sub(i.discount)
}

func (i *Invoice) Clone() *Invoice {
	c := *i
	c.lines = make([]Line, len(i.lines))
	copy(c.lines, i.lines)
	return &c
}

func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", now.UTC().Format("20060102"), suffix)
}

var AuditFields = []audit.FieldSpec[*Invoice]{
	{Name: "number", Value: func(i *Invoice) any { return i.number }},
	{Name: "reservation", Value: func(i *Invoice) any { return audit.Ref{ID: i.reservationID.String()} }},
	{Name: "subtotalCents", Value: func(i *Invoice) any { return i.subtotal.Cents() }},
	{Name: "taxCents", Value: func(i *Invoice) any { return i.tax.Cents() }},
	{Name: "discountCents", Value: func(i *Invoice) any { return i.discount.Cents() }},
	{Name: "totalCents", Value: func(i *Invoice) any { return i.total.Cents() }},
	{Name: "status", Value: func(i *Invoice) any { return i.status.String() }},
	{Name: "paymentMethod", Value: func(i *Invoice) any { return i.paymentMethod }},
	{Name: "paidAt", Value: func(i *Invoice) any { return i.paidAt }},
	{Name: "lineCount", Value: func(i *Invoice) any { return len(i.lines) }},
}
