package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const invoiceViewColumns = `id, number, reservation_id, subtotal_cents, tax_cents,
	discount_cents, total_cents, status, payment_method, paid_at, issued_at`

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(dbtx db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: dbtx}
}

func (s *InvoiceReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+invoiceViewColumns+` FROM invoices WHERE id = $1`, id)
	return s.scanWithLines(ctx, row, id.String())
}

func (s *InvoiceReadStore) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*queries.InvoiceView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+invoiceViewColumns+` FROM invoices WHERE reservation_id = $1`, reservationID)
	return s.scanWithLines(ctx, row, "reservation:"+reservationID.String())
}

func (s *InvoiceReadStore) scanWithLines(ctx context.Context, row pgx.Row, ref string) (*queries.InvoiceView, error) {
	var v queries.InvoiceView
	err := row.Scan(
		&v.ID, &v.Number, &v.ReservationID, &v.SubtotalCents, &v.TaxCents,
		&v.DiscountCents, &v.TotalCents, &v.Status, &v.PaymentMethod, &v.PaidAt, &v.IssuedAt,
	)
	if err != nil {
		return nil, viewErr(err, "Invoice", ref, "failed to find invoice")
	}

	lines, err := s.linesFor(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Lines = lines
	return &v, nil
}

func (s *InvoiceReadStore) linesFor(ctx context.Context, invoiceID uuid.UUID) ([]queries.InvoiceLineView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, description, quantity, unit_price_cents, amount_cents, category
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY created_at, id`, invoiceID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list invoice lines", err)
	}
	defer rows.Close()

	lines := make([]queries.InvoiceLineView, 0)
	for rows.Next() {
		var l queries.InvoiceLineView
		if err := rows.Scan(&l.ID, &l.Description, &l.Quantity, &l.UnitPriceCents, &l.AmountCents, &l.Category); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan invoice line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate invoice lines", err)
	}
	return lines, nil
}
