package repository

import (
	"context"
	"time"

	"hotelcore/internal/domain/invoice"
	"hotelcore/internal/domain/money"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(dbtx db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: dbtx}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (id, number, reservation_id, subtotal_cents, tax_cents,
		    discount_cents, total_cents, status, payment_method, paid_at, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		inv.ID(), inv.Number(), inv.ReservationID(),
		inv.Subtotal().Cents(), inv.Tax().Cents(), inv.Discount().Cents(), inv.Total().Cents(),
		inv.Status().String(), inv.PaymentMethod(), inv.PaidAt(), inv.IssuedAt(),
	)
	if err != nil {
		return wrap("failed to create invoice", err)
	}
	for _, line := range inv.Lines() {
		if err := r.InsertLine(ctx, inv.ID(), line); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepository) LockByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var (
		invID, reservationID                                     uuid.UUID
		number, status                                           string
		subtotalCents, taxCents, discountCents, totalCents       int64
		paymentMethod                                            *string
		paidAt                                                   *time.Time
		issuedAt                                                 time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, number, reservation_id, subtotal_cents, tax_cents, discount_cents,
		       total_cents, status, payment_method, paid_at, issued_at
		FROM invoices WHERE id = $1 FOR UPDATE`, id,
	).Scan(&invID, &number, &reservationID, &subtotalCents, &taxCents, &discountCents,
		&totalCents, &status, &paymentMethod, &paidAt, &issuedAt)
	if err != nil {
		return nil, wrap("failed to lock invoice", err)
	}

	lines, err := r.linesFor(ctx, invID)
	if err != nil {
		return nil, err
	}

	return invoice.Reconstruct(
		invID, number, reservationID, lines,
		money.New(subtotalCents), money.New(taxCents), money.New(discountCents), money.New(totalCents),
		invoice.Status(status), paymentMethod, paidAt, issuedAt,
	), nil
}

func (r *InvoiceRepository) linesFor(ctx context.Context, invoiceID uuid.UUID) ([]invoice.Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, quantity, unit_price_cents, amount_cents, category
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY created_at`, invoiceID)
	if err != nil {
		return nil, wrap("failed to query invoice lines", err)
	}
	defer rows.Close()

	var lines []invoice.Line
	for rows.Next() {
		var (
			lineID                     uuid.UUID
			description, category      string
			quantity                   int
			unitPriceCents, amountCents int64
		)
		if err := rows.Scan(&lineID, &description, &quantity, &unitPriceCents, &amountCents, &category); err != nil {
			return nil, wrap("failed to scan invoice line", err)
		}
		lines = append(lines, invoice.ReconstructLine(
			lineID, description, quantity,
			money.New(unitPriceCents), money.New(amountCents),
			invoice.LineCategory(category),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("failed to iterate invoice lines", err)
	}
	return lines, nil
}

func (r *InvoiceRepository) ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE reservation_id = $1)`, reservationID,
	).Scan(&exists)
	if err != nil {
		return false, wrap("failed to check invoice existence", err)
	}
	return exists, nil
}

func (r *InvoiceRepository) InsertLine(ctx context.Context, invoiceID uuid.UUID, line invoice.Line) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoice_lines (id, invoice_id, description, quantity, unit_price_cents, amount_cents, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		line.ID(), invoiceID, line.Description(), line.Quantity(),
		line.UnitPrice().Cents(), line.Amount().Cents(), line.Category().String(),
	)
	if err != nil {
		return wrap("failed to insert invoice line", err)
	}
	return nil
}

func (r *InvoiceRepository) DeleteLine(ctx context.Context, invoiceID, lineID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM invoice_lines WHERE invoice_id = $1 AND id = $2`, invoiceID, lineID)
	if err != nil {
		return wrap("failed to delete invoice line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "invoice line not found for delete", nil)
	}
	return nil
}

func (r *InvoiceRepository) UpdateTotals(ctx context.Context, inv *invoice.Invoice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE invoices
		SET subtotal_cents = $2, tax_cents = $3, discount_cents = $4, total_cents = $5, updated_at = now()
		WHERE id = $1`,
		inv.ID(), inv.Subtotal().Cents(), inv.Tax().Cents(), inv.Discount().Cents(), inv.Total().Cents(),
	)
	if err != nil {
		return wrap("failed to update invoice totals", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "invoice not found for update", nil)
	}
	return nil
}

func (r *InvoiceRepository) UpdatePayment(ctx context.Context, inv *invoice.Invoice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE invoices
		SET status = $2, payment_method = $3, paid_at = $4, updated_at = now()
		WHERE id = $1`,
		inv.ID(), inv.Status().String(), inv.PaymentMethod(), inv.PaidAt(),
	)
	if err != nil {
		return wrap("failed to update invoice payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "invoice not found for update", nil)
	}
	return nil
}
