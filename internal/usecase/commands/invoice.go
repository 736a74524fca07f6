package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotelcore/internal/domain/audit"
	"hotelcore/internal/domain/invoice"
	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddLineParams struct {
	Description    string
	Quantity       int
	UnitPriceCents int64
	AmountCents    int64
	Category       string
}

type InvoiceCommands interface {
	Generate(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) (*queries.InvoiceView, error)
	AddLine(ctx context.Context, invoiceID uuid.UUID, params AddLineParams, actor shared.Actor) (*queries.InvoiceView, error)
	RemoveLine(ctx context.Context, invoiceID, lineID uuid.UUID, actor shared.Actor) (*queries.InvoiceView, error)
	MarkPaid(ctx context.Context, invoiceID uuid.UUID, paymentMethod string, actor shared.Actor) (*queries.InvoiceView, error)
}

type invoiceCommands struct {
	uow    shared.UnitOfWork
	views  queries.InvoiceQueries
	trail  shared.AuditTrail
	clock  clock.Clock
	logger *slog.Logger
}

func NewInvoiceCommands(
	uow shared.UnitOfWork,
	views queries.InvoiceQueries,
	trail shared.AuditTrail,
	clk clock.Clock,
	logger *slog.Logger,
) InvoiceCommands {
	return &invoiceCommands{
		uow:    uow,
		views:  views,
		trail:  trail,
		clock:  clk,
		logger: logger,
	}
}

// Generate issues the one invoice a reservation may have. The room charge
// is priced from the room category's own base price, not from the rate
// plan the reservation total was computed with; the two sources can
// diverge and that divergence is only logged, pending product
// clarification.
func (c *invoiceCommands) Generate(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) (*queries.InvoiceView, error) {
	var created *invoice.Invoice

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return mapNotFound(err, entityReservation, reservationID)
		}

		exists, err := tx.Invoices().ExistsForReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateInvoice
		}

		rm, err := tx.Rooms().ByID(ctx, res.RoomID())
		if err != nil {
			return mapNotFound(err, entityRoom, res.RoomID())
		}
		cat, err := tx.Rooms().CategoryByID(ctx, rm.CategoryID())
		if err != nil {
			return mapNotFound(err, entityRoom, rm.CategoryID())
		}

		nights := res.Stay().Nights()
		inv, err := invoice.Generate(reservationID, rm.Number(), cat.BasePrice(), nights, c.clock.Now())
		if err != nil {
			return err
		}

		if roomCharge := cat.BasePrice().MulInt(int64(nights)); roomCharge != res.Total() {
			c.logger.Debug("invoice room charge diverges from reservation total",
				"reservation_id", reservationID.String(),
				"reservation_total_cents", res.Total().Cents(),
				"room_charge_cents", roomCharge.Cents())
		}

		if err := tx.Invoices().Create(ctx, inv); err != nil {
			return err
		}
		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.trail.Record(ctx, audit.Created(entityInvoice, created.ID(), actor.String(), c.clock.Now()))
	return c.views.GetByID(ctx, created.ID())
}

func (c *invoiceCommands) AddLine(ctx context.Context, invoiceID uuid.UUID, params AddLineParams, actor shared.Actor) (*queries.InvoiceView, error) {
	unitPrice, err := money.NewNonNegative(params.UnitPriceCents)
	if err != nil {
		return nil, errs.Validation("unitPrice", err.Error())
	}
	amount, err := money.NewNonNegative(params.AmountCents)
	if err != nil {
		return nil, errs.Validation("amount", err.Error())
	}
	line, err := invoice.NewLine(params.Description, params.Quantity, unitPrice, amount, invoice.LineCategory(params.Category))
	if err != nil {
		return nil, errs.Validation("line", err.Error())
	}

	return c.mutate(ctx, invoiceID, actor, func(tx shared.Tx, inv *invoice.Invoice) error {
		if err := inv.AddLine(line); err != nil {
			return mapInvoiceErr(err, inv)
		}
		if err := tx.Invoices().InsertLine(ctx, inv.ID(), line); err != nil {
			return err
		}
		return tx.Invoices().UpdateTotals(ctx, inv)
	})
}

func (c *invoiceCommands) RemoveLine(ctx context.Context, invoiceID, lineID uuid.UUID, actor shared.Actor) (*queries.InvoiceView, error) {
	return c.mutate(ctx, invoiceID, actor, func(tx shared.Tx, inv *invoice.Invoice) error {
		if err := inv.RemoveLine(lineID); err != nil {
			return mapInvoiceErr(err, inv)
		}
		if err := tx.Invoices().DeleteLine(ctx, inv.ID(), lineID); err != nil {
			return err
		}
		return tx.Invoices().UpdateTotals(ctx, inv)
	})
}

// MarkPaid closes the invoice and propagates the paid state to the linked
// reservation in the same unit of work.
func (c *invoiceCommands) MarkPaid(ctx context.Context, invoiceID uuid.UUID, paymentMethod string, actor shared.Actor) (*queries.InvoiceView, error) {
	var resBefore, resAfter *reservation.Reservation

	view, err := c.mutate(ctx, invoiceID, actor, func(tx shared.Tx, inv *invoice.Invoice) error {
		if err := inv.MarkPaid(paymentMethod, c.clock.Now()); err != nil {
			return mapInvoiceErr(err, inv)
		}
		if err := tx.Invoices().UpdatePayment(ctx, inv); err != nil {
			return err
		}

		res, err := tx.Reservations().LockByID(ctx, inv.ReservationID())
		if err != nil {
			return mapNotFound(err, entityReservation, inv.ReservationID())
		}
		resBefore = res.Clone()
		res.MarkPaymentPaid()
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		resAfter = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resBefore != nil && resAfter != nil {
		if changes := audit.Diff(reservation.AuditFields, resBefore, resAfter); len(changes) > 0 {
			c.trail.Record(ctx, audit.Updated(entityReservation, resAfter.ID(), actor.String(), c.clock.Now(), changes))
		}
	}
	return view, nil
}

// mutate wraps an invoice mutation in one unit of work and records the
// resulting field diff on the trail.
func (c *invoiceCommands) mutate(
	ctx context.Context,
	invoiceID uuid.UUID,
	actor shared.Actor,
	apply func(tx shared.Tx, inv *invoice.Invoice) error,
) (*queries.InvoiceView, error) {
	var before, after *invoice.Invoice

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invoices().LockByID(ctx, invoiceID)
		if err != nil {
			return mapNotFound(err, entityInvoice, invoiceID)
		}
		before = inv.Clone()
		if err := apply(tx, inv); err != nil {
			return err
		}
		after = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changes := audit.Diff(invoice.AuditFields, before, after); len(changes) > 0 {
		c.trail.Record(ctx, audit.Updated(entityInvoice, after.ID(), actor.String(), c.clock.Now(), changes))
	}
	return c.views.GetByID(ctx, invoiceID)
}

func mapInvoiceErr(err error, inv *invoice.Invoice) error {
	switch {
	case errors.Is(err, invoice.ErrClosed):
		return errs.ErrInvoiceClosed
	case errors.Is(err, invoice.ErrAlreadyPaid):
		return errs.ErrAlreadyPaid
	case errors.Is(err, invoice.ErrLineNotFound):
		return errs.NotFound("InvoiceLine", inv.ID().String())
	default:
		return err
	}
}
