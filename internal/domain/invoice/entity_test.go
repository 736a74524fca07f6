//go:build unit

package invoice_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"hotelcore/internal/domain/invoice"
	"hotelcore/internal/domain/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 13, 11, 0, 0, 0, time.UTC)

func generate(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.Generate(uuid.New(), "101", money.New(12000), 3, issuedAt)
	require.NoError(t, err)
	return inv
}

func serviceLine(t *testing.T, amountCents int64) invoice.Line {
	t.Helper()
	line, err := invoice.NewLine("Laundry", 1, money.New(amountCents), money.New(amountCents), invoice.LineService)
	require.NoError(t, err)
	return line
}

func TestGenerate(t *testing.T) {
	inv := generate(t)

	t.Run("issues a single room charge line", func(t *testing.T) {
		lines := inv.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "Room 101 charge (3 nights)", lines[0].Description())
		assert.Equal(t, invoice.LineRoomCharge, lines[0].Category())
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, int64(12000), lines[0].UnitPrice().Cents())
		assert.Equal(t, int64(36000), lines[0].Amount().Cents())
	})

	t.Run("totals carry the tax", func(t *testing.T) {
		assert.Equal(t, int64(36000), inv.Subtotal().Cents())
		assert.Equal(t, int64(3600), inv.Tax().Cents())
		assert.Equal(t, int64(0), inv.Discount().Cents())
		assert.Equal(t, int64(39600), inv.Total().Cents())
	})

	t.Run("starts pending and unpaid", func(t *testing.T) {
		assert.Equal(t, invoice.StatusPending, inv.Status())
		assert.Nil(t, inv.PaymentMethod())
		assert.Nil(t, inv.PaidAt())
		assert.Equal(t, issuedAt, inv.IssuedAt())
	})

	t.Run("number has date-stamped format", func(t *testing.T) {
		parts := strings.Split(inv.Number(), "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "INV", parts[0])
		assert.Equal(t, "20250313", parts[1])
		assert.Len(t, parts[2], 6)
	})

	t.Run("rejects zero nights", func(t *testing.T) {
		_, err := invoice.Generate(uuid.New(), "101", money.New(12000), 0, issuedAt)
		assert.ErrorIs(t, err, invoice.ErrInvalidQuantity)
	})
}

func TestNewLine(t *testing.T) {
	tests := []struct {
		name        string
		description string
		quantity    int
		amountCents int64
		errIs       error
	}{
		{name: "blank description", description: "  ", quantity: 1, amountCents: 100, errIs: invoice.ErrEmptyDescription},
		{name: "zero quantity", description: "Minibar", quantity: 0, amountCents: 100, errIs: invoice.ErrInvalidQuantity},
		{name: "negative amount", description: "Minibar", quantity: 1, amountCents: -100, errIs: money.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := invoice.NewLine(tt.description, tt.quantity, money.New(100), money.New(tt.amountCents), invoice.LineOther)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestAddLine(t *testing.T) {
	t.Run("recomputes totals", func(t *testing.T) {
		inv := generate(t)
		require.NoError(t, inv.AddLine(serviceLine(t, 2500)))

		assert.Len(t, inv.Lines(), 2)
		assert.Equal(t, int64(38500), inv.Subtotal().Cents())
		assert.Equal(t, int64(3850), inv.Tax().Cents())
		assert.Equal(t, int64(42350), inv.Total().Cents())
	})

	t.Run("rejected on a paid invoice", func(t *testing.T) {
		inv := generate(t)
		require.NoError(t, inv.MarkPaid("CASH", issuedAt))

		assert.ErrorIs(t, inv.AddLine(serviceLine(t, 2500)), invoice.ErrClosed)
		assert.Len(t, inv.Lines(), 1)
	})
}

func TestRemoveLine(t *testing.T) {
	t.Run("recomputes totals", func(t *testing.T) {
		inv := generate(t)
		extra := serviceLine(t, 2500)
		require.NoError(t, inv.AddLine(extra))
		require.NoError(t, inv.RemoveLine(extra.ID()))

		assert.Len(t, inv.Lines(), 1)
		assert.Equal(t, int64(36000), inv.Subtotal().Cents())
		assert.Equal(t, int64(39600), inv.Total().Cents())
	})

	t.Run("unknown line", func(t *testing.T) {
		inv := generate(t)
		assert.ErrorIs(t, inv.RemoveLine(uuid.New()), invoice.ErrLineNotFound)
	})

	t.Run("rejected on a paid invoice", func(t *testing.T) {
		inv := generate(t)
		lineID := inv.Lines()[0].ID()
		require.NoError(t, inv.MarkPaid("CARD", issuedAt))

		assert.ErrorIs(t, inv.RemoveLine(lineID), invoice.ErrClosed)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("records method and timestamp", func(t *testing.T) {
		inv := generate(t)
		paidAt := issuedAt.Add(2 * time.Hour)
		require.NoError(t, inv.MarkPaid("TRANSFER", paidAt))

		assert.Equal(t, invoice.StatusPaid, inv.Status())
		require.NotNil(t, inv.PaymentMethod())
		assert.Equal(t, "TRANSFER", *inv.PaymentMethod())
		require.NotNil(t, inv.PaidAt())
		assert.Equal(t, paidAt, *inv.PaidAt())
	})

	t.Run("rejected when already paid", func(t *testing.T) {
		inv := generate(t)
		require.NoError(t, inv.MarkPaid("CASH", issuedAt))

		assert.ErrorIs(t, inv.MarkPaid("CARD", issuedAt), invoice.ErrAlreadyPaid)
		assert.Equal(t, "CASH", *inv.PaymentMethod())
	})
}

func TestTotalsInvariant(t *testing.T) {
	inv := generate(t)
	for n := 1; n <= 5; n++ {
		line, err := invoice.NewLine(fmt.Sprintf("Service %d", n), 1, money.New(int64(n*137)), money.New(int64(n*137)), invoice.LineService)
		require.NoError(t, err)
		require.NoError(t, inv.AddLine(line))

		want := inv.Subtotal().Add(inv.Tax()).Sub(inv.Discount())
		assert.Equal(t, want.Cents(), inv.Total().Cents())
	}
}
