//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotelcore/internal/domain/reservation"
	"hotelcore/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate(t *testing.T) {
	t.Run("builds a confirmed reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, b.GuestID, res.GuestID())
		assert.Equal(t, b.Room.ID, res.RoomID())
		assert.Equal(t, b.RatePlanID, res.RatePlanID())
		assert.Equal(t, reservation.PaymentUnpaid, res.PaymentStatus())
		assert.Nil(t, res.ActualCheckIn())
		assert.Nil(t, res.ActualCheckOut())
	})

	t.Run("total is nightly rate times nights", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.NightlyRateCents = 15000 }).
			BuildDomain()
		require.NoError(t, err)

		// 3 nights at 15000 cents
		assert.Equal(t, int64(45000), res.Total().Cents())
	})

	t.Run("number has date-stamped format", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		parts := strings.Split(res.Number(), "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "RSV", parts[0])
		assert.Equal(t, "20250301", parts[1])
		assert.Len(t, parts[2], 6)
		assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
	})

	t.Run("generated numbers differ", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		first, err := b.BuildDomain()
		require.NoError(t, err)
		second, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.Number(), second.Number())
	})

	tests := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name: "stay starting before today",
			mutate: func(b *builder.ReservationBuilder) {
				b.CheckIn = time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
				b.CheckOut = time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC)
			},
			errIs: reservation.ErrStayInPast,
		},
		{
			name:   "zero guests",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 },
			errIs:  reservation.ErrTooManyGuests,
		},
		{
			name:   "negative guests",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = -1 },
			errIs:  reservation.ErrTooManyGuests,
		},
		{
			name:   "guests above room capacity",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 3 },
			errIs:  reservation.ErrTooManyGuests,
		},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := builder.NewReservationBuilder().With(tt.mutate).BuildDomain()
			assert.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("allows stay starting today", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.CheckIn = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
				b.CheckOut = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
			}).
			BuildDomain()
		assert.NoError(t, err)
	})
}

func TestReservationCheckIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("from confirmed", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(now))

		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		require.NotNil(t, res.ActualCheckIn())
		assert.Equal(t, now, *res.ActualCheckIn())
	})

	t.Run("rejected when already checked in", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(now))

		assert.ErrorIs(t, res.CheckIn(now), reservation.ErrNotCheckInable)
	})

	t.Run("rejected after cancellation", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.Cancel())

		assert.ErrorIs(t, res.CheckIn(now), reservation.ErrNotCheckInable)
	})
}

func TestReservationCheckOut(t *testing.T) {
	checkInAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOutAt := time.Date(2025, 3, 13, 11, 0, 0, 0, time.UTC)

	t.Run("from checked in", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(checkInAt))
		require.NoError(t, res.CheckOut(checkOutAt))

		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		require.NotNil(t, res.ActualCheckOut())
		assert.Equal(t, checkOutAt, *res.ActualCheckOut())
	})

	t.Run("rejected before check-in", func(t *testing.T) {
		res := mustBuild(t)
		assert.ErrorIs(t, res.CheckOut(checkOutAt), reservation.ErrNotCheckOutable)
	})

	t.Run("rejected when already checked out", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(checkInAt))
		require.NoError(t, res.CheckOut(checkOutAt))

		assert.ErrorIs(t, res.CheckOut(checkOutAt), reservation.ErrNotCheckOutable)
	})
}

func TestReservationCancel(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("from confirmed", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.Cancel())

		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("from checked in", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(now))
		require.NoError(t, res.Cancel())

		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.Cancel())
		require.NoError(t, res.Cancel())

		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("rejected after check-out", func(t *testing.T) {
		res := mustBuild(t)
		require.NoError(t, res.CheckIn(now))
		require.NoError(t, res.CheckOut(now.Add(time.Hour)))

		assert.ErrorIs(t, res.Cancel(), reservation.ErrNotCancellable)
	})
}

func mustBuild(t *testing.T) *reservation.Reservation {
	t.Helper()
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	return res
}
