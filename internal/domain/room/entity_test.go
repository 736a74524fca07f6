//go:build unit

package room_test

import (
	"testing"

	"hotelcore/internal/domain/money"
	"hotelcore/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, status room.Status) *room.Room {
	t.Helper()
	r, err := room.NewRoom("101", uuid.New(), 2)
	require.NoError(t, err)
	switch status {
	case room.StatusAvailable:
	case room.StatusReserved:
		r.MarkReserved()
	case room.StatusOccupied:
		r.MarkOccupied()
	case room.StatusCleaning:
		r.MarkCleaning()
	case room.StatusMaintenance:
		require.NoError(t, r.StartMaintenance())
	}
	return r
}

func TestNewRoom(t *testing.T) {
	t.Run("starts available", func(t *testing.T) {
		r, err := room.NewRoom("205", uuid.New(), 3)
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, "205", r.Number())
		assert.Equal(t, 3, r.MaxOccupancy())
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := room.NewRoom("", uuid.New(), 2)
		assert.ErrorIs(t, err, room.ErrEmptyNumber)
	})

	t.Run("rejects non-positive occupancy", func(t *testing.T) {
		_, err := room.NewRoom("101", uuid.New(), 0)
		assert.ErrorIs(t, err, room.ErrInvalidOccupancy)
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := room.NewCategory("Deluxe", money.New(18000), 4)
		require.NoError(t, err)
		assert.Equal(t, "Deluxe", c.Name())
		assert.Equal(t, int64(18000), c.BasePrice().Cents())
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		_, err := room.NewCategory("Deluxe", money.New(-1), 4)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("rejects non-positive occupancy", func(t *testing.T) {
		_, err := room.NewCategory("Deluxe", money.New(18000), 0)
		assert.ErrorIs(t, err, room.ErrInvalidOccupancy)
	})
}

func TestReleaseAfterCancel(t *testing.T) {
	tests := []struct {
		name   string
		status room.Status
		want   room.Status
	}{
		{name: "reserved room is freed", status: room.StatusReserved, want: room.StatusAvailable},
		{name: "occupied room is freed", status: room.StatusOccupied, want: room.StatusAvailable},
		{name: "cleaning room keeps its state", status: room.StatusCleaning, want: room.StatusCleaning},
		{name: "maintenance room keeps its state", status: room.StatusMaintenance, want: room.StatusMaintenance},
		{name: "available room stays available", status: room.StatusAvailable, want: room.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRoom(t, tt.status)
			r.ReleaseAfterCancel()
			assert.Equal(t, tt.want, r.Status())
		})
	}
}

func TestFinishCleaning(t *testing.T) {
	t.Run("from cleaning", func(t *testing.T) {
		r := newRoom(t, room.StatusCleaning)
		require.NoError(t, r.FinishCleaning())
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("rejected from other statuses", func(t *testing.T) {
		for _, s := range []room.Status{room.StatusAvailable, room.StatusReserved, room.StatusOccupied, room.StatusMaintenance} {
			r := newRoom(t, s)
			assert.ErrorIs(t, r.FinishCleaning(), room.ErrInvalidStatus, s.String())
		}
	})
}

func TestMaintenance(t *testing.T) {
	t.Run("starts from available", func(t *testing.T) {
		r := newRoom(t, room.StatusAvailable)
		require.NoError(t, r.StartMaintenance())
		assert.Equal(t, room.StatusMaintenance, r.Status())
	})

	t.Run("starts from cleaning", func(t *testing.T) {
		r := newRoom(t, room.StatusCleaning)
		require.NoError(t, r.StartMaintenance())
		assert.Equal(t, room.StatusMaintenance, r.Status())
	})

	t.Run("refused while reserved or occupied", func(t *testing.T) {
		for _, s := range []room.Status{room.StatusReserved, room.StatusOccupied} {
			r := newRoom(t, s)
			assert.ErrorIs(t, r.StartMaintenance(), room.ErrInvalidStatus, s.String())
			assert.Equal(t, s, r.Status())
		}
	})

	t.Run("finishes back to available", func(t *testing.T) {
		r := newRoom(t, room.StatusMaintenance)
		require.NoError(t, r.FinishMaintenance())
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("finish refused when not under maintenance", func(t *testing.T) {
		r := newRoom(t, room.StatusAvailable)
		assert.ErrorIs(t, r.FinishMaintenance(), room.ErrInvalidStatus)
	})
}
