//go:build unit

package reservation_test

import (
	"testing"

	"hotelcore/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status reservation.Status
		want   bool
	}{
		{status: reservation.StatusPending, want: false},
		{status: reservation.StatusConfirmed, want: false},
		{status: reservation.StatusCheckedIn, want: false},
		{status: reservation.StatusCheckedOut, want: true},
		{status: reservation.StatusCancelled, want: true},
		{status: reservation.StatusNoShow, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, reservation.StatusConfirmed.IsValid())
	assert.False(t, reservation.Status("BOOKED").IsValid())
}
