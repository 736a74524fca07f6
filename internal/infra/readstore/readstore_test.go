//go:build unit

package readstore

import (
	"testing"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewErr(t *testing.T) {
	t.Run("missing row becomes a usecase not-found", func(t *testing.T) {
		err := viewErr(pgx.ErrNoRows, "Reservation", "abc", "failed to find reservation")

		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.False(t, infra.IsKind(err, infra.KindNotFound))

		var nf *errs.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Reservation", nf.Entity)
		assert.Equal(t, "abc", nf.ID)
	})

	t.Run("other scan failures stay repository errors", func(t *testing.T) {
		err := viewErr(assert.AnError, "Reservation", "abc", "failed to find reservation")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.NotErrorIs(t, err, errs.ErrNotFound)
	})
}
