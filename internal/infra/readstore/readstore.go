// Package readstore implements the query side of the booking core with
// hand-written SQL over pgx. Read stores are bound directly to the usecase
// query interfaces, so they speak the usecase error taxonomy: a missing row
// surfaces as NotFound, everything else stays a repository failure.
package readstore

import (
	"errors"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

func viewErr(err error, entity, ref, failMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(entity, ref)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, failMsg, err)
}
