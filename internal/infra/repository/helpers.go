package repository

import (
	"errors"

	"hotelcore/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// classify maps low-level pgx errors onto repository error kinds.
func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

func wrap(msg string, err error) error {
	return infra.WrapRepoErr(classify(err), msg, err)
}
