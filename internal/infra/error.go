package infra

import (
	"errors"

	"hotelcore/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
