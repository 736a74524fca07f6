package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr's identity to err so errors.Is(err, markErr) holds
// while the original cause stays in the chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
