package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrMismatch        = errors.New("password mismatch")
	ErrInvalidPassword = errors.New("invalid password")
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
