package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across usecase layers. Handlers map these to
// transport status codes; payload-carrying variants below unwrap to them.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrDuplicateEntity   = errors.New("duplicate entity")
	ErrConflict          = errors.New("booking conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation error")
	ErrRateNotFound      = errors.New("rate not found")
	ErrInvoiceClosed     = errors.New("invoice closed")
	ErrAlreadyPaid       = errors.New("invoice already paid")
	ErrDuplicateInvoice  = errors.New("invoice already exists for reservation")
	ErrInUse             = errors.New("entity still referenced")
)

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type DuplicateEntityError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s with %s=%s already exists", e.Entity, e.Field, e.Value)
}

func (e *DuplicateEntityError) Unwrap() error { return ErrDuplicateEntity }

func Duplicate(entity, field, value string) error {
	return &DuplicateEntityError{Entity: entity, Field: field, Value: value}
}

type ConflictError struct {
	RoomID   string
	CheckIn  string
	CheckOut string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s already booked in [%s, %s)", e.RoomID, e.CheckIn, e.CheckOut)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

type InvalidTransitionError struct {
	Entity string
	ID     string
	From   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s cannot transition from %s", e.Entity, e.ID, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

type RateNotFoundError struct {
	RatePlanID string
	CategoryID string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no rate for plan %s and category %s", e.RatePlanID, e.CategoryID)
}

func (e *RateNotFoundError) Unwrap() error { return ErrRateNotFound }

type InUseError struct {
	Entity    string
	ID        string
	Referrers int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %s still referenced by %d records", e.Entity, e.ID, e.Referrers)
}

func (e *InUseError) Unwrap() error { return ErrInUse }
