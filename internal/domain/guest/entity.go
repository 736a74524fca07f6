package guest

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("guest name cannot be empty")
	ErrInvalidEmail = errors.New("invalid guest email")
)

type Guest struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
}

func New(firstName, lastName, email, phone string) (*Guest, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return &Guest{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}, nil
}

func Reconstruct(id uuid.UUID, firstName, lastName, email, phone string) *Guest {
	return &Guest{id: id, firstName: firstName, lastName: lastName, email: email, phone: phone}
}

func (g *Guest) ID() uuid.UUID     { return g.id }
func (g *Guest) FirstName() string { return g.firstName }
func (g *Guest) LastName() string  { return g.lastName }
func (g *Guest) Email() string     { return g.email }
func (g *Guest) Phone() string     { return g.phone }

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}
