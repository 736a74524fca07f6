package staff

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleReception Role = "reception"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleReception:
		return true
	default:
		return false
	}
}

type User struct {
	id           uuid.UUID
	email        string
	passwordHash string
	name         string
	role         Role
	lastLoginAt  *time.Time
}

func Reconstruct(id uuid.UUID, email, passwordHash, name string, role Role, lastLoginAt *time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		lastLoginAt:  lastLoginAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Name() string            { return u.name }
func (u *User) Role() Role              { return u.role }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
