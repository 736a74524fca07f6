package shared

import (
	"hotelcore/internal/domain/staff"

	"github.com/google/uuid"
)

// Actor identifies who performs a mutation. It is threaded explicitly
// through every command so the audit trail never reads ambient state.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role staff.Role
}

func (a Actor) String() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID.String()
}
