package room

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusReserved    Status = "RESERVED"
	StatusOccupied    Status = "OCCUPIED"
	StatusCleaning    Status = "CLEANING"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusCleaning, StatusMaintenance:
		return true
	default:
		return false
	}
}
