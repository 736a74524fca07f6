package reservation

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	// StatusNoShow is part of the data model but no transition produces it;
	// it participates in terminal-state handling only.
	StatusNoShow Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the lifecycle. Terminal
// reservations are excluded from room conflict checks.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

func (p PaymentStatus) String() string {
	return string(p)
}
