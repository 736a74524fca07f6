package invoice

type Status string

const (
	StatusPending       Status = "PENDING"
	StatusPaid          Status = "PAID"
	StatusPartiallyPaid Status = "PARTIALLY_PAID"
	StatusOverdue       Status = "OVERDUE"
	StatusCancelled     Status = "CANCELLED"
	StatusRefunded      Status = "REFUNDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPartiallyPaid, StatusOverdue, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

type LineCategory string

const (
	LineRoomCharge LineCategory = "ROOM_CHARGE"
	LineService    LineCategory = "SERVICE"
	LineFood       LineCategory = "FOOD"
	LineOther      LineCategory = "OTHER"
)

func (c LineCategory) String() string {
	return string(c)
}
