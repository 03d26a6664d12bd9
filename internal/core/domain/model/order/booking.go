package order

// BookingType is how the delivery slot with the consignee is arranged.
type BookingType int

const (
	BookingUnknown BookingType = iota
	BookingStandard
	BookingAppointment
	BookingAdvice
)

func (b BookingType) String() string {
	switch b {
	case BookingStandard:
		return "STANDARD"
	case BookingAppointment:
		return "APPOINTMENT"
	case BookingAdvice:
		return "ADVICE"
	default:
		return "UNKNOWN"
	}
}

// BookingManager is the party responsible for making the booking.
type BookingManager int

const (
	ManagerUnknown BookingManager = iota
	ManagerCarrier
	ManagerControlTower
)

func (m BookingManager) String() string {
	switch m {
	case ManagerCarrier:
		return "CARRIER"
	case ManagerControlTower:
		return "CONTROL_TOWER"
	default:
		return "UNKNOWN"
	}
}

// RequiresBookingRequest reports whether the control tower has to book an
// appointment before the order can move on.
func RequiresBookingRequest(t BookingType, m BookingManager) bool {
	return t == BookingAppointment && m == ManagerControlTower
}
