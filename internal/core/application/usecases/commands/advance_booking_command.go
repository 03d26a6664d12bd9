package commands

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// BookingAction is a step of the booking workflow that follows planning.
type BookingAction int

const (
	BookingActionUnknown BookingAction = iota
	BookingActionRequest
	BookingActionAccept
	BookingActionReject
	BookingActionRequestConsolidation
	BookingActionReserveAppointment
	BookingActionBookAppointment
	BookingActionClose
)

func getBookingActionStrings() map[BookingAction]string {
	return map[BookingAction]string{
		BookingActionRequest:              "REQUEST",
		BookingActionAccept:               "ACCEPT",
		BookingActionReject:               "REJECT",
		BookingActionRequestConsolidation: "REQUEST_CONSOLIDATION",
		BookingActionReserveAppointment:   "RESERVE_APPOINTMENT",
		BookingActionBookAppointment:      "BOOK_APPOINTMENT",
		BookingActionClose:                "CLOSE",
	}
}

func (a BookingAction) String() string {
	if s, ok := getBookingActionStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseBookingAction accepts the action name in any case.
func ParseBookingAction(s string) (BookingAction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for action, str := range getBookingActionStrings() {
		if str == name {
			return action, nil
		}
	}
	return BookingActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"booking action",
		fmt.Errorf("unknown booking action %q", s),
	)
}

// apply runs the order transition that belongs to the action.
func (a BookingAction) apply(o *order.Order) error {
	switch a {
	case BookingActionRequest:
		return o.RequestBooking()
	case BookingActionAccept:
		return o.AcceptBooking()
	case BookingActionReject:
		return o.RejectBooking()
	case BookingActionRequestConsolidation:
		return o.RequestConsolidation()
	case BookingActionReserveAppointment:
		return o.ReserveAppointment()
	case BookingActionBookAppointment:
		return o.BookAppointment()
	case BookingActionClose:
		return o.Close()
	default:
		return errs.NewValueIsInvalidError("booking action")
	}
}

var ErrAdvanceBookingCommandIsNotConstructed = errors.New(
	"AdvanceBookingCommand must be created via NewAdvanceBookingCommand constructor",
)

// AdvanceBookingCommand moves planned orders through the booking workflow.
type AdvanceBookingCommand struct {
	orderIDs []kernel.UUID
	action   BookingAction

	guard guard.ConstructorGuard
}

// NewAdvanceBookingCommand creates a command to move orders through the booking workflow.
// Requires at least one order ID and a known action.
func NewAdvanceBookingCommand(orderIDs []kernel.UUID, action BookingAction) (AdvanceBookingCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return AdvanceBookingCommand{}, err
	}
	if action.String() == "UNKNOWN" {
		return AdvanceBookingCommand{}, errs.NewValueIsInvalidError("booking action")
	}

	return AdvanceBookingCommand{
		orderIDs: ids,
		action:   action,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceBookingCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceBookingCommandIsNotConstructed)
}

func (c AdvanceBookingCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
func (c AdvanceBookingCommand) Action() BookingAction   { return c.action }
