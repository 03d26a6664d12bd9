package order

import (
	"fmt"
	"slices"

	"freight/internal/pkg/errs"
)

// Status is the position of an order in the planning lifecycle.
//
// Main path:
//
//	Open ─> PalletCalcRequested ─> Calculated ─> Grouped ─> Trucked ─> Planned
//	Planned ─> Requested ─┬─> Accepted ─> AptReserved ─> AptBooked ─> Closed
//	                      ├─> Rejected                     Accepted ─> Closed
//	                      └─> ConsolidationRequested
//
// Side branches before Grouped: Blocked (master data, lane or dimension
// problems), OnHold (groupage ceilings or a manual hold) and
// BookingRequested (control-tower appointment bookings).
//
// Statuses are persisted as their integer value; the order of the constants
// is part of the storage format.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Open
	Blocked
	OnHold
	BookingRequested
	PalletCalcRequested
	Calculated
	Grouped
	Trucked
	Planned
	Requested
	Accepted
	Rejected
	ConsolidationRequested
	AptReserved
	AptBooked
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "UNKNOWN",
		Open:                   "OPEN",
		Blocked:                "BLOCKED",
		OnHold:                 "ON_HOLD",
		BookingRequested:       "BOOKING_REQUESTED",
		PalletCalcRequested:    "PALLET_CALC_REQUESTED",
		Calculated:             "CALCULATED",
		Grouped:                "GROUPED",
		Trucked:                "TRUCKED",
		Planned:                "PLANNED",
		Requested:              "REQUESTED",
		Accepted:               "ACCEPTED",
		Rejected:               "REJECTED",
		ConsolidationRequested: "CONSOLIDATION_REQUESTED",
		AptReserved:            "APT_RESERVED",
		AptBooked:              "APT_BOOKED",
		Closed:                 "CLOSED",
	}
}

// ParseStatus maps a status name back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name used in events and API payloads.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsClassifiable reports whether the order has not been grouped yet and can
// therefore be (re)classified.
func (s Status) IsClassifiable() bool {
	return slices.Contains([]Status{Open, Blocked, OnHold, BookingRequested, PalletCalcRequested, Calculated}, s)
}

// IsPlanned reports whether the order reached planning or any booking status after it.
func (s Status) IsPlanned() bool {
	return s >= Planned
}

// transition returns to when s is one of from, otherwise a precondition error
// naming the rejected action.
func (s Status) transition(action string, to Status, from ...Status) (Status, error) {
	if !slices.Contains(from, s) {
		return Unknown, errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return to, nil
}

func (s Status) RequestCalculation() (Status, error) {
	return s.transition("request calculation", PalletCalcRequested, Open)
}

func (s Status) CompleteCalculation() (Status, error) {
	return s.transition("complete calculation", Calculated, PalletCalcRequested, Calculated)
}

func (s Status) Group() (Status, error) {
	return s.transition("group", Grouped, Calculated, Grouped)
}

func (s Status) Ungroup() (Status, error) {
	return s.transition("ungroup", Calculated, Grouped, Calculated)
}

func (s Status) LoadOnTruck() (Status, error) {
	return s.transition("load on truck", Trucked, Grouped, Trucked)
}

func (s Status) UnloadFromTruck() (Status, error) {
	return s.transition("unload from truck", Grouped, Trucked)
}

func (s Status) Plan() (Status, error) {
	return s.transition("plan", Planned, Trucked)
}

// PlanWithoutTruck covers parcel and direct shipments, which skip truck packing.
func (s Status) PlanWithoutTruck() (Status, error) {
	return s.transition("plan without truck", Planned, Calculated, Grouped)
}

func (s Status) Unplan() (Status, error) {
	return s.transition("unplan", Trucked, Planned)
}

// Reopen returns a grouped order to the start of the pipeline, as cancelling
// its group requires.
func (s Status) Reopen() (Status, error) {
	return s.transition("reopen", Open, Calculated, Grouped, Trucked)
}

func (s Status) ResetToCalculated() (Status, error) {
	return s.transition("reset to calculated", Calculated, Calculated, Grouped, Trucked, Planned)
}

func (s Status) Hold() (Status, error) {
	return s.transition("hold", OnHold, Open, Blocked, BookingRequested, PalletCalcRequested, Calculated)
}

func (s Status) Release() (Status, error) {
	return s.transition("release", Open, OnHold)
}

func (s Status) RequestBooking() (Status, error) {
	return s.transition("request booking", Requested, Planned)
}

func (s Status) AcceptBooking() (Status, error) {
	return s.transition("accept booking", Accepted, Requested)
}

func (s Status) RejectBooking() (Status, error) {
	return s.transition("reject booking", Rejected, Requested)
}

func (s Status) RequestConsolidation() (Status, error) {
	return s.transition("request consolidation", ConsolidationRequested, Requested)
}

func (s Status) ReserveAppointment() (Status, error) {
	return s.transition("reserve appointment", AptReserved, Accepted)
}

func (s Status) BookAppointment() (Status, error) {
	return s.transition("book appointment", AptBooked, AptReserved)
}

func (s Status) Close() (Status, error) {
	return s.transition("close", Closed, Accepted, AptBooked)
}
