package group

import (
	"fmt"
	"slices"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a group.
//
//	Open ─> Trucked ─> Planned      Trucked ─> Open     (trucks discarded)
//	Open ─────────────> Planned     Planned ─> Trucked  (unplan)
//	Open, Trucked ─> Cancelled
type Status int

const (
	Unknown Status = iota
	Open
	Trucked
	Planned
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Trucked:
		return "TRUCKED"
	case Planned:
		return "PLANNED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s < Open || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) transition(action string, to Status, from ...Status) (Status, error) {
	if !slices.Contains(from, s) {
		return Unknown, errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return to, nil
}

func (s Status) MarkTrucked() (Status, error) {
	return s.transition("mark trucked", Trucked, Open, Trucked)
}

func (s Status) ReleaseFromTrucks() (Status, error) {
	return s.transition("release from trucks", Open, Trucked, Open)
}

// Plan also accepts OPEN groups: direct shipments are planned without trucks.
func (s Status) Plan() (Status, error) {
	return s.transition("plan", Planned, Open, Trucked, Planned)
}

func (s Status) Unplan() (Status, error) {
	return s.transition("unplan", Trucked, Planned)
}

func (s Status) Cancel() (Status, error) {
	return s.transition("cancel", Cancelled, Open, Trucked)
}
