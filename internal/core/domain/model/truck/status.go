package truck

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a truck: Open <-> Planned.
type Status int

const (
	Unknown Status = iota
	Open
	Planned
)

func (s Status) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Planned:
		return "PLANNED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s != Open && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) Plan() (Status, error) {
	if s != Open {
		return Unknown, errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan", s),
		)
	}
	return Planned, nil
}

func (s Status) Unplan() (Status, error) {
	if s != Planned {
		return Unknown, errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to unplan", s),
		)
	}
	return Open, nil
}
