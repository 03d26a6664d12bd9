package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrExecutePlanCommandIsNotConstructed = errors.New(
	"ExecutePlanCommand must be created via NewExecutePlanCommand constructor",
)

// ExecutePlanCommand confirms every OPEN truck of a lane and ship date.
type ExecutePlanCommand struct {
	laneID   kernel.UUID
	shipDate time.Time

	guard guard.ConstructorGuard
}

// NewExecutePlanCommand creates a command to plan the trucks of a lane and ship date.
// Returns an error if the lane ID is invalid or the ship date is missing.
func NewExecutePlanCommand(laneID kernel.UUID, shipDate time.Time) (ExecutePlanCommand, error) {
	var shipDateErr error
	if shipDate.IsZero() {
		shipDateErr = errs.NewValueIsRequiredError("ship date")
	}
	if err := errors.Join(laneID.Validate(), shipDateErr); err != nil {
		return ExecutePlanCommand{}, err
	}

	return ExecutePlanCommand{
		laneID:   laneID,
		shipDate: kernel.ShipDate(shipDate),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ExecutePlanCommand) Validate() error {
	return c.guard.Validate(ErrExecutePlanCommandIsNotConstructed)
}

func (c ExecutePlanCommand) LaneID() kernel.UUID { return c.laneID }
func (c ExecutePlanCommand) ShipDate() time.Time { return c.shipDate }
