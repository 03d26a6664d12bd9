package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrExecuteGroupingCommandIsNotConstructed = errors.New(
	"ExecuteGroupingCommand must be created via NewExecuteGroupingCommand constructor",
)

// ExecuteGroupingCommand groups CALCULATED groupage orders by lane. Without
// a ship date every ship date with calculated orders is processed.
type ExecuteGroupingCommand struct {
	shipDate *time.Time

	guard guard.ConstructorGuard
}

// NewExecuteGroupingCommand creates a command to group calculated groupage orders.
// A nil or zero ship date groups every date that has calculated orders.
func NewExecuteGroupingCommand(shipDate *time.Time) ExecuteGroupingCommand {
	cmd := ExecuteGroupingCommand{
		guard: guard.NewConstructorGuard(),
	}
	if shipDate != nil && !shipDate.IsZero() {
		day := kernel.ShipDate(*shipDate)
		cmd.shipDate = &day
	}
	return cmd
}

func (c ExecuteGroupingCommand) Validate() error {
	return c.guard.Validate(ErrExecuteGroupingCommandIsNotConstructed)
}

// ShipDate returns nil when all ship dates are requested.
func (c ExecuteGroupingCommand) ShipDate() *time.Time {
	return c.shipDate
}
