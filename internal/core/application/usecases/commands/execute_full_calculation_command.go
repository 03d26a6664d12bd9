package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrExecuteFullCalculationCommandIsNotConstructed = errors.New(
	"ExecuteFullCalculationCommand must be created via NewExecuteFullCalculationCommand constructor",
)

// ExecuteFullCalculationCommand requests and completes the calculation in
// one transaction.
type ExecuteFullCalculationCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewExecuteFullCalculationCommand creates a command to request and complete
// the calculation at once. Without order IDs every eligible order is processed.
func NewExecuteFullCalculationCommand(orderIDs []kernel.UUID) (ExecuteFullCalculationCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, false)
	if err != nil {
		return ExecuteFullCalculationCommand{}, err
	}

	return ExecuteFullCalculationCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ExecuteFullCalculationCommand) Validate() error {
	return c.guard.Validate(ErrExecuteFullCalculationCommandIsNotConstructed)
}

func (c ExecuteFullCalculationCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
