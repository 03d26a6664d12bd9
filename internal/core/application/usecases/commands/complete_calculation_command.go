package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCompleteCalculationCommandIsNotConstructed = errors.New(
	"CompleteCalculationCommand must be created via NewCompleteCalculationCommand constructor",
)

// CompleteCalculationCommand calculates metrics and consolidation for
// queued orders. Selected orders may also be CALCULATED already, which
// recalculates them.
type CompleteCalculationCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteCalculationCommand creates a command to finish the pallet calculation.
// Without order IDs every order waiting for calculation is processed.
func NewCompleteCalculationCommand(orderIDs []kernel.UUID) (CompleteCalculationCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, false)
	if err != nil {
		return CompleteCalculationCommand{}, err
	}

	return CompleteCalculationCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteCalculationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCalculationCommandIsNotConstructed)
}

func (c CompleteCalculationCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
