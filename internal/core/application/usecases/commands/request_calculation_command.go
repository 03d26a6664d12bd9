package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRequestCalculationCommandIsNotConstructed = errors.New(
	"RequestCalculationCommand must be created via NewRequestCalculationCommand constructor",
)

// RequestCalculationCommand queues OPEN orders for pallet calculation.
// Without order ids every OPEN order is queued.
type RequestCalculationCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCalculationCommand creates a command to queue orders for calculation.
// Without order IDs every OPEN order is queued.
func NewRequestCalculationCommand(orderIDs []kernel.UUID) (RequestCalculationCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, false)
	if err != nil {
		return RequestCalculationCommand{}, err
	}

	return RequestCalculationCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RequestCalculationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCalculationCommandIsNotConstructed)
}

func (c RequestCalculationCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
