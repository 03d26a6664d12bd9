package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrPlanDirectCommandIsNotConstructed = errors.New(
	"PlanDirectCommand must be created via NewPlanDirectCommand constructor",
)

// PlanDirectCommand plans CALCULATED direct orders in a group per
// ship-to id and ship date, without a truck.
type PlanDirectCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlanDirectCommand creates a command to plan direct shipments.
// Requires at least one order ID.
func NewPlanDirectCommand(orderIDs []kernel.UUID) (PlanDirectCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return PlanDirectCommand{}, err
	}

	return PlanDirectCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c PlanDirectCommand) Validate() error {
	return c.guard.Validate(ErrPlanDirectCommandIsNotConstructed)
}

func (c PlanDirectCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
