package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrPlanParcelCommandIsNotConstructed = errors.New(
	"PlanParcelCommand must be created via NewPlanParcelCommand constructor",
)

// PlanParcelCommand plans CALCULATED parcel orders without a truck.
type PlanParcelCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlanParcelCommand creates a command to plan parcel orders.
// Requires at least one order ID.
func NewPlanParcelCommand(orderIDs []kernel.UUID) (PlanParcelCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return PlanParcelCommand{}, err
	}

	return PlanParcelCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c PlanParcelCommand) Validate() error {
	return c.guard.Validate(ErrPlanParcelCommandIsNotConstructed)
}

func (c PlanParcelCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
