package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUnplanTruckCommandIsNotConstructed = errors.New(
	"UnplanTruckCommand must be created via NewUnplanTruckCommand constructor",
)

// UnplanTruckCommand reverts the plan of one PLANNED truck.
type UnplanTruckCommand struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnplanTruckCommand creates a command to revert a planned truck.
func NewUnplanTruckCommand(truckID kernel.UUID) (UnplanTruckCommand, error) {
	if err := truckID.Validate(); err != nil {
		return UnplanTruckCommand{}, err
	}

	return UnplanTruckCommand{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnplanTruckCommand) Validate() error {
	return c.guard.Validate(ErrUnplanTruckCommandIsNotConstructed)
}

func (c UnplanTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}
