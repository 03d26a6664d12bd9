package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUnplanOrdersCommandIsNotConstructed = errors.New(
	"UnplanOrdersCommand must be created via NewUnplanOrdersCommand constructor",
)

// UnplanOrdersCommand returns orders to CALCULATED and detaches them from
// their group and truck.
type UnplanOrdersCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnplanOrdersCommand creates a command to take orders back to CALCULATED.
// Requires at least one order ID.
func NewUnplanOrdersCommand(orderIDs []kernel.UUID) (UnplanOrdersCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return UnplanOrdersCommand{}, err
	}

	return UnplanOrdersCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UnplanOrdersCommand) Validate() error {
	return c.guard.Validate(ErrUnplanOrdersCommandIsNotConstructed)
}

func (c UnplanOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
