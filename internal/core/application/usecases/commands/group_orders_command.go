package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGroupOrdersCommandIsNotConstructed = errors.New(
	"GroupOrdersCommand must be created via NewGroupOrdersCommand constructor",
)

// GroupOrdersCommand attaches CALCULATED orders to the group of their
// consolidation key.
type GroupOrdersCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGroupOrdersCommand creates a command to group selected orders by consolidation key.
// Requires at least one order ID.
func NewGroupOrdersCommand(orderIDs []kernel.UUID) (GroupOrdersCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return GroupOrdersCommand{}, err
	}

	return GroupOrdersCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c GroupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGroupOrdersCommandIsNotConstructed)
}

func (c GroupOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
