package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrReleaseOrdersCommandIsNotConstructed = errors.New(
	"ReleaseOrdersCommand must be created via NewReleaseOrdersCommand constructor",
)

// ReleaseOrdersCommand returns ON_HOLD orders to OPEN.
type ReleaseOrdersCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseOrdersCommand creates a command to release held orders.
// Requires at least one order ID.
func NewReleaseOrdersCommand(orderIDs []kernel.UUID) (ReleaseOrdersCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return ReleaseOrdersCommand{}, err
	}

	return ReleaseOrdersCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrdersCommandIsNotConstructed)
}

func (c ReleaseOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
