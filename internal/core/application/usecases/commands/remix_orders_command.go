package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemixOrdersCommandIsNotConstructed = errors.New(
	"RemixOrdersCommand must be created via NewRemixOrdersCommand constructor",
)

// RemixOrdersCommand re-consolidates a hand-picked selection of orders
// under a fresh remix key, regardless of their natural consolidation keys.
type RemixOrdersCommand struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemixOrdersCommand creates a command to consolidate a selection under a new key.
// Requires at least one order ID.
func NewRemixOrdersCommand(orderIDs []kernel.UUID) (RemixOrdersCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return RemixOrdersCommand{}, err
	}

	return RemixOrdersCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemixOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemixOrdersCommandIsNotConstructed)
}

func (c RemixOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
