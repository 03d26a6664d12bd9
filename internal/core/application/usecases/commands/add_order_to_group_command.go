package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAddOrderToGroupCommandIsNotConstructed = errors.New(
	"AddOrderToGroupCommand must be created via NewAddOrderToGroupCommand constructor",
)

// AddOrderToGroupCommand manually attaches one order to an existing group.
type AddOrderToGroupCommand struct {
	groupID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrderToGroupCommand creates a command to move one order into a group.
// Returns an error if either identifier is invalid.
func NewAddOrderToGroupCommand(groupID, orderID kernel.UUID) (AddOrderToGroupCommand, error) {
	if err := errors.Join(groupID.Validate(), orderID.Validate()); err != nil {
		return AddOrderToGroupCommand{}, err
	}

	return AddOrderToGroupCommand{
		groupID: groupID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderToGroupCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToGroupCommandIsNotConstructed)
}

func (c AddOrderToGroupCommand) GroupID() kernel.UUID { return c.groupID }
func (c AddOrderToGroupCommand) OrderID() kernel.UUID { return c.orderID }
