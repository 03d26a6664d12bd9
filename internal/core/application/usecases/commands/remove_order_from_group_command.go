package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemoveOrderFromGroupCommandIsNotConstructed = errors.New(
	"RemoveOrderFromGroupCommand must be created via NewRemoveOrderFromGroupCommand constructor",
)

// RemoveOrderFromGroupCommand manually detaches one order from its group. The
// group is deleted when its last member leaves.
type RemoveOrderFromGroupCommand struct {
	groupID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderFromGroupCommand creates a command to take one order out of a group.
// Returns an error if either identifier is invalid.
func NewRemoveOrderFromGroupCommand(groupID, orderID kernel.UUID) (RemoveOrderFromGroupCommand, error) {
	if err := errors.Join(groupID.Validate(), orderID.Validate()); err != nil {
		return RemoveOrderFromGroupCommand{}, err
	}

	return RemoveOrderFromGroupCommand{
		groupID: groupID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderFromGroupCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderFromGroupCommandIsNotConstructed)
}

func (c RemoveOrderFromGroupCommand) GroupID() kernel.UUID { return c.groupID }
func (c RemoveOrderFromGroupCommand) OrderID() kernel.UUID { return c.orderID }
