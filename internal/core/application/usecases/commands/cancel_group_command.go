package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelGroupCommandIsNotConstructed = errors.New(
	"CancelGroupCommand must be created via NewCancelGroupCommand constructor",
)

// CancelGroupCommand cancels a group that is not PLANNED. Its members
// are reopened and classified again.
type CancelGroupCommand struct {
	groupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelGroupCommand creates a command to cancel one group.
func NewCancelGroupCommand(groupID kernel.UUID) (CancelGroupCommand, error) {
	if err := groupID.Validate(); err != nil {
		return CancelGroupCommand{}, err
	}

	return CancelGroupCommand{
		groupID: groupID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelGroupCommand) Validate() error {
	return c.guard.Validate(ErrCancelGroupCommandIsNotConstructed)
}

func (c CancelGroupCommand) GroupID() kernel.UUID {
	return c.groupID
}
