package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrClassifyAllOpenCommandIsNotConstructed = errors.New(
	"ClassifyAllOpenCommand must be created via NewClassifyAllOpenCommand constructor",
)

// ClassifyAllOpenCommand classifies every OPEN order.
type ClassifyAllOpenCommand struct {
	guard guard.ConstructorGuard
}

// NewClassifyAllOpenCommand creates a command to classify the whole OPEN backlog.
// This is a parameterless command run by the classification job.
func NewClassifyAllOpenCommand() ClassifyAllOpenCommand {
	return ClassifyAllOpenCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ClassifyAllOpenCommand) Validate() error {
	return c.guard.Validate(ErrClassifyAllOpenCommandIsNotConstructed)
}
