package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrClassifyOrderCommandIsNotConstructed = errors.New(
	"ClassifyOrderCommand must be created via NewClassifyOrderCommand constructor",
)

// ClassifyOrderCommand re-evaluates the shipping mode, status and booking
// workflow of one order. Running it twice with unchanged rules is a no-op.
type ClassifyOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClassifyOrderCommand creates a command to classify a single order.
func NewClassifyOrderCommand(orderID kernel.UUID) (ClassifyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClassifyOrderCommand{}, err
	}

	return ClassifyOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClassifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrClassifyOrderCommandIsNotConstructed)
}

func (c ClassifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
