package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order imported from the ERP.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Attributes{
//	    Reference:   "SO-1001",
//	    Consignee:   "Acme",
//	    Destination: kernel.NewDestination("DE", "10115", "Berlin", "Invalidenstrasse", "116"),
//	    ShipDate:    time.Now(),
//	    Weight:      decimal.NewFromInt(400),
//	    Volume:      decimal.RequireFromString("2.4"),
//	    Height:      decimal.RequireFromString("1.6"),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	attrs   order.Attributes

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifier and the attributes the same
// way the Order aggregate does.
func NewCreateOrderCommand(orderID kernel.UUID, attrs order.Attributes) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		validateAttributes(attrs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID: orderID,
		attrs:   attrs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID        { return c.orderID }
func (c CreateOrderCommand) Attributes() order.Attributes { return c.attrs }

func validateAttributes(attrs order.Attributes) error {
	_, err := order.NewOrder(kernel.NewUUID(), attrs)
	return err
}

