package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new OPEN order and records its
// creation. Classification happens separately.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Attributes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	uow.RecordEvent(event.New(event.EntityOrder, o.ID(), event.Created, map[string]any{
		"reference": o.Reference(),
		"shipToId":  o.ShipToID(),
		"shipDate":  o.ShipDate().Format(kernel.ShipDateLayout),
	}))

	return uow.Commit(ctx)
}
