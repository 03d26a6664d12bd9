package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/order"
)

// ReleaseOrdersCommandHandler returns held orders to OPEN.
type ReleaseOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseOrdersCommandHandler creates a handler for hold releases.
func NewReleaseOrdersCommandHandler(uowFactory OrderUoWFactory) ReleaseOrdersCommandHandler {
	return ReleaseOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns every selected ON_HOLD order to OPEN and clears its hold
// reason. The selection is applied all or nothing.
func (h ReleaseOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return transitionOrders(ctx, h.uowFactory, cmd.OrderIDs(), event.Released, (*order.Order).Release)
}
