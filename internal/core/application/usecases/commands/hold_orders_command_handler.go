package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// HoldOrdersCommandHandler puts orders on hold. The selection is applied as
// a whole: one order in a status that cannot be held rejects all of them.
type HoldOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHoldOrdersCommandHandler creates a handler for manual holds.
func NewHoldOrdersCommandHandler(uowFactory OrderUoWFactory) HoldOrdersCommandHandler {
	return HoldOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle holds every selected order with the command reason and returns how
// many were held. The selection is applied all or nothing.
func (h HoldOrdersCommandHandler) Handle(ctx context.Context, cmd HoldOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return transitionOrders(ctx, h.uowFactory, cmd.OrderIDs(), event.Held, func(o *order.Order) error {
		return o.Hold(cmd.Reason())
	})
}

// transitionOrders applies transition to every order in one transaction and
// records a status change per order.
func transitionOrders(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	ids []kernel.UUID,
	reason event.Type,
	transition func(o *order.Order) error,
) (int, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, ids)
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		from := o.Status()
		if err = transition(o); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		changed := statusChanged(o, from, reason)
		if o.HoldReason() != "" {
			changed.Payload["holdReason"] = o.HoldReason()
		}
		uow.RecordEvent(changed)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
