package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
)

// UnplanOrdersCommandHandler returns orders to CALCULATED. The groups and
// trucks they leave are recomputed; emptied groups are deleted.
type UnplanOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnplanOrdersCommandHandler creates a handler for order unplanning.
func NewUnplanOrdersCommandHandler(uowFactory UoWFactory) UnplanOrdersCommandHandler {
	return UnplanOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle detaches every selected order from its group and truck and resets
// it to CALCULATED. The groups and trucks it left are recomputed before the
// single commit; groups left empty are deleted.
func (h UnplanOrdersCommandHandler) Handle(ctx context.Context, cmd UnplanOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	var touched links
	for _, o := range orders {
		touched.track(o)
		from := o.Status()
		if err = o.ResetToCalculated(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		uow.RecordEvent(statusChanged(o, from, event.OrderUnplanned))
	}

	if err = touched.refresh(ctx, uow); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
