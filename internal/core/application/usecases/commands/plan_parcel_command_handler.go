package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
)

// PlanParcelCommandHandler plans parcel orders. A single order that is not
// a CALCULATED parcel rejects the whole selection.
type PlanParcelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlanParcelCommandHandler creates a handler for parcel planning.
// Requires an OrderUoWFactory; parcels never join groups or trucks.
func NewPlanParcelCommandHandler(uowFactory OrderUoWFactory) PlanParcelCommandHandler {
	return PlanParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves every selected parcel order to PLANNED and returns how many
// were planned. A single order that is not a calculated parcel rejects the
// whole selection.
func (h PlanParcelCommandHandler) Handle(ctx context.Context, cmd PlanParcelCommand) (int, error) {
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

	for _, o := range orders {
		from := o.Status()
		if err = o.PlanAsParcel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		uow.RecordEvent(statusChanged(o, from, event.ParcelPlanned))
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
