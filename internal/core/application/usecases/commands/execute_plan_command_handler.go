package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
)

// ExecutePlanCommandHandler plans the OPEN trucks of a lane and ship date
// together with their groups and orders. Empty trucks are left alone.
type ExecutePlanCommandHandler struct {
	uowFactory UoWFactory
}

// NewExecutePlanCommandHandler creates a handler for truck planning confirmation.
// Requires a UoWFactory since trucks, groups and orders change together.
func NewExecutePlanCommandHandler(uowFactory UoWFactory) ExecutePlanCommandHandler {
	return ExecutePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of trucks planned.
func (h ExecutePlanCommandHandler) Handle(ctx context.Context, cmd ExecutePlanCommand) (int, error) {
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

	truckRepo := uow.TruckRepository()
	if err := truckRepo.LockLaneDate(ctx, cmd.LaneID(), cmd.ShipDate()); err != nil {
		return 0, err
	}

	trucks, err := truckRepo.FindByLaneAndDate(ctx, cmd.LaneID(), cmd.ShipDate())
	if err != nil {
		return 0, err
	}

	planned := 0
	for _, t := range trucks {
		if t.Status() != truck.Open || t.IsEmpty() {
			continue
		}
		if err = h.planTruck(ctx, uow, t); err != nil {
			return 0, err
		}
		planned++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return planned, nil
}

func (h ExecutePlanCommandHandler) planTruck(ctx context.Context, uow UoW, t *truck.Truck) error {
	orderRepo := uow.OrderRepository()
	groupRepo := uow.GroupRepository()

	loaded, err := orderRepo.FindByTruck(ctx, t.ID())
	if err != nil {
		return err
	}

	for _, o := range loaded {
		if err = o.Plan(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	groupIDs := uniqueIDs(services.PackedTruck{Orders: loaded}.GroupIDs())
	for _, groupID := range groupIDs {
		g, err := groupRepo.Get(ctx, groupID)
		if err != nil {
			return err
		}
		if g.Status() == group.Planned {
			continue
		}
		if err = g.Plan(); err != nil {
			return err
		}
		if err = groupRepo.Update(ctx, g); err != nil {
			return err
		}
	}

	if err = t.Plan(); err != nil {
		return err
	}
	if err = uow.TruckRepository().Update(ctx, t); err != nil {
		return err
	}

	uow.RecordEvent(event.New(event.EntityTruck, t.ID(), event.PlanExecuted, map[string]any{
		"number":   t.Number(),
		"shipDate": t.ShipDate().Format(kernel.ShipDateLayout),
		"orders":   len(loaded),
		"groups":   len(groupIDs),
	}))
	return nil
}
