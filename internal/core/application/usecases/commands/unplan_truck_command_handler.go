package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/services"
)

// UnplanTruckCommandHandler returns a PLANNED truck to OPEN, its orders and
// planned groups to TRUCKED. Any other truck status is a precondition error.
type UnplanTruckCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnplanTruckCommandHandler creates a handler for truck unplanning.
func NewUnplanTruckCommandHandler(uowFactory UoWFactory) UnplanTruckCommandHandler {
	return UnplanTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reopens the truck and returns its orders and planned groups to
// TRUCKED, so the same load can be planned again.
func (h UnplanTruckCommandHandler) Handle(ctx context.Context, cmd UnplanTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()
	t, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if err = t.Unplan(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	loaded, err := orderRepo.FindByTruck(ctx, t.ID())
	if err != nil {
		return err
	}
	for _, o := range loaded {
		if err = o.Unplan(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	groupRepo := uow.GroupRepository()
	for _, groupID := range uniqueIDs(services.PackedTruck{Orders: loaded}.GroupIDs()) {
		g, err := groupRepo.Get(ctx, groupID)
		if err != nil {
			return err
		}
		if g.Status() != group.Planned {
			continue
		}
		if err = g.Unplan(); err != nil {
			return err
		}
		if err = groupRepo.Update(ctx, g); err != nil {
			return err
		}
	}

	if err = truckRepo.Update(ctx, t); err != nil {
		return err
	}

	uow.RecordEvent(event.New(event.EntityTruck, t.ID(), event.TruckUnplanned, map[string]any{
		"number": t.Number(),
		"orders": len(loaded),
	}))

	return uow.Commit(ctx)
}
