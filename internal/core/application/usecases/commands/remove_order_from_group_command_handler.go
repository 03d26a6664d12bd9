package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/pkg/errs"
)

// RemoveOrderFromGroupCommandHandler detaches an order from its group and
// returns it to CALCULATED. Orders loaded on a truck cannot be removed.
type RemoveOrderFromGroupCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderFromGroupCommandHandler creates a handler for manual group removal.
func NewRemoveOrderFromGroupCommandHandler(uowFactory UoWFactory) RemoveOrderFromGroupCommandHandler {
	return RemoveOrderFromGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle detaches the order, returns it to CALCULATED and recomputes the
// group; a group left empty is deleted. Fails with PreconditionFailed when
// the order is not a member or the group no longer accepts changes.
func (h RemoveOrderFromGroupCommandHandler) Handle(ctx context.Context, cmd RemoveOrderFromGroupCommand) error {
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

	g, err := uow.GroupRepository().Get(ctx, cmd.GroupID())
	if err != nil {
		return err
	}
	if err = g.AcceptsMembers(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.GroupID() == nil || !o.GroupID().IsEqual(g.ID()) {
		return errs.NewPreconditionFailedError("order does not belong to the group")
	}

	if err = o.LeaveGroup(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	uow.RecordEvent(event.New(event.EntityGroup, g.ID(), event.OrderRemoved, map[string]any{
		"order": o.Reference(),
	}))

	if err = refreshGroup(ctx, uow, g.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
