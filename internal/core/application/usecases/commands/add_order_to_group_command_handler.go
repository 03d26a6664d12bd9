package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
)

// AddOrderToGroupCommandHandler attaches an order to a group that still
// accepts members. An order moving out of another group leaves that group
// recomputed, or deleted when it became empty.
type AddOrderToGroupCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderToGroupCommandHandler creates a handler for manual group membership.
// Requires a UoWFactory since both the order and its groups change.
func NewAddOrderToGroupCommandHandler(uowFactory UoWFactory) AddOrderToGroupCommandHandler {
	return AddOrderToGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the order to the group within a single transaction.
// An order leaving another group is detached first, and both groups get their
// totals recomputed. Fails with PreconditionFailed when the order is already a
// member or ships on another date.
func (h AddOrderToGroupCommandHandler) Handle(ctx context.Context, cmd AddOrderToGroupCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.GroupID() != nil && o.GroupID().IsEqual(g.ID()) {
		return errs.NewPreconditionFailedError("order already belongs to the group")
	}
	if !o.ShipDate().Equal(g.ShipDate()) {
		return errs.NewPreconditionFailedErrorWithCause(
			"ship date differs",
			fmt.Errorf("order ships %s, group ships %s", o.ShipDate().Format(kernel.ShipDateLayout), g.ShipDate().Format(kernel.ShipDateLayout)),
		)
	}

	var touched links
	if o.Status() == order.Grouped {
		touched.track(o)
		if err = o.LeaveGroup(); err != nil {
			return err
		}
	}

	if err = attachOrders(ctx, uow, g, []*order.Order{o}, &touched); err != nil {
		return err
	}

	if err = touched.refresh(ctx, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
