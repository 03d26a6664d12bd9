package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RemixOrdersCommandHandler pools a selection of orders under a fresh remix
// key and attaches them to a new OPEN group. The orders stay CALCULATED so
// that a later grouping run can still move them to their lane group.
type RemixOrdersCommandHandler struct {
	uowFactory      UoWFactory
	groupageCeiling decimal.Decimal
}

// NewRemixOrdersCommandHandler creates a handler for remixing orders.
// The validator supplies the LDM ceiling for the pooled effective mode.
func NewRemixOrdersCommandHandler(uowFactory UoWFactory, validator services.GroupageValidator) RemixOrdersCommandHandler {
	return RemixOrdersCommandHandler{
		uowFactory:      uowFactory,
		groupageCeiling: validator.LDMCeiling(),
	}
}

// Handle returns the id of the new group.
func (h RemixOrdersCommandHandler) Handle(ctx context.Context, cmd RemixOrdersCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return kernel.UUID{}, err
	}

	first := orders[0]
	for _, o := range orders[1:] {
		if !o.ShipDate().Equal(first.ShipDate()) {
			return kernel.UUID{}, errs.NewPreconditionFailedErrorWithCause(
				"orders ship on different dates",
				fmt.Errorf("order %s ships on %s, order %s on %s",
					first.Reference(), first.ShipDate().Format(kernel.ShipDateLayout),
					o.Reference(), o.ShipDate().Format(kernel.ShipDateLayout),
				),
			)
		}
	}

	groupID := kernel.NewUUID()
	key := services.RemixKey(first.ShipDate(), groupID)
	results := services.Consolidate(key, orders, h.groupageCeiling)

	// The group is bound to a lane only when every order resolves to the same one.
	var laneID *kernel.UUID
	lanes := lo.UniqBy(orders, func(o *order.Order) string {
		lane, ok := rules.LaneFor(o.Country())
		if !ok {
			return ""
		}
		return lane.ID.String()
	})
	if lane, ok := rules.LaneFor(first.Country()); ok && len(lanes) == 1 {
		laneID = &lane.ID
	}

	g, err := group.NewGroup(groupID, key, laneID, first.ShipToID(), first.ShipDate(), results[0].Consolidation.EffectiveMode)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.GroupRepository().Add(ctx, g); err != nil {
		return kernel.UUID{}, err
	}

	var touched links
	for _, r := range results {
		touched.track(r.Order)
		if err = r.Order.Remix(r.Metrics, r.Consolidation, groupID); err != nil {
			return kernel.UUID{}, fmt.Errorf("order %s: %w", r.Order.Reference(), err)
		}
		if err = orderRepo.Update(ctx, r.Order); err != nil {
			return kernel.UUID{}, err
		}
	}
	touched.addGroup(groupID)

	if err = touched.refresh(ctx, uow); err != nil {
		return kernel.UUID{}, err
	}

	uow.RecordEvent(event.New(event.EntityGroup, groupID, event.RemixCalculation, map[string]any{
		"reference":     key,
		"orders":        referencesOf(orders),
		"pallets":       results[0].Consolidation.Pallets,
		"ldm":           results[0].Consolidation.LDM.String(),
		"effectiveMode": results[0].Consolidation.EffectiveMode.String(),
	}))

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return groupID, nil
}
