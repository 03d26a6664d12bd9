package commands

import (
	"context"
)

// GroupOrdersCommandHandler groups a selection of orders by consolidation
// key. Orders that are not CALCULATED are skipped.
type GroupOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewGroupOrdersCommandHandler creates a handler for key based grouping.
func NewGroupOrdersCommandHandler(uowFactory UoWFactory) GroupOrdersCommandHandler {
	return GroupOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the CALCULATED orders of the selection to the OPEN group of
// their consolidation key within one transaction. Orders in any other status
// are counted as skipped.
func (h GroupOrdersCommandHandler) Handle(ctx context.Context, cmd GroupOrdersCommand) (GroupingResult, error) {
	if err := cmd.Validate(); err != nil {
		return GroupingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GroupingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return GroupingResult{}, err
	}

	orders, err := uow.OrderRepository().GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return GroupingResult{}, err
	}

	result, err := groupByConsolidationKey(ctx, uow, rules, orders)
	if err != nil {
		return GroupingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GroupingResult{}, err
	}

	return result, nil
}
