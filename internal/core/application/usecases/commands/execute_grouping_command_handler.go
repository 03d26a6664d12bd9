package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rule"
)

// ExecuteGroupingCommandHandler runs the lane grouping once per ship date.
// Each ship date is its own transaction; a failing date is logged and the
// remaining dates are still grouped.
type ExecuteGroupingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewExecuteGroupingCommandHandler creates a handler for lane grouping.
// Used by the grouping job as well as the API.
func NewExecuteGroupingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ExecuteGroupingCommandHandler {
	return ExecuteGroupingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "ExecuteGrouping"),
	}
}

// Handle groups each ship date in its own transaction. A failing date is
// logged and skipped so the remaining dates still get grouped.
func (h ExecuteGroupingCommandHandler) Handle(ctx context.Context, cmd ExecuteGroupingCommand) (GroupingResult, error) {
	if err := cmd.Validate(); err != nil {
		return GroupingResult{}, err
	}

	rules, dates, err := h.prepare(ctx, cmd.ShipDate())
	if err != nil {
		return GroupingResult{}, err
	}

	var total GroupingResult
	for _, shipDate := range dates {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		result, err := h.groupDate(ctx, rules, shipDate)
		if err != nil {
			h.logger.Error("grouping failed", "shipDate", shipDate.Format(kernel.ShipDateLayout), "error", err)
			continue
		}
		total = total.add(result)
	}
	return total, nil
}

func (h ExecuteGroupingCommandHandler) prepare(ctx context.Context, shipDate *time.Time) (*rule.Set, []time.Time, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	if shipDate != nil {
		return rules, []time.Time{*shipDate}, nil
	}

	dates, err := uow.OrderRepository().FindCalculatedShipDates(ctx)
	if err != nil {
		return nil, nil, err
	}
	return rules, dates, nil
}

func (h ExecuteGroupingCommandHandler) groupDate(ctx context.Context, rules *rule.Set, shipDate time.Time) (GroupingResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GroupingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := groupGroupage(ctx, uow, rules, shipDate, h.logger)
	if err != nil {
		return GroupingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GroupingResult{}, err
	}

	h.logger.Info("ship date grouped",
		"shipDate", shipDate.Format(kernel.ShipDateLayout),
		"grouped", result.Grouped,
		"skipped", result.Skipped,
	)
	return result, nil
}
