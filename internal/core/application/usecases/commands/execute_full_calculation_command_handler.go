package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// FullCalculationResult counts the orders of both calculation steps.
type FullCalculationResult struct {
	Requested  int
	Calculated int
}

// ExecuteFullCalculationCommandHandler runs request and complete atomically.
type ExecuteFullCalculationCommandHandler struct {
	uowFactory  OrderUoWFactory
	calculation calculation
}

// NewExecuteFullCalculationCommandHandler creates a handler for the combined calculation.
// The validator supplies the groupage LDM ceiling.
func NewExecuteFullCalculationCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.GroupageValidator,
) ExecuteFullCalculationCommandHandler {
	return ExecuteFullCalculationCommandHandler{
		uowFactory:  uowFactory,
		calculation: calculation{groupageCeiling: validator.LDMCeiling()},
	}
}

// Handle runs the request and completion steps in a single transaction, so
// the orders never stay in CALCULATION_REQUESTED.
func (h ExecuteFullCalculationCommandHandler) Handle(
	ctx context.Context,
	cmd ExecuteFullCalculationCommand,
) (FullCalculationResult, error) {
	if err := cmd.Validate(); err != nil {
		return FullCalculationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FullCalculationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requested, err := h.calculation.request(ctx, uow, cmd.OrderIDs())
	if err != nil {
		return FullCalculationResult{}, err
	}

	calculated, err := h.calculation.complete(ctx, uow, cmd.OrderIDs())
	if err != nil {
		return FullCalculationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FullCalculationResult{}, err
	}

	return FullCalculationResult{Requested: requested, Calculated: calculated}, nil
}
