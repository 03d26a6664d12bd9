package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
)

// AdvanceBookingCommandHandler applies one booking action to a selection of
// orders in a single transaction.
type AdvanceBookingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceBookingCommandHandler creates a handler for booking transitions.
// Requires an OrderUoWFactory; only orders change.
func NewAdvanceBookingCommandHandler(uowFactory OrderUoWFactory) AdvanceBookingCommandHandler {
	return AdvanceBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the action to every selected order and returns how many moved.
// One order the action does not allow rejects the whole selection.
func (h AdvanceBookingCommandHandler) Handle(ctx context.Context, cmd AdvanceBookingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return transitionOrders(ctx, h.uowFactory, cmd.OrderIDs(), event.BookingProgressed, cmd.Action().apply)
}
