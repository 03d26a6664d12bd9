package ports

import (
	"context"

	"freight/internal/core/domain/model/event"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit appends the recorded events and commits the current transaction.
	// A failed append fails the commit.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and discards recorded events.
	Rollback(ctx context.Context) error

	// RecordEvent stages audit events for the current transaction.
	RecordEvent(events ...event.Event)

	// Repositories below are bound to the transaction started by Begin().
	OrderRepository() OrderRepository
	GroupRepository() GroupRepository
	TruckRepository() TruckRepository
	RuleRepository() RuleRepository
}
