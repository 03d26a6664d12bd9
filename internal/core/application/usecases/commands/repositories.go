// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRecorder stages audit events that are appended on commit.
	EventRecorder interface {
		RecordEvent(events ...event.Event)
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// GroupRepoFactory provides access to group repository within a transaction.
	GroupRepoFactory interface {
		GroupRepository() ports.GroupRepository
	}

	// TruckRepoFactory provides access to truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// RuleRepoFactory provides access to the rule store within a transaction.
	RuleRepoFactory interface {
		RuleRepository() ports.RuleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		EventRecorder
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClassifyUoW manages transactions that classify orders against the rule store.
	ClassifyUoW interface {
		TxManager
		EventRecorder
		OrderRepoFactory
		RuleRepoFactory
	}

	// ClassifyUoWFactory creates new classification unit of work instances.
	ClassifyUoWFactory interface {
		Create() ClassifyUoW
	}

	// UoW manages transactions across orders, groups and trucks.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   groupRepo := uow.GroupRepository()
	//   // ... perform operations
	//   uow.RecordEvent(event.New(...))
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		EventRecorder
		OrderRepoFactory
		GroupRepoFactory
		TruckRepoFactory
		RuleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
