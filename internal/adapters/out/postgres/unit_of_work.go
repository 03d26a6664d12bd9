// Package postgres provides the GORM-based Unit of Work of the planner.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it are bound to that transaction, and audit events recorded during the
// operation are appended right before the commit, so a mutation and its
// events are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o, then
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	uow.RecordEvent(event.New(event.EntityOrder, o.ID(), event.StatusChange, payload))
//
//	return uow.Commit(ctx)
//
// Concurrency:
//   - each UnitOfWork instance owns its transaction; goroutines must not share one
//   - group reads take row locks, truck planning takes an advisory lock per
//     lane and ship date
package postgres

import (
	"context"

	"freight/internal/adapters/out/postgres/eventrepo"
	"freight/internal/adapters/out/postgres/grouprepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/rulerepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory whose units of work share db.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction and no recorded events.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one transaction and the events it produces.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	events []event.Event
}

// Begin starts a transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit appends the recorded events, attributed to the actor of ctx, and
// commits. When the append fails the transaction is rolled back and the
// error returned.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := eventrepo.NewGormEventRepository(uow.tx).Append(ctx, event.Attribute(ctx, uow.events)...); err != nil {
		_ = uow.tx.Rollback()
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	return err
}

// Rollback discards the transaction and the recorded events. After a
// successful Commit it returns gorm.ErrInvalidTransaction, which deferred
// rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) RecordEvent(events ...event.Event) {
	uow.events = append(uow.events, events...)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) GroupRepository() ports.GroupRepository {
	return grouprepo.NewGormGroupRepository(uow.conn())
}

func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn())
}

func (uow *GormUnitOfWork) RuleRepository() ports.RuleRepository {
	return rulerepo.NewGormRuleRepository(uow.conn())
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.events = nil
}
