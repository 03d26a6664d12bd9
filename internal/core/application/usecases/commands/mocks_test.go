package commands_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindCalculatedGroupage(ctx context.Context, shipDate time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, shipDate)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindCalculatedShipDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockOrderRepository) FindCalculatedByConsolidationKeys(ctx context.Context, keys []string) ([]*order.Order, error) {
	args := m.Called(ctx, keys)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindByGroup(ctx context.Context, groupID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, groupID)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) FindByTruck(ctx context.Context, truckID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, truckID)
	return orders(args.Get(0)), args.Error(1)
}

func orders(v any) []*order.Order {
	if v == nil {
		return nil
	}
	return v.([]*order.Order)
}

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Snapshot(ctx context.Context) (*rule.Set, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rule.Set), args.Error(1)
}

// MockClassifyUoW also satisfies commands.OrderUoW.
type MockClassifyUoW struct{ mock.Mock }

func (m *MockClassifyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClassifyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClassifyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClassifyUoW) RecordEvent(events ...event.Event) {
	m.Called(events)
}

func (m *MockClassifyUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockClassifyUoW) RuleRepository() ports.RuleRepository {
	args := m.Called()
	return args.Get(0).(ports.RuleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockClassifyUoWFactory struct{ mock.Mock }

func (m *MockClassifyUoWFactory) Create() commands.ClassifyUoW {
	args := m.Called()
	return args.Get(0).(commands.ClassifyUoW)
}
