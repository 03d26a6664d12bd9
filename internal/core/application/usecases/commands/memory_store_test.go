package commands_test

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory database for handler scenarios. Every unit of
// work reads a copy taken at Begin and writes its changes back on Commit,
// so a rolled back transaction leaves no trace.
type memoryStore struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
	groups map[kernel.UUID]*group.Group
	trucks map[kernel.UUID]*truck.Truck
	rules  *rule.Set
	events []event.Event
}

func newMemoryStore(rules *rule.Set) *memoryStore {
	return &memoryStore{
		orders: make(map[kernel.UUID]*order.Order),
		groups: make(map[kernel.UUID]*group.Group),
		trucks: make(map[kernel.UUID]*truck.Truck),
		rules:  rules,
	}
}

func (s *memoryStore) seed(t *testing.T, orders ...*order.Order) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		s.orders[o.ID()] = cloneOrder(t, o)
	}
}

func (s *memoryStore) order(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	require.True(t, ok, "order %s is not stored", id)
	return o
}

func (s *memoryStore) group(t *testing.T, id kernel.UUID) *group.Group {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	require.True(t, ok, "group %s is not stored", id)
	return g
}

func (s *memoryStore) hasGroup(id kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.groups[id]
	return ok
}

func (s *memoryStore) allGroups() []*group.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := slices.Collect(maps.Values(s.groups))
	slices.SortFunc(groups, func(a, b *group.Group) int { return cmp.Compare(a.Reference(), b.Reference()) })
	return groups
}

func (s *memoryStore) allTrucks() []*truck.Truck {
	s.mu.Lock()
	defer s.mu.Unlock()
	trucks := slices.Collect(maps.Values(s.trucks))
	slices.SortFunc(trucks, func(a, b *truck.Truck) int { return cmp.Compare(a.Number(), b.Number()) })
	return trucks
}

func (s *memoryStore) eventTypes() []event.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]event.Type, 0, len(s.events))
	for _, e := range s.events {
		types = append(types, e.Type)
	}
	return types
}

func (s *memoryStore) eventsOf(entityID kernel.UUID) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []event.Event
	for _, e := range s.events {
		if e.EntityID.IsEqual(entityID) {
			found = append(found, e)
		}
	}
	return found
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

// Factories for the narrower unit of work interfaces.

type memoryOrderUoWFactory struct{ store *memoryStore }

func (f memoryOrderUoWFactory) Create() commands.OrderUoW { return &memoryUoW{store: f.store} }

type memoryClassifyUoWFactory struct{ store *memoryStore }

func (f memoryClassifyUoWFactory) Create() commands.ClassifyUoW { return &memoryUoW{store: f.store} }

type memoryUoW struct {
	store   *memoryStore
	active  bool
	orders  map[kernel.UUID]*order.Order
	groups  map[kernel.UUID]*group.Group
	trucks  map[kernel.UUID]*truck.Truck
	dirty   map[kernel.UUID]bool
	deleted map[kernel.UUID]bool
	events  []event.Event
}

func (u *memoryUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.active = true
	u.orders = maps.Clone(u.store.orders)
	u.groups = maps.Clone(u.store.groups)
	u.trucks = maps.Clone(u.store.trucks)
	u.dirty = make(map[kernel.UUID]bool)
	u.deleted = make(map[kernel.UUID]bool)
	u.events = nil
	return nil
}

func (u *memoryUoW) Commit(ctx context.Context) error {
	if !u.active {
		return errs.NewPreconditionFailedError("transaction is not started")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for id := range u.dirty {
		if o, ok := u.orders[id]; ok {
			u.store.orders[id] = o
		}
		if g, ok := u.groups[id]; ok {
			u.store.groups[id] = g
		}
		if t, ok := u.trucks[id]; ok {
			u.store.trucks[id] = t
		}
	}
	for id := range u.deleted {
		delete(u.store.groups, id)
		delete(u.store.trucks, id)
	}
	u.store.events = append(u.store.events, event.Attribute(ctx, u.events)...)
	u.active = false
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.active = false
	u.events = nil
	return nil
}

func (u *memoryUoW) RecordEvent(events ...event.Event) {
	u.events = append(u.events, events...)
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository { return memoryOrders{u} }
func (u *memoryUoW) GroupRepository() ports.GroupRepository { return memoryGroups{u} }
func (u *memoryUoW) TruckRepository() ports.TruckRepository { return memoryTrucks{u} }
func (u *memoryUoW) RuleRepository() ports.RuleRepository   { return memoryRules{u.store} }

type memoryOrders struct{ u *memoryUoW }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	for _, existing := range r.u.orders {
		if existing.Reference() == o.Reference() {
			return errs.NewPreconditionFailedError("order reference already exists")
		}
	}
	return r.put(o)
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.u.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	return r.put(o)
}

func (r memoryOrders) put(o *order.Order) error {
	clone, err := order.RestoreOrder(o.ID(), o.Attributes(), o.State())
	if err != nil {
		return err
	}
	r.u.orders[o.ID()] = clone
	r.u.dirty[o.ID()] = true
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.u.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.RestoreOrder(o.ID(), o.Attributes(), o.State())
}

func (r memoryOrders) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	found := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		found = append(found, o)
	}
	return found, nil
}

func (r memoryOrders) find(match func(o *order.Order) bool) []*order.Order {
	var found []*order.Order
	for _, o := range r.u.orders {
		if match(o) {
			clone, _ := order.RestoreOrder(o.ID(), o.Attributes(), o.State())
			found = append(found, clone)
		}
	}
	slices.SortFunc(found, func(a, b *order.Order) int {
		return cmp.Or(a.ShipDate().Compare(b.ShipDate()), cmp.Compare(a.Reference(), b.Reference()))
	})
	return found
}

func (r memoryOrders) FindByStatus(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool { return slices.Contains(statuses, o.Status()) }), nil
}

func (r memoryOrders) FindCalculatedGroupage(_ context.Context, shipDate time.Time) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return o.Status() == order.Calculated && o.EffectiveMode() == order.Groupage && o.ShipDate().Equal(shipDate)
	}), nil
}

func (r memoryOrders) FindCalculatedShipDates(_ context.Context) ([]time.Time, error) {
	var dates []time.Time
	for _, o := range r.find(func(o *order.Order) bool {
		return o.Status() == order.Calculated && o.EffectiveMode() == order.Groupage
	}) {
		if !slices.ContainsFunc(dates, o.ShipDate().Equal) {
			dates = append(dates, o.ShipDate())
		}
	}
	return dates, nil
}

func (r memoryOrders) FindCalculatedByConsolidationKeys(_ context.Context, keys []string) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool {
		return o.Status() == order.Calculated && slices.Contains(keys, o.ConsolidationKey())
	}), nil
}

func (r memoryOrders) FindByGroup(_ context.Context, groupID kernel.UUID) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool { return o.GroupID() != nil && o.GroupID().IsEqual(groupID) }), nil
}

func (r memoryOrders) FindByTruck(_ context.Context, truckID kernel.UUID) ([]*order.Order, error) {
	return r.find(func(o *order.Order) bool { return o.TruckID() != nil && o.TruckID().IsEqual(truckID) }), nil
}

type memoryGroups struct{ u *memoryUoW }

func cloneGroup(g *group.Group) (*group.Group, error) {
	return group.RestoreGroup(g.ID(), g.Reference(), g.LaneID(), g.ShipToID(), g.ShipDate(), g.Mode(), g.Status(), g.Totals())
}

func (r memoryGroups) Add(_ context.Context, g *group.Group) error {
	return r.put(g)
}

func (r memoryGroups) Update(_ context.Context, g *group.Group) error {
	if _, ok := r.u.groups[g.ID()]; !ok {
		return errs.NewObjectNotFoundError("group", g.ID())
	}
	return r.put(g)
}

func (r memoryGroups) put(g *group.Group) error {
	clone, err := cloneGroup(g)
	if err != nil {
		return err
	}
	r.u.groups[g.ID()] = clone
	r.u.dirty[g.ID()] = true
	delete(r.u.deleted, g.ID())
	return nil
}

func (r memoryGroups) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.u.groups, id)
	delete(r.u.dirty, id)
	r.u.deleted[id] = true
	return nil
}

func (r memoryGroups) Get(_ context.Context, id kernel.UUID) (*group.Group, error) {
	g, ok := r.u.groups[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("group", id)
	}
	return cloneGroup(g)
}

func (r memoryGroups) FindByReference(_ context.Context, reference string, statuses ...group.Status) (*group.Group, error) {
	for _, g := range r.u.groups {
		if g.Reference() == reference && slices.Contains(statuses, g.Status()) {
			return cloneGroup(g)
		}
	}
	return nil, errs.NewObjectNotFoundError("group", reference)
}

func (r memoryGroups) FindLaneGroup(
	_ context.Context,
	laneID kernel.UUID,
	shipDate time.Time,
	mode order.ShippingMode,
	statuses ...group.Status,
) (*group.Group, error) {
	for _, g := range r.u.groups {
		if g.LaneID() != nil && g.LaneID().IsEqual(laneID) && g.ShipDate().Equal(shipDate) &&
			g.Mode() == mode && slices.Contains(statuses, g.Status()) {
			return cloneGroup(g)
		}
	}
	return nil, errs.NewObjectNotFoundError("group", laneID)
}

func (r memoryGroups) FindByLaneAndDate(_ context.Context, laneID kernel.UUID, shipDate time.Time) ([]*group.Group, error) {
	var found []*group.Group
	for _, g := range r.u.groups {
		if g.LaneID() != nil && g.LaneID().IsEqual(laneID) && g.ShipDate().Equal(shipDate) && g.Status() != group.Cancelled {
			clone, err := cloneGroup(g)
			if err != nil {
				return nil, err
			}
			found = append(found, clone)
		}
	}
	slices.SortFunc(found, func(a, b *group.Group) int { return cmp.Compare(a.Reference(), b.Reference()) })
	return found, nil
}

type memoryTrucks struct{ u *memoryUoW }

func cloneTruck(t *truck.Truck) (*truck.Truck, error) {
	return truck.RestoreTruck(t.ID(), t.Number(), t.LaneID(), t.ShipDate(), t.Type(), t.Capacity(), t.Status(), t.Load())
}

func (r memoryTrucks) Add(_ context.Context, t *truck.Truck) error {
	return r.put(t)
}

func (r memoryTrucks) Update(_ context.Context, t *truck.Truck) error {
	if _, ok := r.u.trucks[t.ID()]; !ok {
		return errs.NewObjectNotFoundError("truck", t.ID())
	}
	return r.put(t)
}

func (r memoryTrucks) put(t *truck.Truck) error {
	clone, err := cloneTruck(t)
	if err != nil {
		return err
	}
	r.u.trucks[t.ID()] = clone
	r.u.dirty[t.ID()] = true
	delete(r.u.deleted, t.ID())
	return nil
}

func (r memoryTrucks) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.u.trucks, id)
	delete(r.u.dirty, id)
	r.u.deleted[id] = true
	return nil
}

func (r memoryTrucks) Get(_ context.Context, id kernel.UUID) (*truck.Truck, error) {
	t, ok := r.u.trucks[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("truck", id)
	}
	return cloneTruck(t)
}

func (r memoryTrucks) FindByLaneAndDate(_ context.Context, laneID kernel.UUID, shipDate time.Time) ([]*truck.Truck, error) {
	var found []*truck.Truck
	for _, t := range r.u.trucks {
		if t.LaneID().IsEqual(laneID) && t.ShipDate().Equal(shipDate) {
			clone, err := cloneTruck(t)
			if err != nil {
				return nil, err
			}
			found = append(found, clone)
		}
	}
	slices.SortFunc(found, func(a, b *truck.Truck) int { return cmp.Compare(a.Number(), b.Number()) })
	return found, nil
}

func (r memoryTrucks) LockLaneDate(context.Context, kernel.UUID, time.Time) error {
	return nil
}

type memoryRules struct{ store *memoryStore }

func (r memoryRules) Snapshot(context.Context) (*rule.Set, error) {
	return r.store.rules, nil
}

func cloneOrder(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	clone, err := order.RestoreOrder(o.ID(), o.Attributes(), o.State())
	require.NoError(t, err)
	return clone
}
