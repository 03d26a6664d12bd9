package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneGroupReference(t *testing.T) {
	assert.Equal(t, "GRP-20260314-6F1C1F0E", commands.LaneGroupReference(dachLaneID, shipDate))
}

func TestDirectGroupReference(t *testing.T) {
	assert.Equal(t, "DIRECT-20260314-ABCD1234", commands.DirectGroupReference("ABCD1234", shipDate))
}

func TestExecuteGroupingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should group calculated groupage orders per lane and ship date", func(t *testing.T) {
		store := newMemoryStore(testRules())
		berlinOrder := calculatedOrder(t, orderSpec{destination: berlin}, order.Groupage)
		viennaOrder := calculatedOrder(t, orderSpec{destination: vienna}, order.Groupage)
		antwerpOrder := calculatedOrder(t, orderSpec{destination: antwerp}, order.Groupage)
		laterOrder := calculatedOrder(t, orderSpec{destination: munich, shipDate: nextDay}, order.Groupage)
		directOrder := calculatedOrder(t, orderSpec{volume: "20"}, order.DirectPartial)
		store.seed(t, berlinOrder, viennaOrder, antwerpOrder, laterOrder, directOrder)

		handler := commands.NewExecuteGroupingCommandHandler(store, discardLogger())
		result, err := handler.Handle(ctx, commands.NewExecuteGroupingCommand(nil))

		require.NoError(t, err)
		assert.Equal(t, commands.GroupingResult{Grouped: 4}, result)

		groups := store.allGroups()
		require.Len(t, groups, 3)
		dach := store.group(t, *store.order(t, berlinOrder.ID()).GroupID())
		assert.Equal(t, commands.LaneGroupReference(dachLaneID, shipDate), dach.Reference())
		assert.Equal(t, group.Open, dach.Status())
		assert.Equal(t, 2, dach.Totals().Orders)
		assert.Equal(t, dach.ID(), *store.order(t, viennaOrder.ID()).GroupID())
		assert.Equal(t, order.Grouped, store.order(t, antwerpOrder.ID()).Status())
		assert.Equal(t, commands.LaneGroupReference(dachLaneID, nextDay), store.group(t, *store.order(t, laterOrder.ID()).GroupID()).Reference())
		assert.Equal(t, order.Calculated, store.order(t, directOrder.ID()).Status())
		assert.Nil(t, store.order(t, directOrder.ID()).GroupID())
	})

	t.Run("should keep lanes apart when their group references collide", func(t *testing.T) {
		require.Equal(t, commands.LaneGroupReference(dachLaneID, shipDate), commands.LaneGroupReference(beneluxLaneID, shipDate))

		store := newMemoryStore(testRules())
		berlinOrder := calculatedOrder(t, orderSpec{destination: berlin}, order.Groupage)
		antwerpOrder := calculatedOrder(t, orderSpec{destination: antwerp}, order.Groupage)
		store.seed(t, berlinOrder, antwerpOrder)

		handler := commands.NewExecuteGroupingCommandHandler(store, discardLogger())
		for range 2 {
			_, err := handler.Handle(ctx, commands.NewExecuteGroupingCommand(nil))
			require.NoError(t, err)
		}

		require.Len(t, store.allGroups(), 2)
		benelux := store.group(t, *store.order(t, antwerpOrder.ID()).GroupID())
		require.NotNil(t, benelux.LaneID())
		assert.True(t, benelux.LaneID().IsEqual(beneluxLaneID))
		assert.NotEqual(t, benelux.ID(), *store.order(t, berlinOrder.ID()).GroupID())

		cmd, err := commands.NewCalculateTruckPlanningCommand(beneluxLaneID, shipDate, truck.Standard, decimal.Zero, nil)
		require.NoError(t, err)
		created, err := commands.NewCalculateTruckPlanningCommandHandler(store, services.NewTruckPacker()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, created)
		assert.Equal(t, order.Trucked, store.order(t, antwerpOrder.ID()).Status())
		assert.Equal(t, order.Grouped, store.order(t, berlinOrder.ID()).Status())
	})

	t.Run("should reuse the open lane group on a second run", func(t *testing.T) {
		store := newMemoryStore(testRules())
		first := calculatedOrder(t, orderSpec{}, order.Groupage)
		store.seed(t, first)
		handler := commands.NewExecuteGroupingCommandHandler(store, discardLogger())
		_, err := handler.Handle(ctx, commands.NewExecuteGroupingCommand(nil))
		require.NoError(t, err)

		second := calculatedOrder(t, orderSpec{}, order.Groupage)
		store.seed(t, second)
		_, err = handler.Handle(ctx, commands.NewExecuteGroupingCommand(nil))

		require.NoError(t, err)
		require.Len(t, store.allGroups(), 1)
		assert.Equal(t, 2, store.allGroups()[0].Totals().Orders)
	})

	t.Run("should skip orders without a lane", func(t *testing.T) {
		store := newMemoryStore(testRules())
		o := calculatedOrder(t, orderSpec{destination: madrid}, order.Groupage)
		store.seed(t, o)
		date := shipDate

		result, err := commands.NewExecuteGroupingCommandHandler(store, discardLogger()).Handle(ctx, commands.NewExecuteGroupingCommand(&date))

		require.NoError(t, err)
		assert.Equal(t, commands.GroupingResult{Skipped: 1}, result)
		assert.Empty(t, store.allGroups())
	})
}

func TestGroupOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should group selected orders by consolidation key", func(t *testing.T) {
		store := newMemoryStore(testRules())
		first := calculatedOrder(t, orderSpec{consolidated: true}, order.Groupage)
		second := calculatedOrder(t, orderSpec{consolidated: true}, order.Groupage)
		single := calculatedOrder(t, orderSpec{reference: "SO-77"}, order.Groupage)
		open := openOrder(t, orderSpec{})
		store.seed(t, first, second, single, open)
		cmd, err := commands.NewGroupOrdersCommand([]kernel.UUID{first.ID(), second.ID(), single.ID(), open.ID()})
		require.NoError(t, err)

		result, err := commands.NewGroupOrdersCommandHandler(store).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.GroupingResult{Grouped: 3, Skipped: 1}, result)
		pooled := store.group(t, *store.order(t, first.ID()).GroupID())
		assert.Equal(t, first.ConsolidationKey(), pooled.Reference())
		assert.Equal(t, 2, pooled.Totals().Orders)
		require.NotNil(t, pooled.LaneID())
		assert.Equal(t, dachLaneID, *pooled.LaneID())
		assert.Equal(t, "INDIVIDUAL-SO-77", store.group(t, *store.order(t, single.ID()).GroupID()).Reference())
		assert.Equal(t, order.Open, store.order(t, open.ID()).Status())
	})
}

func TestAddAndRemoveOrderFromGroup(t *testing.T) {
	ctx := t.Context()

	t.Run("should move an order between groups and prune the emptied one", func(t *testing.T) {
		store := newMemoryStore(testRules())
		target, _ := laneGroup(t, store, "G-TARGET", "1.26")
		source, members := laneGroup(t, store, "G-SOURCE", "0.84")
		cmd, err := commands.NewAddOrderToGroupCommand(target.ID(), members[0].ID())
		require.NoError(t, err)

		err = commands.NewAddOrderToGroupCommandHandler(store).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, store.hasGroup(source.ID()))
		moved := store.group(t, target.ID())
		assert.Equal(t, 2, moved.Totals().Orders)
		assert.Equal(t, "2.1", moved.Totals().LDM.String())
		assert.Contains(t, store.eventTypes(), event.GroupDeleted)
	})

	t.Run("should reject an order of another ship date", func(t *testing.T) {
		store := newMemoryStore(testRules())
		target, _ := laneGroup(t, store, "G-TARGET", "1.26")
		late := calculatedOrder(t, orderSpec{shipDate: nextDay}, order.Groupage)
		store.seed(t, late)
		cmd, err := commands.NewAddOrderToGroupCommand(target.ID(), late.ID())
		require.NoError(t, err)

		err = commands.NewAddOrderToGroupCommandHandler(store).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Calculated, store.order(t, late.ID()).Status())
	})

	t.Run("should reject an order that is already a member", func(t *testing.T) {
		store := newMemoryStore(testRules())
		target, members := laneGroup(t, store, "G-TARGET", "1.26")
		cmd, err := commands.NewAddOrderToGroupCommand(target.ID(), members[0].ID())
		require.NoError(t, err)

		err = commands.NewAddOrderToGroupCommandHandler(store).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should recompute the group after a removal", func(t *testing.T) {
		store := newMemoryStore(testRules())
		g, members := laneGroup(t, store, "G-1", "1.26", "0.42")
		cmd, err := commands.NewRemoveOrderFromGroupCommand(g.ID(), members[1].ID())
		require.NoError(t, err)

		err = commands.NewRemoveOrderFromGroupCommandHandler(store).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "1.26", store.group(t, g.ID()).Totals().LDM.String())
		removed := store.order(t, members[1].ID())
		assert.Equal(t, order.Calculated, removed.Status())
		assert.Nil(t, removed.GroupID())
	})

	t.Run("should delete the group with its last member", func(t *testing.T) {
		store := newMemoryStore(testRules())
		g, members := laneGroup(t, store, "G-1", "1.26")
		cmd, err := commands.NewRemoveOrderFromGroupCommand(g.ID(), members[0].ID())
		require.NoError(t, err)

		err = commands.NewRemoveOrderFromGroupCommandHandler(store).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, store.hasGroup(g.ID()))
	})

	t.Run("should reject an order of another group", func(t *testing.T) {
		store := newMemoryStore(testRules())
		g, _ := laneGroup(t, store, "G-1", "1.26")
		_, others := laneGroup(t, store, "G-2", "0.42")
		cmd, err := commands.NewRemoveOrderFromGroupCommand(g.ID(), others[0].ID())
		require.NoError(t, err)

		err = commands.NewRemoveOrderFromGroupCommandHandler(store).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}
