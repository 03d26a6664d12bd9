package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/eventrepo"
	"freight/internal/adapters/out/postgres/grouprepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/adapters/out/postgres/rulerepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/model/truck"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	shipDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	nextDay  = shipDate.AddDate(0, 0, 1)

	dachLaneID = kernel.MustUUIDFromString("6f1c1f0e-2f43-4a43-9b7c-0d7f3a2b1c01")
	idleLaneID = kernel.MustUUIDFromString("6f1c1f0e-2f43-4a43-9b7c-0d7f3a2b1c09")
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	orderRepo *orderrepo.GormOrderRepository
	groupRepo *grouprepo.GormGroupRepository
	truckRepo *truckrepo.GormTruckRepository
	eventRepo *eventrepo.GormEventRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orderRepo = orderrepo.NewGormOrderRepository(database.DB)
	suite.groupRepo = grouprepo.NewGormGroupRepository(database.DB)
	suite.truckRepo = truckrepo.NewGormTruckRepository(database.DB)
	suite.eventRepo = eventrepo.NewGormEventRepository(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.Require().NoError(suite.database.DB.Create(&[]rulerepo.LaneDTO{
		rulerepo.LaneFromDomain(rule.Lane{ID: dachLaneID, Name: "DACH", Countries: []string{"DE", "AT"}, Priority: 10, Active: true}),
		rulerepo.LaneFromDomain(rule.Lane{ID: idleLaneID, Name: "Idle", Countries: []string{"PL"}, Priority: 5, Active: false}),
	}).Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TestLaneBoard_Empty() {
	rows, err := queries.NewGetLaneBoardQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetLaneBoardQuery(nil))

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
}

func (suite *QueriesIntegrationTestSuite) TestLaneBoard_SummarizesGroupsAndTrucks() {
	ctx := context.Background()
	suite.addGroup(dachLaneID, shipDate, group.Open, 3, 10, "4.2")
	suite.addGroup(dachLaneID, shipDate, group.Trucked, 2, 4, "1.6")
	suite.addGroup(dachLaneID, shipDate, group.Cancelled, 9, 9, "9")
	suite.addGroup(dachLaneID, nextDay, group.Open, 1, 2, "0.8")
	suite.addGroup(idleLaneID, shipDate, group.Open, 1, 1, "0.4")

	suite.addTruck(dachLaneID, shipDate, false)
	suite.addTruck(dachLaneID, shipDate, true)
	suite.addTruck(dachLaneID, shipDate.AddDate(0, 0, 2), true)

	rows, err := queries.NewGetLaneBoardQueryHandler(suite.database.DB).
		Handle(ctx, queries.NewGetLaneBoardQuery(nil))

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	first := rows[0]
	suite.True(dachLaneID.IsEqual(first.LaneID))
	suite.Equal("DACH", first.LaneName)
	suite.True(shipDate.Equal(first.ShipDate))
	suite.Equal(2, first.Groups)
	suite.Equal(5, first.Orders)
	suite.Equal(int64(14), first.Pallets)
	suite.Equal("5.8", first.LDM.String())
	suite.Equal(2, first.Trucks)
	suite.Equal(1, first.OpenTrucks)
	suite.Equal(1, first.PlannedTrucks)
	suite.False(first.IsPlanned())

	suite.True(nextDay.Equal(rows[1].ShipDate))
	suite.Equal(1, rows[1].Groups)
	suite.Equal(0, rows[1].Trucks)

	trucksOnly := rows[2]
	suite.True(shipDate.AddDate(0, 0, 2).Equal(trucksOnly.ShipDate))
	suite.Equal(0, trucksOnly.Groups)
	suite.True(trucksOnly.LDM.IsZero())
	suite.True(trucksOnly.IsPlanned())
}

func (suite *QueriesIntegrationTestSuite) TestLaneBoard_FromDate() {
	suite.addGroup(dachLaneID, shipDate, group.Open, 3, 10, "4.2")
	suite.addGroup(dachLaneID, nextDay, group.Open, 1, 2, "0.8")

	rows, err := queries.NewGetLaneBoardQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetLaneBoardQuery(&nextDay))

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(nextDay.Equal(rows[0].ShipDate))
}

func (suite *QueriesIntegrationTestSuite) TestUnplannedOrders_ListsBacklog() {
	ctx := context.Background()
	g := suite.addGroup(dachLaneID, shipDate, group.Open, 1, 1, "0.4")

	open := suite.addOrder("SO-2", shipDate, order.State{Status: order.Open})
	grouped := suite.addOrder("SO-1", shipDate, order.State{
		Status:        order.Grouped,
		Mode:          order.Groupage,
		EffectiveMode: order.Groupage,
		Metrics:       order.Metrics{Pallets: 1, LDM: decimal.RequireFromString("0.4")},
		Consolidation: order.Consolidation{Key: "CONSOL-20260314-ABCDEF12", SiblingCount: 1},
		GroupID:       ptr(g.ID()),
	})
	suite.addOrder("SO-3", shipDate, order.State{
		Status:        order.Planned,
		Mode:          order.Parcel,
		EffectiveMode: order.Parcel,
	})
	suite.addOrder("SO-0", nextDay, order.State{Status: order.OnHold, HoldReason: "customer request"})

	rows, err := queries.NewGetUnplannedOrdersQueryHandler(suite.database.DB).
		Handle(ctx, queries.NewGetUnplannedOrdersQuery(nil))

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal([]string{"SO-1", "SO-2", "SO-0"}, []string{rows[0].Reference, rows[1].Reference, rows[2].Reference})

	suite.True(grouped.ID().IsEqual(rows[0].ID))
	suite.Equal("GROUPED", rows[0].Status)
	suite.Equal("GROUPAGE", rows[0].EffectiveMode)
	suite.Equal("DE", rows[0].Country)
	suite.Equal(int64(1), rows[0].Pallets)
	suite.Equal("0.4", rows[0].LDM.String())
	suite.Equal("CONSOL-20260314-ABCDEF12", rows[0].ConsolidationKey)
	suite.Require().NotNil(rows[0].GroupID)
	suite.True(g.ID().IsEqual(*rows[0].GroupID))
	suite.Nil(rows[0].TruckID)

	suite.True(open.ID().IsEqual(rows[1].ID))
	suite.Equal("OPEN", rows[1].Status)
	suite.Nil(rows[1].GroupID)

	suite.Equal("ON_HOLD", rows[2].Status)
	suite.Equal("customer request", rows[2].HoldReason)
}

func (suite *QueriesIntegrationTestSuite) TestUnplannedOrders_ByShipDate() {
	suite.addOrder("SO-1", shipDate, order.State{Status: order.Open})
	suite.addOrder("SO-2", nextDay, order.State{Status: order.Open})

	rows, err := queries.NewGetUnplannedOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetUnplannedOrdersQuery(&nextDay))

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("SO-2", rows[0].Reference)
	suite.True(nextDay.Equal(rows[0].ShipDate))
}

func (suite *QueriesIntegrationTestSuite) TestEntityEvents_OldestFirst() {
	ctx := context.Background()
	entityID := kernel.NewUUID()

	created := event.New(event.EntityOrder, entityID, event.Created, map[string]any{"reference": "SO-1"})
	created.OccurredAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	held := event.New(event.EntityOrder, entityID, event.Held, map[string]any{"reason": "customer request"})
	held.OccurredAt = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	other := event.New(event.EntityOrder, kernel.NewUUID(), event.Created, nil)
	suite.Require().NoError(suite.eventRepo.Append(ctx, held, other, created))

	query, err := queries.NewGetEntityEventsQuery(entityID)
	suite.Require().NoError(err)

	events, err := queries.NewGetEntityEventsQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(string(event.Created), events[0].EventType)
	suite.Equal(string(event.EntityOrder), events[0].EntityType)
	suite.Equal("SO-1", events[0].Payload["reference"])
	suite.Equal(event.SystemActor, events[0].Actor)
	suite.True(created.ID.IsEqual(events[0].ID))
	suite.Equal(string(event.Held), events[1].EventType)
	suite.Equal("customer request", events[1].Payload["reason"])
}

func (suite *QueriesIntegrationTestSuite) TestEntityEvents_UnknownEntity() {
	query, err := queries.NewGetEntityEventsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	events, err := queries.NewGetEntityEventsQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(events)
	suite.Empty(events)
}

func (suite *QueriesIntegrationTestSuite) addGroup(
	laneID kernel.UUID,
	date time.Time,
	status group.Status,
	orders int,
	pallets int64,
	ldm string,
) *group.Group {
	g, err := group.RestoreGroup(kernel.NewUUID(), "GRP-"+kernel.NewUUID().ShortHex(8), &laneID, "", date, order.Groupage, status, group.Totals{
		Volume:  decimal.NewFromInt(pallets),
		Weight:  decimal.NewFromInt(100),
		Pallets: pallets,
		LDM:     decimal.RequireFromString(ldm),
		Orders:  orders,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.groupRepo.Add(context.Background(), g))
	return g
}

func (suite *QueriesIntegrationTestSuite) addTruck(laneID kernel.UUID, date time.Time, planned bool) {
	capacity, err := truck.CapacityFor(truck.Standard, decimal.Zero)
	suite.Require().NoError(err)
	t, err := truck.NewTruck(kernel.NewUUID(), laneID, date, truck.Standard, capacity)
	suite.Require().NoError(err)
	if planned {
		suite.Require().NoError(t.Plan())
	}
	suite.Require().NoError(suite.truckRepo.Add(context.Background(), t))
}

func (suite *QueriesIntegrationTestSuite) addOrder(reference string, date time.Time, state order.State) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), order.Attributes{
		Reference:   reference,
		Consignee:   "Acme",
		Destination: kernel.NewDestination("DE", "10115", "Berlin", "Invalidenstrasse", "116"),
		ShipDate:    date,
		Weight:      decimal.NewFromInt(200),
		Volume:      decimal.RequireFromString("0.6"),
		Height:      decimal.RequireFromString("1.2"),
	}, state)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func ptr[T any](v T) *T { return &v }

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
