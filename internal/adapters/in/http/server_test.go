package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	server "freight/internal/adapters/in/http"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHandler[C, R any] struct{ mock.Mock }

func (m *mockHandler[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	var zero R
	if v := args.Get(0); v != nil {
		return v.(R), args.Error(1)
	}
	return zero, args.Error(1)
}

type mockVoidHandler[C any] struct{ mock.Mock }

func (m *mockVoidHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newEcho(handlers server.Handlers) *echo.Echo {
	e := echo.New()
	server.NewServer(handlers, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	e := newEcho(server.Handlers{})

	rec, _ := do(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	valid := `{
		"reference": "SO-1001",
		"consignee": "Acme",
		"destination": {"country": "DE", "zip": "10115", "city": "Berlin", "street": "Invalidenstrasse", "houseNumber": "116"},
		"shipDate": "2026-03-14",
		"weight": 400,
		"volume": "2.4",
		"height": 1.6,
		"consolidationAllowed": true
	}`

	t.Run("should create the order", func(t *testing.T) {
		handler := &mockVoidHandler[commands.CreateOrderCommand]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			attrs := cmd.Attributes()
			return attrs.Reference == "SO-1001" &&
				attrs.Destination.Country() == "DE" &&
				attrs.ShipDate.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) &&
				attrs.Volume.Equal(decimal.RequireFromString("2.4")) &&
				attrs.ConsolidationAllowed
		})).Return(nil)
		e := newEcho(server.Handlers{CreateOrder: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders", valid)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		var data map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &data))
		_, err := kernel.UUIDFromString(data["id"])
		require.NoError(t, err)
		handler.AssertExpectations(t)
	})

	t.Run("should reject an invalid body", func(t *testing.T) {
		handler := &mockVoidHandler[commands.CreateOrderCommand]{}
		e := newEcho(server.Handlers{CreateOrder: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders",
			`{"consignee": "Acme", "destination": {"country": "DEU"}, "shipDate": "14.03.2026", "volume": -1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "reference")
		assert.Contains(t, env.Message, "shipDate")
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should report a duplicate reference as a conflict", func(t *testing.T) {
		handler := &mockVoidHandler[commands.CreateOrderCommand]{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewPreconditionFailedError("order SO-1001 already exists"))
		e := newEcho(server.Handlers{CreateOrder: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders", valid)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, env.Message, "SO-1001")
	})
}

func TestClassifyOrder(t *testing.T) {
	t.Run("should reject a malformed id", func(t *testing.T) {
		e := newEcho(server.Handlers{})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders/not-a-uuid/classify", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("should map a missing order to 404", func(t *testing.T) {
		id := kernel.NewUUID()
		handler := &mockHandler[commands.ClassifyOrderCommand, *order.Order]{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("order", id))
		e := newEcho(server.Handlers{ClassifyOrder: handler})

		rec, _ := do(t, e, http.MethodPost, "/api/v1/orders/"+id.String()+"/classify", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBatchOperations(t *testing.T) {
	ids := []string{kernel.NewUUID().String(), kernel.NewUUID().String()}
	selection := `{"orderIds": ["` + strings.Join(ids, `", "`) + `"]}`

	t.Run("should hold orders with a reason", func(t *testing.T) {
		handler := &mockHandler[commands.HoldOrdersCommand, int]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.HoldOrdersCommand) bool {
			return cmd.Reason() == "customer request" && len(cmd.OrderIDs()) == 2
		})).Return(2, nil)
		e := newEcho(server.Handlers{HoldOrders: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders/hold",
			`{"orderIds": ["`+strings.Join(ids, `", "`)+`"], "reason": "customer request"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "orders held", env.Message)
		assert.JSONEq(t, `{"count": 2}`, string(env.Data))
	})

	t.Run("should require a selection for parcel planning", func(t *testing.T) {
		handler := &mockHandler[commands.PlanParcelCommand, int]{}
		e := newEcho(server.Handlers{PlanParcel: handler})

		rec, _ := do(t, e, http.MethodPost, "/api/v1/orders/plan/parcel", `{"orderIds": []}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should map a precondition failure to 409", func(t *testing.T) {
		handler := &mockHandler[commands.PlanParcelCommand, int]{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(0, errs.NewPreconditionFailedError("order is not a parcel"))
		e := newEcho(server.Handlers{PlanParcel: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders/plan/parcel", selection)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("should accept an empty calculation request", func(t *testing.T) {
		handler := &mockHandler[commands.RequestCalculationCommand, int]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RequestCalculationCommand) bool {
			return len(cmd.OrderIDs()) == 0
		})).Return(5, nil)
		e := newEcho(server.Handlers{RequestCalculation: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders/calculation/request", `{}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"count": 5}`, string(env.Data))
	})

	t.Run("should parse the booking action", func(t *testing.T) {
		handler := &mockHandler[commands.AdvanceBookingCommand, int]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceBookingCommand) bool {
			return cmd.Action() == commands.BookingActionAccept
		})).Return(2, nil)
		e := newEcho(server.Handlers{AdvanceBooking: handler})

		rec, _ := do(t, e, http.MethodPost, "/api/v1/orders/booking",
			`{"orderIds": ["`+strings.Join(ids, `", "`)+`"], "action": "accept"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, e, http.MethodPost, "/api/v1/orders/booking",
			`{"orderIds": ["`+strings.Join(ids, `", "`)+`"], "action": "ship"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide unexpected errors", func(t *testing.T) {
		handler := &mockHandler[commands.UnplanOrdersCommand, int]{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("connection reset"))
		e := newEcho(server.Handlers{UnplanOrders: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/orders/unplan", selection)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", env.Message)
	})
}

func TestActorHeader(t *testing.T) {
	selection := `{"orderIds": ["` + kernel.NewUUID().String() + `"], "reason": "damaged"}`

	hold := func(t *testing.T, actor string) string {
		t.Helper()
		var seen string
		handler := &mockHandler[commands.HoldOrdersCommand, int]{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { seen = event.ActorFrom(args.Get(0).(context.Context)) }).
			Return(1, nil)
		e := newEcho(server.Handlers{HoldOrders: handler})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/hold", strings.NewReader(selection))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if actor != "" {
			req.Header.Set(server.ActorHeader, actor)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		return seen
	}

	t.Run("should attribute the request to the actor header", func(t *testing.T) {
		assert.Equal(t, "planner@acme", hold(t, "planner@acme"))
	})

	t.Run("should fall back to the system actor", func(t *testing.T) {
		assert.Equal(t, event.SystemActor, hold(t, ""))
	})
}

func TestCalculateTruckPlanning(t *testing.T) {
	laneID := kernel.NewUUID()

	t.Run("should resolve the preset capacity", func(t *testing.T) {
		handler := &mockHandler[commands.CalculateTruckPlanningCommand, int]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CalculateTruckPlanningCommand) bool {
			return cmd.LaneID().IsEqual(laneID) &&
				cmd.TruckType() == truck.Standard &&
				cmd.Capacity().Equal(decimal.RequireFromString("13.6")) &&
				!cmd.IsSubset()
		})).Return(3, nil)
		e := newEcho(server.Handlers{CalculateTruckPlanning: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/lanes/"+laneID.String()+"/trucks",
			`{"shipDate": "2026-03-14", "truckType": "standard"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"trucks": 3}`, string(env.Data))
	})

	t.Run("should reject an unknown truck type", func(t *testing.T) {
		handler := &mockHandler[commands.CalculateTruckPlanningCommand, int]{}
		e := newEcho(server.Handlers{CalculateTruckPlanning: handler})

		rec, _ := do(t, e, http.MethodPost, "/api/v1/lanes/"+laneID.String()+"/trucks",
			`{"shipDate": "2026-03-14", "truckType": "zeppelin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should require a capacity for custom trucks", func(t *testing.T) {
		handler := &mockHandler[commands.CalculateTruckPlanningCommand, int]{}
		e := newEcho(server.Handlers{CalculateTruckPlanning: handler})

		rec, _ := do(t, e, http.MethodPost, "/api/v1/lanes/"+laneID.String()+"/trucks",
			`{"shipDate": "2026-03-14", "truckType": "custom"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGroupRoutes(t *testing.T) {
	groupID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("should cancel a group", func(t *testing.T) {
		handler := &mockHandler[commands.CancelGroupCommand, commands.CancelGroupResult]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelGroupCommand) bool {
			return cmd.GroupID().IsEqual(groupID)
		})).Return(commands.CancelGroupResult{Reopened: 3, Reclassified: 3}, nil)
		e := newEcho(server.Handlers{CancelGroup: handler})

		rec, env := do(t, e, http.MethodDelete, "/api/v1/groups/"+groupID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"reopened": 3, "reclassified": 3}`, string(env.Data))
	})

	t.Run("should remove an order from a group", func(t *testing.T) {
		handler := &mockVoidHandler[commands.RemoveOrderFromGroupCommand]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemoveOrderFromGroupCommand) bool {
			return cmd.GroupID().IsEqual(groupID) && cmd.OrderID().IsEqual(orderID)
		})).Return(nil)
		e := newEcho(server.Handlers{RemoveOrderFromGroup: handler})

		rec, env := do(t, e, http.MethodDelete, "/api/v1/groups/"+groupID.String()+"/orders/"+orderID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		handler.AssertExpectations(t)
	})

	t.Run("should run grouping for one date", func(t *testing.T) {
		handler := &mockHandler[commands.ExecuteGroupingCommand, commands.GroupingResult]{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExecuteGroupingCommand) bool {
			return cmd.ShipDate() != nil && cmd.ShipDate().Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
		})).Return(commands.GroupingResult{Grouped: 4, Skipped: 1}, nil)
		e := newEcho(server.Handlers{ExecuteGrouping: handler})

		rec, env := do(t, e, http.MethodPost, "/api/v1/grouping", `{"shipDate": "2026-03-14"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"grouped": 4, "skipped": 1}`, string(env.Data))
	})
}

func TestReadModels(t *testing.T) {
	laneID := kernel.NewUUID()

	t.Run("should render the lane board", func(t *testing.T) {
		handler := &mockHandler[queries.GetLaneBoardQuery, []queries.LaneBoardRow]{}
		handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.LaneBoardRow{{
			LaneID:        laneID,
			LaneName:      "DACH",
			ShipDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Groups:        2,
			Orders:        5,
			Pallets:       14,
			LDM:           decimal.RequireFromString("5.8"),
			Trucks:        1,
			PlannedTrucks: 1,
		}}, nil)
		e := newEcho(server.Handlers{LaneBoard: handler})

		rec, env := do(t, e, http.MethodGet, "/api/v1/lanes/board?from=2026-03-14", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"laneId": "`+laneID.String()+`",
			"laneName": "DACH",
			"shipDate": "2026-03-14",
			"groups": 2,
			"orders": 5,
			"pallets": 14,
			"ldm": "5.8",
			"trucks": 1,
			"openTrucks": 0,
			"plannedTrucks": 1,
			"planned": true
		}]`, string(env.Data))
	})

	t.Run("should reject a malformed ship date filter", func(t *testing.T) {
		e := newEcho(server.Handlers{})

		rec, _ := do(t, e, http.MethodGet, "/api/v1/orders/unplanned?shipDate=tomorrow", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should list entity events", func(t *testing.T) {
		entityID := kernel.NewUUID()
		handler := &mockHandler[queries.GetEntityEventsQuery, []queries.EntityEvent]{}
		handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.EntityEvent{{
			ID:         kernel.NewUUID(),
			EntityType: "ORDER",
			EventType:  "HELD",
			Payload:    map[string]any{"reason": "customer request"},
			Actor:      "SYSTEM",
			OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		}}, nil)
		e := newEcho(server.Handlers{EntityEvents: handler})

		rec, env := do(t, e, http.MethodGet, "/api/v1/events/"+entityID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var events []server.EventResponse
		require.NoError(t, json.Unmarshal(env.Data, &events))
		require.Len(t, events, 1)
		assert.Equal(t, "HELD", events[0].EventType)
		assert.Equal(t, "2026-03-10T09:00:00Z", events[0].OccurredAt)
		assert.Equal(t, "customer request", events[0].Payload["reason"])
	})
}
