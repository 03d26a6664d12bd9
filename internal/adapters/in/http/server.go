package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "freight/internal/adapters/in/http/docs"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is a command or query handler with a result.
type Handler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// VoidHandler is a command handler without a result.
type VoidHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Intake and classification
	CreateOrder     VoidHandler[commands.CreateOrderCommand]
	ClassifyOrder   Handler[commands.ClassifyOrderCommand, *order.Order]
	ClassifyAllOpen Handler[commands.ClassifyAllOpenCommand, commands.ClassifyAllResult]

	// Calculation
	RequestCalculation     Handler[commands.RequestCalculationCommand, int]
	CompleteCalculation    Handler[commands.CompleteCalculationCommand, int]
	ExecuteFullCalculation Handler[commands.ExecuteFullCalculationCommand, commands.FullCalculationResult]

	// Grouping
	ExecuteGrouping      Handler[commands.ExecuteGroupingCommand, commands.GroupingResult]
	GroupOrders          Handler[commands.GroupOrdersCommand, commands.GroupingResult]
	AddOrderToGroup      VoidHandler[commands.AddOrderToGroupCommand]
	RemoveOrderFromGroup VoidHandler[commands.RemoveOrderFromGroupCommand]
	CancelGroup          Handler[commands.CancelGroupCommand, commands.CancelGroupResult]

	// Trucks
	CalculateTruckPlanning Handler[commands.CalculateTruckPlanningCommand, int]
	ExecutePlan            Handler[commands.ExecutePlanCommand, int]
	UnplanTruck            VoidHandler[commands.UnplanTruckCommand]

	// Order lifecycle
	PlanParcel     Handler[commands.PlanParcelCommand, int]
	PlanDirect     Handler[commands.PlanDirectCommand, int]
	UnplanOrders   Handler[commands.UnplanOrdersCommand, int]
	RemixOrders    Handler[commands.RemixOrdersCommand, kernel.UUID]
	HoldOrders     Handler[commands.HoldOrdersCommand, int]
	ReleaseOrders  Handler[commands.ReleaseOrdersCommand, int]
	AdvanceBooking Handler[commands.AdvanceBookingCommand, int]

	// Read models
	LaneBoard       Handler[queries.GetLaneBoardQuery, []queries.LaneBoardRow]
	UnplannedOrders Handler[queries.GetUnplannedOrdersQuery, []queries.UnplannedOrder]
	EntityEvents    Handler[queries.GetEntityEventsQuery, []queries.EntityEvent]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates the API server over the application handlers.
// Routes are added by Register.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Register mounts the health check, the Swagger UI and the /api/v1 routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(withActor)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unplanned", s.GetUnplannedOrders)
	api.POST("/orders/classify", s.ClassifyAllOpen)
	api.POST("/orders/:id/classify", s.ClassifyOrder)
	api.POST("/orders/calculation/request", s.RequestCalculation)
	api.POST("/orders/calculation/complete", s.CompleteCalculation)
	api.POST("/orders/calculation/full", s.ExecuteFullCalculation)
	api.POST("/orders/plan/parcel", s.PlanParcel)
	api.POST("/orders/plan/direct", s.PlanDirect)
	api.POST("/orders/unplan", s.UnplanOrders)
	api.POST("/orders/remix", s.RemixOrders)
	api.POST("/orders/hold", s.HoldOrders)
	api.POST("/orders/release", s.ReleaseOrders)
	api.POST("/orders/booking", s.AdvanceBooking)

	api.POST("/grouping", s.ExecuteGrouping)
	api.POST("/groups", s.GroupOrders)
	api.POST("/groups/:id/orders", s.AddOrderToGroup)
	api.DELETE("/groups/:id/orders/:orderId", s.RemoveOrderFromGroup)
	api.DELETE("/groups/:id", s.CancelGroup)

	api.GET("/lanes/board", s.GetLaneBoard)
	api.POST("/lanes/:id/trucks", s.CalculateTruckPlanning)
	api.POST("/lanes/:id/plan", s.ExecutePlan)
	api.DELETE("/trucks/:id/plan", s.UnplanTruck)

	api.GET("/events/:id", s.GetEntityEvents)
}

// ActorHeader names the caller recorded on the events of a request.
const ActorHeader = "X-Actor"

func withActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if actor := c.Request().Header.Get(ActorHeader); actor != "" {
			req := c.Request()
			c.SetRequest(req.WithContext(event.WithActor(req.Context(), actor)))
		}
		return next(c)
	}
}
