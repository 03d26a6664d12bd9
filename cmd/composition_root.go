package cmd

import (
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.GroupageValidator
	logger     *slog.Logger
}

// NewCompositionRoot wires the shared unit of work factory and groupage
// validator. Handlers and jobs are built on demand from the root.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewGroupageValidator(config.GroupageLDMMax),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) classifyUoWFactory() commands.ClassifyUoWFactory {
	return FuncClassifyUoWFactory(func() commands.ClassifyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClassifyOrderCommandHandler() commands.ClassifyOrderCommandHandler {
	return commands.NewClassifyOrderCommandHandler(c.classifyUoWFactory(), c.validator)
}

func (c *CompositionRoot) CreateClassifyAllOpenCommandHandler() commands.ClassifyAllOpenCommandHandler {
	return commands.NewClassifyAllOpenCommandHandler(c.classifyUoWFactory(), c.validator, c.config.ClassifyWorkers, c.logger)
}

func (c *CompositionRoot) CreateRequestCalculationCommandHandler() commands.RequestCalculationCommandHandler {
	return commands.NewRequestCalculationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteCalculationCommandHandler() commands.CompleteCalculationCommandHandler {
	return commands.NewCompleteCalculationCommandHandler(c.orderUoWFactory(), c.validator)
}

func (c *CompositionRoot) CreateExecuteFullCalculationCommandHandler() commands.ExecuteFullCalculationCommandHandler {
	return commands.NewExecuteFullCalculationCommandHandler(c.orderUoWFactory(), c.validator)
}

func (c *CompositionRoot) CreateExecuteGroupingCommandHandler() commands.ExecuteGroupingCommandHandler {
	return commands.NewExecuteGroupingCommandHandler(c.uowFactoryForAll(), c.logger)
}

func (c *CompositionRoot) CreateGroupOrdersCommandHandler() commands.GroupOrdersCommandHandler {
	return commands.NewGroupOrdersCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreateAddOrderToGroupCommandHandler() commands.AddOrderToGroupCommandHandler {
	return commands.NewAddOrderToGroupCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreateRemoveOrderFromGroupCommandHandler() commands.RemoveOrderFromGroupCommandHandler {
	return commands.NewRemoveOrderFromGroupCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreateCancelGroupCommandHandler() commands.CancelGroupCommandHandler {
	return commands.NewCancelGroupCommandHandler(c.uowFactoryForAll(), c.validator, c.logger)
}

func (c *CompositionRoot) CreateCalculateTruckPlanningCommandHandler() commands.CalculateTruckPlanningCommandHandler {
	return commands.NewCalculateTruckPlanningCommandHandler(c.uowFactoryForAll(), services.NewTruckPacker())
}

func (c *CompositionRoot) CreateExecutePlanCommandHandler() commands.ExecutePlanCommandHandler {
	return commands.NewExecutePlanCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreateUnplanTruckCommandHandler() commands.UnplanTruckCommandHandler {
	return commands.NewUnplanTruckCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreatePlanParcelCommandHandler() commands.PlanParcelCommandHandler {
	return commands.NewPlanParcelCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlanDirectCommandHandler() commands.PlanDirectCommandHandler {
	return commands.NewPlanDirectCommandHandler(c.uowFactoryForAll(), c.validator)
}

func (c *CompositionRoot) CreateUnplanOrdersCommandHandler() commands.UnplanOrdersCommandHandler {
	return commands.NewUnplanOrdersCommandHandler(c.uowFactoryForAll())
}

func (c *CompositionRoot) CreateRemixOrdersCommandHandler() commands.RemixOrdersCommandHandler {
	return commands.NewRemixOrdersCommandHandler(c.uowFactoryForAll(), c.validator)
}

func (c *CompositionRoot) CreateHoldOrdersCommandHandler() commands.HoldOrdersCommandHandler {
	return commands.NewHoldOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReleaseOrdersCommandHandler() commands.ReleaseOrdersCommandHandler {
	return commands.NewReleaseOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceBookingCommandHandler() commands.AdvanceBookingCommandHandler {
	return commands.NewAdvanceBookingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetLaneBoardQueryHandler() queries.GetLaneBoardQueryHandler {
	return queries.NewGetLaneBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnplannedOrdersQueryHandler() queries.GetUnplannedOrdersQueryHandler {
	return queries.NewGetUnplannedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEntityEventsQueryHandler() queries.GetEntityEventsQueryHandler {
	return queries.NewGetEntityEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ClassifyOrder:          c.CreateClassifyOrderCommandHandler(),
		ClassifyAllOpen:        c.CreateClassifyAllOpenCommandHandler(),
		RequestCalculation:     c.CreateRequestCalculationCommandHandler(),
		CompleteCalculation:    c.CreateCompleteCalculationCommandHandler(),
		ExecuteFullCalculation: c.CreateExecuteFullCalculationCommandHandler(),
		ExecuteGrouping:        c.CreateExecuteGroupingCommandHandler(),
		GroupOrders:            c.CreateGroupOrdersCommandHandler(),
		AddOrderToGroup:        c.CreateAddOrderToGroupCommandHandler(),
		RemoveOrderFromGroup:   c.CreateRemoveOrderFromGroupCommandHandler(),
		CancelGroup:            c.CreateCancelGroupCommandHandler(),
		CalculateTruckPlanning: c.CreateCalculateTruckPlanningCommandHandler(),
		ExecutePlan:            c.CreateExecutePlanCommandHandler(),
		UnplanTruck:            c.CreateUnplanTruckCommandHandler(),
		PlanParcel:             c.CreatePlanParcelCommandHandler(),
		PlanDirect:             c.CreatePlanDirectCommandHandler(),
		UnplanOrders:           c.CreateUnplanOrdersCommandHandler(),
		RemixOrders:            c.CreateRemixOrdersCommandHandler(),
		HoldOrders:             c.CreateHoldOrdersCommandHandler(),
		ReleaseOrders:          c.CreateReleaseOrdersCommandHandler(),
		AdvanceBooking:         c.CreateAdvanceBookingCommandHandler(),
		LaneBoard:              c.CreateGetLaneBoardQueryHandler(),
		UnplannedOrders:        c.CreateGetUnplannedOrdersQueryHandler(),
		EntityEvents:           c.CreateGetEntityEventsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateClassifyAllOpenCommandHandler(),
		c.CreateExecuteGroupingCommandHandler(),
		jobs.Schedules{
			Classification: c.config.ClassifySchedule,
			Grouping:       c.config.GroupingSchedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClassifyUoWFactory func() commands.ClassifyUoW

func (f FuncClassifyUoWFactory) Create() commands.ClassifyUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
