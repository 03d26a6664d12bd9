package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ExecuteGrouping handles POST /api/v1/grouping. Without a ship date every
// date with calculated orders is grouped.
//
//	@Summary	Group calculated groupage orders
//	@Tags	Grouping
//	@ID	executeGrouping
//	@Accept	json
//	@Produce	json
//	@Param	body	body	ExecuteGroupingRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/grouping [post]
func (s *Server) ExecuteGrouping(c echo.Context) error {
	var req ExecuteGroupingRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ValidateExecuteGroupingRequest(req); err != nil {
		return s.fail(c, err)
	}

	shipDate, err := parseOptionalShipDate(req.ShipDate)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.ExecuteGrouping.Handle(c.Request().Context(), commands.NewExecuteGroupingCommand(shipDate))
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "grouping executed", groupingResponse(result))
}

// GroupOrders handles POST /api/v1/groups.
//
//	@Summary	Group selected orders by consolidation key
//	@Tags	Grouping
//	@ID	groupOrders
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/groups [post]
func (s *Server) GroupOrders(c echo.Context) error {
	ids, err := bindSelection(c, true)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewGroupOrdersCommand(ids)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.GroupOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "orders grouped", groupingResponse(result))
}

// AddOrderToGroup handles POST /api/v1/groups/:id/orders.
//
//	@Summary	Add an order to a group
//	@Tags	Grouping
//	@ID	addOrderToGroup
//	@Accept	json
//	@Produce	json
//	@Param	id	path	string	true	"Group ID"
//	@Param	body	body	AddOrderToGroupRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/groups/{id}/orders [post]
func (s *Server) AddOrderToGroup(c echo.Context) error {
	groupID, err := parseID("group id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req AddOrderToGroupRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err = ValidateAddOrderToGroupRequest(req); err != nil {
		return s.fail(c, err)
	}
	orderID, err := parseID("order id", req.OrderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddOrderToGroupCommand(groupID, orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.AddOrderToGroup.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "order added to group", nil)
}

// RemoveOrderFromGroup handles DELETE /api/v1/groups/:id/orders/:orderId.
//
//	@Summary	Remove an order from a group
//	@Tags	Grouping
//	@ID	removeOrderFromGroup
//	@Produce	json
//	@Param	id	path	string	true	"Group ID"
//	@Param	orderId	path	string	true	"Order ID"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/groups/{id}/orders/{orderId} [delete]
func (s *Server) RemoveOrderFromGroup(c echo.Context) error {
	groupID, err := parseID("group id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	orderID, err := parseID("order id", c.Param("orderId"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRemoveOrderFromGroupCommand(groupID, orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.RemoveOrderFromGroup.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "order removed from group", nil)
}

// CancelGroup handles DELETE /api/v1/groups/:id.
//
//	@Summary	Cancel a group and reclassify its orders
//	@Tags	Grouping
//	@ID	cancelGroup
//	@Produce	json
//	@Param	id	path	string	true	"Group ID"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/groups/{id} [delete]
func (s *Server) CancelGroup(c echo.Context) error {
	groupID, err := parseID("group id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCancelGroupCommand(groupID)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.CancelGroup.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "group cancelled", map[string]int{
		"reopened":     result.Reopened,
		"reclassified": result.Reclassified,
	})
}

// CalculateTruckPlanning handles POST /api/v1/lanes/:id/trucks.
//
//	@Summary	Pack the groups of a lane into trucks
//	@Tags	Trucks
//	@ID	calculateTruckPlanning
//	@Accept	json
//	@Produce	json
//	@Param	id	path	string	true	"Lane ID"
//	@Param	body	body	CalculateTrucksRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/lanes/{id}/trucks [post]
func (s *Server) CalculateTruckPlanning(c echo.Context) error {
	laneID, err := parseID("lane id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req CalculateTrucksRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err = ValidateCalculateTrucksRequest(req); err != nil {
		return s.fail(c, err)
	}

	shipDate, err := parseShipDate(req.ShipDate)
	if err != nil {
		return s.fail(c, err)
	}
	truckType, err := truck.ParseType(req.TruckType)
	if err != nil {
		return s.fail(c, err)
	}
	ids, err := parseIDs(req.OrderIDs)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCalculateTruckPlanningCommand(laneID, shipDate, truckType, req.Capacity, ids)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CalculateTruckPlanning.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "trucks calculated", map[string]int{"trucks": created})
}

// ExecutePlan handles POST /api/v1/lanes/:id/plan.
//
//	@Summary	Plan the trucks of a lane
//	@Tags	Trucks
//	@ID	executePlan
//	@Accept	json
//	@Produce	json
//	@Param	id	path	string	true	"Lane ID"
//	@Param	body	body	ExecutePlanRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/lanes/{id}/plan [post]
func (s *Server) ExecutePlan(c echo.Context) error {
	laneID, err := parseID("lane id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req ExecutePlanRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err = ValidateExecutePlanRequest(req); err != nil {
		return s.fail(c, err)
	}
	shipDate, err := parseShipDate(req.ShipDate)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewExecutePlanCommand(laneID, shipDate)
	if err != nil {
		return s.fail(c, err)
	}

	planned, err := s.handlers.ExecutePlan.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "plan executed", map[string]int{"trucks": planned})
}

// UnplanTruck handles DELETE /api/v1/trucks/:id/plan.
//
//	@Summary	Unplan a truck
//	@Tags	Trucks
//	@ID	unplanTruck
//	@Produce	json
//	@Param	id	path	string	true	"Truck ID"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/trucks/{id}/plan [delete]
func (s *Server) UnplanTruck(c echo.Context) error {
	truckID, err := parseID("truck id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewUnplanTruckCommand(truckID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UnplanTruck.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "truck unplanned", nil)
}

// GetLaneBoard handles GET /api/v1/lanes/board?from=YYYY-MM-DD.
//
//	@Summary	Summarize lanes per ship date
//	@Tags	Lanes
//	@ID	getLaneBoard
//	@Produce	json
//	@Param	from	query	string	false	"First ship date"	Format(date)
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/lanes/board [get]
func (s *Server) GetLaneBoard(c echo.Context) error {
	from, err := bindDateQuery(c, "from")
	if err != nil {
		return s.fail(c, err)
	}

	rows, err := s.handlers.LaneBoard.Handle(c.Request().Context(), queries.NewGetLaneBoardQuery(from))
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "", laneBoardResponse(rows))
}

func groupingResponse(r commands.GroupingResult) map[string]int {
	return map[string]int{"grouped": r.Grouped, "skipped": r.Skipped}
}
