package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetLaneBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetLaneBoardQueryHandler creates a handler for the lane board read model.
// It queries the database directly, bypassing the repositories.
func NewGetLaneBoardQueryHandler(db *gorm.DB) GetLaneBoardQueryHandler {
	return GetLaneBoardQueryHandler{db: db}
}

// Handle returns the rows by lane priority, lane name and ship date. Lanes
// without groups or trucks are left out.
func (h GetLaneBoardQueryHandler) Handle(ctx context.Context, query GetLaneBoardQuery) ([]LaneBoardRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var from time.Time
	if query.From() != nil {
		from = *query.From()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		WITH g AS (
			SELECT
				lane_id,
				ship_date,
				COUNT(*) AS group_count,
				SUM(total_orders)::bigint AS orders,
				SUM(total_pallets)::bigint AS pallets,
				SUM(total_ldm) AS ldm
			FROM consolidation_groups
			WHERE lane_id IS NOT NULL AND status <> ? AND ship_date >= ?
			GROUP BY lane_id, ship_date
		), t AS (
			SELECT
				lane_id,
				ship_date,
				COUNT(*) AS trucks,
				COUNT(*) FILTER (WHERE status = ?) AS open_trucks,
				COUNT(*) FILTER (WHERE status = ?) AS planned_trucks
			FROM trucks
			WHERE ship_date >= ?
			GROUP BY lane_id, ship_date
		), board AS (
			SELECT
				COALESCE(g.lane_id, t.lane_id) AS lane_id,
				COALESCE(g.ship_date, t.ship_date) AS ship_date,
				COALESCE(g.group_count, 0) AS group_count,
				COALESCE(g.orders, 0) AS orders,
				COALESCE(g.pallets, 0) AS pallets,
				COALESCE(g.ldm, 0) AS ldm,
				COALESCE(t.trucks, 0) AS trucks,
				COALESCE(t.open_trucks, 0) AS open_trucks,
				COALESCE(t.planned_trucks, 0) AS planned_trucks
			FROM g
			FULL OUTER JOIN t ON t.lane_id = g.lane_id AND t.ship_date = g.ship_date
		)
		SELECT
			l.id,
			l.name,
			b.ship_date,
			b.group_count,
			b.orders,
			b.pallets,
			b.ldm,
			b.trucks,
			b.open_trucks,
			b.planned_trucks
		FROM board b
		JOIN lanes l ON l.id = b.lane_id
		WHERE l.active
		ORDER BY l.priority, l.name, b.ship_date
	`, int(group.Cancelled), from, int(truck.Open), int(truck.Planned), from).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]LaneBoardRow, 0)
	for rows.Next() {
		var row LaneBoardRow
		var laneID uuid.UUID
		var ldm decimal.Decimal

		err = rows.Scan(
			&laneID,
			&row.LaneName,
			&row.ShipDate,
			&row.Groups,
			&row.Orders,
			&row.Pallets,
			&ldm,
			&row.Trucks,
			&row.OpenTrucks,
			&row.PlannedTrucks,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(laneID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.LaneID = id
		row.ShipDate = kernel.ShipDate(row.ShipDate)
		row.LDM = ldm
		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
