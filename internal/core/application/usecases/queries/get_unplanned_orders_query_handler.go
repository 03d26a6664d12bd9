package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var unplannedStatuses = []order.Status{
	order.Open,
	order.Blocked,
	order.OnHold,
	order.BookingRequested,
	order.PalletCalcRequested,
	order.Calculated,
	order.Grouped,
	order.Trucked,
}

type GetUnplannedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnplannedOrdersQueryHandler creates a handler for the backlog read model.
func NewGetUnplannedOrdersQueryHandler(db *gorm.DB) GetUnplannedOrdersQueryHandler {
	return GetUnplannedOrdersQueryHandler{db: db}
}

// Handle returns the backlog by ship date and reference.
func (h GetUnplannedOrdersQueryHandler) Handle(ctx context.Context, query GetUnplannedOrdersQuery) ([]UnplannedOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := lo.Map(unplannedStatuses, func(s order.Status, _ int) int { return int(s) })
	sql := `
		SELECT
			id,
			reference,
			consignee,
			destination_country,
			ship_date,
			status,
			mode,
			effective_mode,
			block_reason,
			hold_reason,
			pallets,
			ldm,
			consolidation_key,
			group_id,
			truck_id
		FROM orders
		WHERE status IN ?`
	args := []any{statuses}
	if query.ShipDate() != nil {
		sql += " AND ship_date = ?"
		args = append(args, *query.ShipDate())
	}
	sql += " ORDER BY ship_date, reference"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]UnplannedOrder, 0)
	for rows.Next() {
		var o UnplannedOrder
		var id uuid.UUID
		var groupID, truckID *uuid.UUID
		var status, mode, effectiveMode, blockReason int
		var ldm decimal.Decimal

		err = rows.Scan(
			&id,
			&o.Reference,
			&o.Consignee,
			&o.Country,
			&o.ShipDate,
			&status,
			&mode,
			&effectiveMode,
			&blockReason,
			&o.HoldReason,
			&o.Pallets,
			&ldm,
			&o.ConsolidationKey,
			&groupID,
			&truckID,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if o.GroupID, err = optionalUUID(groupID); err != nil {
			return nil, err
		}
		if o.TruckID, err = optionalUUID(truckID); err != nil {
			return nil, err
		}
		o.ShipDate = kernel.ShipDate(o.ShipDate)
		o.Status = order.Status(status).String()
		o.Mode = order.ShippingMode(mode).String()
		o.EffectiveMode = order.ShippingMode(effectiveMode).String()
		o.BlockReason = order.BlockReason(blockReason).String()
		o.LDM = ldm
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
