// Package grouprepo maps consolidation groups to the consolidation_groups table.
package grouprepo

import (
	"time"

	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GroupDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference string     `gorm:"index;not null"`
	LaneID    *uuid.UUID `gorm:"type:uuid;index:idx_group_lane_date"`
	ShipToID  string
	ShipDate  time.Time `gorm:"type:date;index:idx_group_lane_date;not null"`
	Mode      int
	Status    int       `gorm:"index"`
	Totals    TotalsDTO `gorm:"embedded;embeddedPrefix:total_"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GroupDTO) TableName() string {
	return "consolidation_groups"
}

type TotalsDTO struct {
	Volume  decimal.Decimal `gorm:"type:numeric(14,3)"`
	Weight  decimal.Decimal `gorm:"type:numeric(14,3)"`
	Pallets int64
	LDM     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Orders  int
}

func fromDomain(g *group.Group) GroupDTO {
	var laneID *uuid.UUID
	if id := g.LaneID(); id != nil {
		raw := id.Bytes()
		laneID = &raw
	}

	totals := g.Totals()
	return GroupDTO{
		ID:        g.ID().Bytes(),
		Reference: g.Reference(),
		LaneID:    laneID,
		ShipToID:  g.ShipToID(),
		ShipDate:  g.ShipDate(),
		Mode:      int(g.Mode()),
		Status:    int(g.Status()),
		Totals: TotalsDTO{
			Volume:  totals.Volume,
			Weight:  totals.Weight,
			Pallets: totals.Pallets,
			LDM:     totals.LDM,
			Orders:  totals.Orders,
		},
	}
}

func toDomain(dto GroupDTO) (*group.Group, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var laneID *kernel.UUID
	if dto.LaneID != nil {
		lID, laneErr := kernel.UUIDFromBytes((*dto.LaneID)[:])
		if laneErr != nil {
			return nil, laneErr
		}
		laneID = &lID
	}

	return group.RestoreGroup(
		id,
		dto.Reference,
		laneID,
		dto.ShipToID,
		kernel.ShipDate(dto.ShipDate),
		order.ShippingMode(dto.Mode),
		group.Status(dto.Status),
		group.Totals{
			Volume:  dto.Totals.Volume,
			Weight:  dto.Totals.Weight,
			Pallets: dto.Totals.Pallets,
			LDM:     dto.Totals.LDM,
			Orders:  dto.Totals.Orders,
		},
	)
}
