// Package truckrepo maps trucks to the trucks table.
package truckrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TruckDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number    string          `gorm:"uniqueIndex;not null"`
	LaneID    uuid.UUID       `gorm:"type:uuid;index:idx_truck_lane_date;not null"`
	ShipDate  time.Time       `gorm:"type:date;index:idx_truck_lane_date;not null"`
	Type      int             `gorm:"column:truck_type"`
	Capacity  decimal.Decimal `gorm:"type:numeric(6,2)"`
	Status    int             `gorm:"index"`
	Load      LoadDTO         `gorm:"embedded;embeddedPrefix:load_"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TruckDTO) TableName() string {
	return "trucks"
}

type LoadDTO struct {
	Volume  decimal.Decimal `gorm:"type:numeric(14,3)"`
	Weight  decimal.Decimal `gorm:"type:numeric(14,3)"`
	Pallets int64
	LDM     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Orders  int
}

func fromDomain(t *truck.Truck) TruckDTO {
	load := t.Load()
	return TruckDTO{
		ID:       t.ID().Bytes(),
		Number:   t.Number(),
		LaneID:   t.LaneID().Bytes(),
		ShipDate: t.ShipDate(),
		Type:     int(t.Type()),
		Capacity: t.Capacity(),
		Status:   int(t.Status()),
		Load: LoadDTO{
			Volume:  load.Volume,
			Weight:  load.Weight,
			Pallets: load.Pallets,
			LDM:     load.LDM,
			Orders:  load.Orders,
		},
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	laneID, err := kernel.UUIDFromBytes(dto.LaneID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(
		id,
		dto.Number,
		laneID,
		kernel.ShipDate(dto.ShipDate),
		truck.Type(dto.Type),
		dto.Capacity,
		truck.Status(dto.Status),
		truck.Load{
			Volume:  dto.Load.Volume,
			Weight:  dto.Load.Weight,
			Pallets: dto.Load.Pallets,
			LDM:     dto.Load.LDM,
			Orders:  dto.Load.Orders,
		},
	)
}
