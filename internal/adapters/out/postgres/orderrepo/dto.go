// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Attributes imported from the ERP
// sit next to the planning state so that the read models can filter on both.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference            string    `gorm:"uniqueIndex;not null"`
	Customer             string
	Consignee            string          `gorm:"not null"`
	Destination          DestinationDTO  `gorm:"embedded;embeddedPrefix:destination_"`
	ShipToID             string          `gorm:"index"`
	ShipDate             time.Time       `gorm:"type:date;index;not null"`
	Weight               decimal.Decimal `gorm:"type:numeric(14,3)"`
	Volume               decimal.Decimal `gorm:"type:numeric(14,3)"`
	Height               decimal.Decimal `gorm:"type:numeric(8,3)"`
	ConsolidationAllowed bool

	Status         int `gorm:"index"`
	Mode           int
	EffectiveMode  int
	BlockReason    int
	BlockDetail    string
	HoldReason     string
	BookingType    int
	BookingManager int

	Pallets       int64
	LDM           decimal.Decimal  `gorm:"type:numeric(10,2)"`
	Consolidation ConsolidationDTO `gorm:"embedded;embeddedPrefix:consolidation_"`

	GroupID *uuid.UUID `gorm:"type:uuid;index"`
	TruckID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DestinationDTO struct {
	Country     string `gorm:"size:2;index"`
	Zip         string
	City        string
	Street      string
	HouseNumber string
}

type ConsolidationDTO struct {
	Key           string `gorm:"index"`
	SiblingCount  int
	Volume        decimal.Decimal `gorm:"type:numeric(14,3)"`
	Pallets       int64
	LDM           decimal.Decimal `gorm:"type:numeric(10,2)"`
	AllocatedLDM  decimal.Decimal `gorm:"type:numeric(10,2)"`
	EffectiveMode int
}

func fromDomain(o *order.Order) OrderDTO {
	attrs := o.Attributes()
	state := o.State()

	return OrderDTO{
		ID:        o.ID().Bytes(),
		Reference: attrs.Reference,
		Customer:  attrs.Customer,
		Consignee: attrs.Consignee,
		Destination: DestinationDTO{
			Country:     attrs.Destination.Country(),
			Zip:         attrs.Destination.Zip(),
			City:        attrs.Destination.City(),
			Street:      attrs.Destination.Street(),
			HouseNumber: attrs.Destination.HouseNumber(),
		},
		ShipToID:             o.ShipToID(),
		ShipDate:             attrs.ShipDate,
		Weight:               attrs.Weight,
		Volume:               attrs.Volume,
		Height:               attrs.Height,
		ConsolidationAllowed: attrs.ConsolidationAllowed,
		Status:               int(state.Status),
		Mode:                 int(state.Mode),
		EffectiveMode:        int(state.EffectiveMode),
		BlockReason:          int(state.BlockReason),
		BlockDetail:          state.BlockDetail,
		HoldReason:           state.HoldReason,
		BookingType:          int(state.BookingType),
		BookingManager:       int(state.BookingManager),
		Pallets:              state.Metrics.Pallets,
		LDM:                  state.Metrics.LDM,
		Consolidation: ConsolidationDTO{
			Key:           state.Consolidation.Key,
			SiblingCount:  state.Consolidation.SiblingCount,
			Volume:        state.Consolidation.Volume,
			Pallets:       state.Consolidation.Pallets,
			LDM:           state.Consolidation.LDM,
			AllocatedLDM:  state.Consolidation.AllocatedLDM,
			EffectiveMode: int(state.Consolidation.EffectiveMode),
		},
		GroupID: optionalID(state.GroupID),
		TruckID: optionalID(state.TruckID),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	groupID, err := restoreID(dto.GroupID)
	if err != nil {
		return nil, err
	}
	truckID, err := restoreID(dto.TruckID)
	if err != nil {
		return nil, err
	}

	attrs := order.Attributes{
		Reference: dto.Reference,
		Customer:  dto.Customer,
		Consignee: dto.Consignee,
		Destination: kernel.NewDestination(
			dto.Destination.Country,
			dto.Destination.Zip,
			dto.Destination.City,
			dto.Destination.Street,
			dto.Destination.HouseNumber,
		),
		ShipDate:             kernel.ShipDate(dto.ShipDate),
		Weight:               dto.Weight,
		Volume:               dto.Volume,
		Height:               dto.Height,
		ConsolidationAllowed: dto.ConsolidationAllowed,
	}

	return order.RestoreOrder(id, attrs, order.State{
		Status:         order.Status(dto.Status),
		Mode:           order.ShippingMode(dto.Mode),
		EffectiveMode:  order.ShippingMode(dto.EffectiveMode),
		BlockReason:    order.BlockReason(dto.BlockReason),
		BlockDetail:    dto.BlockDetail,
		HoldReason:     dto.HoldReason,
		BookingType:    order.BookingType(dto.BookingType),
		BookingManager: order.BookingManager(dto.BookingManager),
		Metrics:        order.Metrics{Pallets: dto.Pallets, LDM: dto.LDM},
		Consolidation: order.Consolidation{
			Key:           dto.Consolidation.Key,
			SiblingCount:  dto.Consolidation.SiblingCount,
			Volume:        dto.Consolidation.Volume,
			Pallets:       dto.Consolidation.Pallets,
			LDM:           dto.Consolidation.LDM,
			AllocatedLDM:  dto.Consolidation.AllocatedLDM,
			EffectiveMode: order.ShippingMode(dto.Consolidation.EffectiveMode),
		},
		GroupID: groupID,
		TruckID: truckID,
	})
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
