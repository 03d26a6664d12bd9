// Package rulerepo reads the planning master data: country ceilings, parcel
// and force-direct rules, volume thresholds and lanes.
package rulerepo

import (
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rule"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CountryRuleDTO struct {
	Country         string `gorm:"primaryKey;size:2"`
	RestrictionCode string
	MaxHeight       decimal.NullDecimal `gorm:"type:numeric(8,3)"`
	MaxPallets      *int64
	MaxVolume       decimal.NullDecimal `gorm:"type:numeric(14,3)"`
	MaxLDM          decimal.NullDecimal `gorm:"type:numeric(10,2)"`
}

func (CountryRuleDTO) TableName() string { return "country_rules" }

type ParcelRuleDTO struct {
	Country   string `gorm:"primaryKey;size:2"`
	Allow     bool
	MaxWeight decimal.NullDecimal `gorm:"type:numeric(14,3)"`
	MaxVolume decimal.NullDecimal `gorm:"type:numeric(14,3)"`
}

func (ParcelRuleDTO) TableName() string { return "parcel_rules" }

type ForceDirectRuleDTO struct {
	ID       uint   `gorm:"primaryKey"`
	ShipToID string `gorm:"index;not null"`
	Country  string
	Customer string
	Active   bool
}

func (ForceDirectRuleDTO) TableName() string { return "force_direct_rules" }

// ThresholdsDTO is a single-row table; a missing row means the defaults.
type ThresholdsDTO struct {
	ID     uint            `gorm:"primaryKey"`
	FTL    decimal.Decimal `gorm:"type:numeric(14,3)"`
	Direct decimal.Decimal `gorm:"type:numeric(14,3)"`
}

func (ThresholdsDTO) TableName() string { return "thresholds" }

type LaneDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Priority  int
	Active    bool
	Countries []LaneCountryDTO `gorm:"foreignKey:LaneID;constraint:OnDelete:CASCADE"`
}

func (LaneDTO) TableName() string { return "lanes" }

type LaneCountryDTO struct {
	LaneID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Country string    `gorm:"primaryKey;size:2"`
}

func (LaneCountryDTO) TableName() string { return "lane_countries" }

func countryRuleToDomain(dto CountryRuleDTO) rule.CountryRule {
	return rule.CountryRule{
		Country:         strings.ToUpper(dto.Country),
		RestrictionCode: dto.RestrictionCode,
		MaxHeight:       dto.MaxHeight,
		MaxPallets:      dto.MaxPallets,
		MaxVolume:       dto.MaxVolume,
		MaxLDM:          dto.MaxLDM,
	}
}

func parcelRuleToDomain(dto ParcelRuleDTO) rule.ParcelRule {
	return rule.ParcelRule{
		Country:   strings.ToUpper(dto.Country),
		Allow:     dto.Allow,
		MaxWeight: dto.MaxWeight,
		MaxVolume: dto.MaxVolume,
	}
}

func forceDirectToDomain(dto ForceDirectRuleDTO) rule.ForceDirectRule {
	return rule.ForceDirectRule{
		ShipToID: dto.ShipToID,
		Country:  dto.Country,
		Customer: dto.Customer,
		Active:   dto.Active,
	}
}

func laneToDomain(dto LaneDTO) (rule.Lane, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return rule.Lane{}, err
	}
	return rule.Lane{
		ID:   id,
		Name: dto.Name,
		Countries: lo.Map(dto.Countries, func(c LaneCountryDTO, _ int) string {
			return strings.ToUpper(c.Country)
		}),
		Priority: dto.Priority,
		Active:   dto.Active,
	}, nil
}

// LaneFromDomain is used to seed lanes.
func LaneFromDomain(l rule.Lane) LaneDTO {
	return LaneDTO{
		ID:       l.ID.Bytes(),
		Name:     l.Name,
		Priority: l.Priority,
		Active:   l.Active,
		Countries: lo.Map(l.Countries, func(c string, _ int) LaneCountryDTO {
			return LaneCountryDTO{LaneID: l.ID.Bytes(), Country: strings.ToUpper(c)}
		}),
	}
}
