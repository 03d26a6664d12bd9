package rulerepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/rule"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormRuleRepository implements RuleRepository using GORM.
type GormRuleRepository struct {
	db *gorm.DB
}

// NewGormRuleRepository creates a read-only rule repository.
func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{db: db}
}

// Snapshot reads every rule table. Inside a transaction the reads see one
// consistent state.
func (r *GormRuleRepository) Snapshot(ctx context.Context) (*rule.Set, error) {
	db := r.db.WithContext(ctx)

	var countryRules []CountryRuleDTO
	if err := db.Find(&countryRules).Error; err != nil {
		return nil, err
	}

	var parcelRules []ParcelRuleDTO
	if err := db.Find(&parcelRules).Error; err != nil {
		return nil, err
	}

	var forceDirect []ForceDirectRuleDTO
	if err := db.Where("active = ?", true).Order("id").Find(&forceDirect).Error; err != nil {
		return nil, err
	}

	var thresholds ThresholdsDTO
	if err := db.Order("id").First(&thresholds).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var laneDTOs []LaneDTO
	if err := db.Preload("Countries").Order("priority, name").Find(&laneDTOs).Error; err != nil {
		return nil, err
	}

	lanes := make([]rule.Lane, 0, len(laneDTOs))
	for _, dto := range laneDTOs {
		lane, err := laneToDomain(dto)
		if err != nil {
			return nil, err
		}
		lanes = append(lanes, lane)
	}

	return rule.NewSet(
		lo.Map(countryRules, func(dto CountryRuleDTO, _ int) rule.CountryRule { return countryRuleToDomain(dto) }),
		lo.Map(parcelRules, func(dto ParcelRuleDTO, _ int) rule.ParcelRule { return parcelRuleToDomain(dto) }),
		lo.Map(forceDirect, func(dto ForceDirectRuleDTO, _ int) rule.ForceDirectRule { return forceDirectToDomain(dto) }),
		rule.Thresholds{FTL: thresholds.FTL, Direct: thresholds.Direct},
		lanes,
	), nil
}
