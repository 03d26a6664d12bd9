package postgres

import (
	"freight/internal/adapters/out/postgres/eventrepo"
	"freight/internal/adapters/out/postgres/grouprepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/rulerepo"
	"freight/internal/adapters/out/postgres/truckrepo"

	"gorm.io/gorm"
)

// Models lists every table of the planner, in creation order.
func Models() []any {
	return []any{
		&rulerepo.CountryRuleDTO{},
		&rulerepo.ParcelRuleDTO{},
		&rulerepo.ForceDirectRuleDTO{},
		&rulerepo.ThresholdsDTO{},
		&rulerepo.LaneDTO{},
		&rulerepo.LaneCountryDTO{},
		&grouprepo.GroupDTO{},
		&truckrepo.TruckDTO{},
		&orderrepo.OrderDTO{},
		&eventrepo.EventDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
