// Package queries contains the read models of the planner. Handlers read
// straight from the database with SQL and never load aggregates.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLaneBoardQueryIsNotConstructed = errors.New(
	"GetLaneBoardQuery must be created via NewGetLaneBoardQuery constructor",
)

// GetLaneBoardQuery summarizes every active lane per ship date: the groups
// waiting on it and the trucks planned for it.
//
// Example:
//
//	from := kernel.ShipDate(time.Now())
//	query := NewGetLaneBoardQuery(&from)
//	rows, err := NewGetLaneBoardQueryHandler(db).Handle(ctx, query)
type GetLaneBoardQuery struct {
	from  *time.Time
	guard guard.ConstructorGuard
}

// NewGetLaneBoardQuery limits the board to ship dates on or after from when
// it is set.
func NewGetLaneBoardQuery(from *time.Time) GetLaneBoardQuery {
	var normalized *time.Time
	if from != nil {
		d := kernel.ShipDate(*from)
		normalized = &d
	}
	return GetLaneBoardQuery{from: normalized, guard: guard.NewConstructorGuard()}
}

func (q GetLaneBoardQuery) From() *time.Time { return q.from }

func (q GetLaneBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetLaneBoardQueryIsNotConstructed)
}

// LaneBoardRow is one lane on one ship date.
type LaneBoardRow struct {
	LaneID        kernel.UUID
	LaneName      string
	ShipDate      time.Time
	Groups        int
	Orders        int
	Pallets       int64
	LDM           decimal.Decimal
	Trucks        int
	OpenTrucks    int
	PlannedTrucks int
}

// IsPlanned reports whether the lane has trucks and all of them are planned.
func (r LaneBoardRow) IsPlanned() bool {
	return r.Trucks > 0 && r.PlannedTrucks == r.Trucks
}
