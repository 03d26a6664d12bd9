package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnplannedOrdersQueryIsNotConstructed = errors.New(
	"GetUnplannedOrdersQuery must be created via NewGetUnplannedOrdersQuery constructor",
)

// GetUnplannedOrdersQuery lists the backlog: orders that have not reached
// planning yet, optionally for one ship date.
type GetUnplannedOrdersQuery struct {
	shipDate *time.Time
	guard    guard.ConstructorGuard
}

// NewGetUnplannedOrdersQuery creates a query for the unplanned backlog.
// A nil ship date returns every date.
func NewGetUnplannedOrdersQuery(shipDate *time.Time) GetUnplannedOrdersQuery {
	var normalized *time.Time
	if shipDate != nil {
		d := kernel.ShipDate(*shipDate)
		normalized = &d
	}
	return GetUnplannedOrdersQuery{shipDate: normalized, guard: guard.NewConstructorGuard()}
}

func (q GetUnplannedOrdersQuery) ShipDate() *time.Time { return q.shipDate }

func (q GetUnplannedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnplannedOrdersQueryIsNotConstructed)
}

// UnplannedOrder is one backlog entry. Status and mode fields carry their names.
type UnplannedOrder struct {
	ID               kernel.UUID
	Reference        string
	Consignee        string
	Country          string
	ShipDate         time.Time
	Status           string
	Mode             string
	EffectiveMode    string
	BlockReason      string
	HoldReason       string
	Pallets          int64
	LDM              decimal.Decimal
	ConsolidationKey string
	GroupID          *kernel.UUID
	TruckID          *kernel.UUID
}
