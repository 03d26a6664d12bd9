package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetEntityEventsQueryIsNotConstructed = errors.New(
	"GetEntityEventsQuery must be created via NewGetEntityEventsQuery constructor",
)

// GetEntityEventsQuery reads the audit trail of one order, group, truck or lane.
type GetEntityEventsQuery struct {
	entityID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetEntityEventsQuery creates a query for the history of one order, group or truck.
// Returns an error if the entity ID is invalid.
func NewGetEntityEventsQuery(entityID kernel.UUID) (GetEntityEventsQuery, error) {
	if err := entityID.Validate(); err != nil {
		return GetEntityEventsQuery{}, err
	}
	return GetEntityEventsQuery{entityID: entityID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEntityEventsQuery) EntityID() kernel.UUID { return q.entityID }

func (q GetEntityEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityEventsQueryIsNotConstructed)
}

type EntityEvent struct {
	ID         kernel.UUID
	EntityType string
	EventType  string
	Payload    map[string]any
	Actor      string
	OccurredAt time.Time
}
