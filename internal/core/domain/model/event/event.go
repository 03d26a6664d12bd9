// Package event provides the audit record appended for every state change.
package event

import (
	"context"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// EntityType names the kind of entity an event is about.
type EntityType string

const (
	EntityOrder EntityType = "ORDER"
	EntityGroup EntityType = "GROUP"
	EntityTruck EntityType = "TRUCK"
	EntityLane  EntityType = "LANE"
)

// Type names what happened.
type Type string

const (
	Created           Type = "CREATED"
	Classified        Type = "CLASSIFIED"
	StatusChange      Type = "STATUS_CHANGE"
	CalcRequested     Type = "CALC_REQUESTED"
	CalcCompleted     Type = "CALC_COMPLETED"
	OrdersAdded       Type = "ORDERS_ADDED"
	OrderRemoved      Type = "ORDER_REMOVED"
	GroupDeleted      Type = "GROUP_DELETED"
	PlanExecuted      Type = "PLAN_EXECUTED"
	TruckUnplanned    Type = "TRUCK_UNPLANNED"
	TrucksCalculated  Type = "TRUCKS_CALCULATED"
	GroupCancelled    Type = "GROUP_CANCELLED"
	ParcelPlanned     Type = "PARCEL_PLANNED"
	DirectPlanned     Type = "DIRECT_PLANNED"
	OrderUnplanned    Type = "ORDER_UNPLANNED"
	RemixCalculation  Type = "REMIX_CALCULATION"
	Held              Type = "HELD"
	Released          Type = "RELEASED"
	BookingProgressed Type = "BOOKING_PROGRESSED"
)

// SystemActor is the actor of every automated change.
const SystemActor = "SYSTEM"

type actorKey struct{}

// WithActor returns a context whose changes are attributed to actor. A blank
// actor leaves ctx unchanged.
func WithActor(ctx context.Context, actor string) context.Context {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor carried by ctx, or SystemActor.
func ActorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok {
		return actor
	}
	return SystemActor
}

// Attribute sets the actor of ctx on events still attributed to the system.
func Attribute(ctx context.Context, events []Event) []Event {
	actor := ActorFrom(ctx)
	if actor == SystemActor {
		return events
	}

	attributed := make([]Event, len(events))
	for i, e := range events {
		if e.Actor == SystemActor {
			e.Actor = actor
		}
		attributed[i] = e
	}
	return attributed
}

// Event is one immutable entry of the audit log.
type Event struct {
	ID         kernel.UUID
	EntityType EntityType
	EntityID   kernel.UUID
	Type       Type
	Payload    map[string]any
	Actor      string
	OccurredAt time.Time
}

// New stamps an event with a fresh identifier, the system actor and the
// current time. The unit of work attributes it to the caller on commit.
func New(entityType EntityType, entityID kernel.UUID, eventType Type, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return Event{
		ID:         kernel.NewUUID(),
		EntityType: entityType,
		EntityID:   entityID,
		Type:       eventType,
		Payload:    payload,
		Actor:      SystemActor,
		OccurredAt: time.Now().UTC(),
	}
}
