// Package eventrepo appends audit events to the events table.
package eventrepo

import (
	"encoding/json"
	"time"

	"freight/internal/core/domain/model/event"

	"github.com/google/uuid"
)

type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType string    `gorm:"index:idx_event_entity;not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_event_entity;not null"`
	EventType  string    `gorm:"index;not null"`
	Payload    []byte    `gorm:"type:jsonb;not null"`
	Actor      string    `gorm:"not null"`
	OccurredAt time.Time `gorm:"index;not null"`
}

func (EventDTO) TableName() string {
	return "events"
}

func fromDomain(e event.Event) (EventDTO, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		ID:         e.ID.Bytes(),
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID.Bytes(),
		EventType:  string(e.Type),
		Payload:    payload,
		Actor:      e.Actor,
		OccurredAt: e.OccurredAt,
	}, nil
}
