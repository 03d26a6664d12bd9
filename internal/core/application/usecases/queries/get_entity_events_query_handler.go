package queries

import (
	"context"
	"encoding/json"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetEntityEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetEntityEventsQueryHandler creates a handler that reads the event log directly.
func NewGetEntityEventsQueryHandler(db *gorm.DB) GetEntityEventsQueryHandler {
	return GetEntityEventsQueryHandler{db: db}
}

// Handle returns the events oldest first.
func (h GetEntityEventsQueryHandler) Handle(ctx context.Context, query GetEntityEventsQuery) ([]EntityEvent, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entity_type,
			event_type,
			payload,
			actor,
			occurred_at
		FROM events
		WHERE entity_id = ?
		ORDER BY occurred_at, id
	`, query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]EntityEvent, 0)
	for rows.Next() {
		var e EntityEvent
		var id uuid.UUID
		var payload []byte

		if err = rows.Scan(&id, &e.EntityType, &e.EventType, &payload, &e.Actor, &e.OccurredAt); err != nil {
			return nil, err
		}
		if e.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(payload, &e.Payload); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
