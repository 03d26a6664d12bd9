package ports

import (
	"context"

	"freight/internal/core/domain/model/event"
)

// EventRepository is the append-only audit log.
type EventRepository interface {
	Append(ctx context.Context, events ...event.Event) error
}
