package eventrepo

import (
	"context"

	"freight/internal/core/domain/model/event"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates an event repository on db or an open transaction.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append inserts the events in one statement.
func (r *GormEventRepository) Append(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dto, err := fromDomain(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
