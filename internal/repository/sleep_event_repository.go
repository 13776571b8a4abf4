package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jisook325/tracker/internal/domain"
)

type SleepEventRepository interface {
	// Create inserts the event and fills in its ID.
	Create(ctx context.Context, userID uuid.UUID, event *domain.SleepEvent) error
	// ListRange returns events with from <= timestampLocal <= to, ascending by
	// timestamp and then insertion order.
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepEvent, error)
}

type sleepEventRepository struct {
	db *gorm.DB
}

func NewSleepEventRepository(db *gorm.DB) SleepEventRepository {
	return &sleepEventRepository{db: db}
}

func (r *sleepEventRepository) Create(ctx context.Context, userID uuid.UUID, event *domain.SleepEvent) error {
	row := sleepEventRow{
		UserID:         userID,
		Type:           string(event.Type),
		TimestampLocal: event.TimestampLocal,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert sleep event: %w", err)
	}
	event.ID = row.ID
	return nil
}

func (r *sleepEventRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepEvent, error) {
	var rows []sleepEventRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("timestamp_local >= ? AND timestamp_local <= ?", from, to).
		Order("timestamp_local ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list sleep events: %w", err)
	}

	events := make([]domain.SleepEvent, len(rows))
	for i := range rows {
		events[i] = rows[i].toDomain()
	}
	return events, nil
}
