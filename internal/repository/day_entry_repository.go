package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jisook325/tracker/internal/domain"
)

type DayEntryRepository interface {
	// Upsert stores the mood for (userID, entry.Date), replacing any previous one.
	Upsert(ctx context.Context, userID uuid.UUID, entry domain.MoodEntry) error
	// ListRange returns entries with from <= date <= to, ascending by date.
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.MoodEntry, error)
}

type dayEntryRepository struct {
	db *gorm.DB
}

func NewDayEntryRepository(db *gorm.DB) DayEntryRepository {
	return &dayEntryRepository{db: db}
}

func (r *dayEntryRepository) Upsert(ctx context.Context, userID uuid.UUID, entry domain.MoodEntry) error {
	mood := entry.Mood
	row := dayEntryRow{
		UserID: userID,
		Date:   entry.Date,
		Mood:   &mood,
	}
	if entry.MoodDateSource != nil {
		src := string(*entry.MoodDateSource)
		row.MoodDateSource = &src
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"mood", "mood_date_source", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert day entry %s: %w", entry.Date, err)
	}
	return nil
}

func (r *dayEntryRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.MoodEntry, error) {
	var rows []dayEntryRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list day entries: %w", err)
	}

	entries := make([]domain.MoodEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].toDomain()
	}
	return entries, nil
}
