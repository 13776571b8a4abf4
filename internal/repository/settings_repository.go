package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jisook325/tracker/internal/domain"
)

type SettingsRepository interface {
	// GetMoodOptions returns domain.ErrNotFound when the user saved none.
	GetMoodOptions(ctx context.Context, userID uuid.UUID) ([]string, error)
	SaveMoodOptions(ctx context.Context, userID uuid.UUID, options []string) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetMoodOptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var row userSettingsRow
	err := r.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user settings: %w", err)
	}
	return row.MoodOptions, nil
}

func (r *settingsRepository) SaveMoodOptions(ctx context.Context, userID uuid.UUID, options []string) error {
	row := userSettingsRow{UserID: userID, MoodOptions: options}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"mood_options", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save mood options: %w", err)
	}
	return nil
}
