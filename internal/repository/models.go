package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jisook325/tracker/internal/domain"
)

// Row types mirror the storage schema and never leave this package.

type userRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email      *string   `gorm:"type:varchar(320)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (userRow) TableName() string {
	return "users"
}

func (u *userRow) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
	}
}

type dayEntryRow struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_day_entries_user_date"`
	Date           string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_day_entries_user_date"`
	Mood           *string   `gorm:"type:varchar(64)"`
	MoodDateSource *string   `gorm:"type:varchar(16)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	User userRow `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (dayEntryRow) TableName() string {
	return "day_entries"
}

func (r *dayEntryRow) toDomain() domain.MoodEntry {
	entry := domain.MoodEntry{Date: r.Date}
	if r.Mood != nil {
		entry.Mood = *r.Mood
	}
	if r.MoodDateSource != nil {
		src := domain.MoodDateSource(*r.MoodDateSource)
		entry.MoodDateSource = &src
	}
	return entry
}

type sleepEventRow struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_events_user_ts"`
	Type           string    `gorm:"type:varchar(8);not null"`
	TimestampLocal string    `gorm:"type:varchar(19);not null;index:idx_sleep_events_user_ts"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	User userRow `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (sleepEventRow) TableName() string {
	return "sleep_events"
}

func (r *sleepEventRow) toDomain() domain.SleepEvent {
	return domain.SleepEvent{
		ID:             r.ID,
		Type:           domain.SleepEventType(r.Type),
		TimestampLocal: r.TimestampLocal,
	}
}

type userSettingsRow struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	MoodOptions []string  `gorm:"serializer:json"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	User userRow `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (userSettingsRow) TableName() string {
	return "user_settings"
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &dayEntryRow{}, &sleepEventRow{}, &userSettingsRow{})
}
