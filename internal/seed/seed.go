package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jisook325/tracker/internal/auth"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
	"github.com/jisook325/tracker/pkg/daterange"
)

const seededDays = 14

var moods = []string{"calm", "happy", "tired", "anxious", "sad"}

// Run seeds the mock user with two weeks of moods and sleep events ending
// today in loc. Safe to call multiple times: a user that already has sleep
// events in the window is left alone.
func Run(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, logger *zap.Logger) error {
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := repository.NewUserRepository(db)
	days := repository.NewDayEntryRepository(db)
	events := repository.NewSleepEventRepository(db)
	settings := repository.NewSettingsRepository(db)

	user, err := users.Ensure(ctx, auth.DefaultMockUser, nil)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	today := now.In(loc)
	window := daterange.Range{
		From: today.AddDate(0, 0, -seededDays).Format(daterange.Layout),
		To:   today.Format(daterange.Layout),
	}
	existing, err := events.ListRange(ctx, user.ID, window.StartTimestamp(), window.EndTimestamp())
	if err != nil {
		return fmt.Errorf("failed to check existing events: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("seed skipped", zap.String("user_id", user.ID.String()), zap.Int("events", len(existing)))
		return nil
	}

	if err := settings.SaveMoodOptions(ctx, user.ID, moods); err != nil {
		return fmt.Errorf("failed to save mood options: %w", err)
	}

	rng := rand.New(rand.NewSource(today.Unix()))
	var created int
	for i := seededDays; i >= 1; i-- {
		night := today.AddDate(0, 0, -i)
		morning := night.AddDate(0, 0, 1)

		// Skip some moods so the calendar shows partial days.
		if rng.Float32() < 0.8 {
			src := domain.MoodDateToday
			entry := domain.MoodEntry{
				Date:           morning.Format(daterange.Layout),
				Mood:           moods[rng.Intn(len(moods))],
				MoodDateSource: &src,
			}
			if err := days.Upsert(ctx, user.ID, entry); err != nil {
				return fmt.Errorf("failed to seed mood for %s: %w", entry.Date, err)
			}
		}

		bed := time.Date(night.Year(), night.Month(), night.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, loc)
		wake := bed.Add(time.Duration(6*60+rng.Intn(3*60)) * time.Minute)

		batch := []domain.SleepEvent{
			{Type: domain.SleepEventBed, TimestampLocal: bed.Format(domain.LocalTimestampLayout)},
		}
		// The oldest night has a forgotten wake, which leaves one unmatched bed.
		if i != seededDays {
			batch = append(batch, domain.SleepEvent{Type: domain.SleepEventWake, TimestampLocal: wake.Format(domain.LocalTimestampLayout)})
		}
		for j := range batch {
			if err := events.Create(ctx, user.ID, &batch[j]); err != nil {
				return fmt.Errorf("failed to seed sleep event: %w", err)
			}
			created++
		}
	}

	logger.Info("seed completed",
		zap.String("user_id", user.ID.String()),
		zap.String("from", window.From),
		zap.String("to", window.To),
		zap.Int("events", created),
	)
	return nil
}
