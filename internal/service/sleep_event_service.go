package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
)

// lastMinuteOfDay is 23:59 as a minute offset.
const lastMinuteOfDay = 24*60 - 1

type SleepEventService interface {
	// Record stores a bed or wake event. The request must have passed
	// validation; Timestamp wins over Date+TimeMinute when both are set.
	Record(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, error)
}

type sleepEventService struct {
	repo repository.SleepEventRepository
}

func NewSleepEventService(repo repository.SleepEventRepository) SleepEventService {
	return &sleepEventService{repo: repo}
}

func (s *sleepEventService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, error) {
	ts := req.Timestamp
	if ts == "" {
		if req.Date == "" || req.TimeMinute == nil {
			return nil, domain.ErrInvalidInput
		}
		ts = LocalTimestamp(req.Date, *req.TimeMinute)
	}

	event := &domain.SleepEvent{
		Type:           req.Type,
		TimestampLocal: ts,
	}
	if err := s.repo.Create(ctx, userID, event); err != nil {
		return nil, err
	}
	return event, nil
}

// LocalTimestamp formats date plus a minute-of-day offset as
// YYYY-MM-DDTHH:MM. The offset is floored and clamped to the day.
func LocalTimestamp(date string, minuteOfDay float64) string {
	m := math.Floor(minuteOfDay)
	if math.IsNaN(m) || m < 0 {
		m = 0
	}
	if m > lastMinuteOfDay {
		m = lastMinuteOfDay
	}
	minutes := int(m)
	return fmt.Sprintf("%sT%02d:%02d", date, minutes/60, minutes%60)
}
