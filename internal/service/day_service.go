package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jisook325/tracker/internal/analysis"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
	"github.com/jisook325/tracker/pkg/daterange"
)

// DayService reads range summaries and records moods.
type DayService interface {
	// Summary builds the range summary for [from, to]. Empty bounds fall back
	// to the default range around today.
	Summary(ctx context.Context, userID uuid.UUID, from, to string) (*domain.RangeSummary, error)
	// PutMood records the mood of date, replacing any earlier value.
	PutMood(ctx context.Context, userID uuid.UUID, date string, req *domain.PutMoodRequest) (*domain.MoodEntry, error)
}

type dayService struct {
	dayRepo   repository.DayEntryRepository
	sleepRepo repository.SleepEventRepository
	loc       *time.Location
	now       func() time.Time
}

// NewDayService creates a DayService computing "today" in loc.
func NewDayService(dayRepo repository.DayEntryRepository, sleepRepo repository.SleepEventRepository, loc *time.Location) DayService {
	return &dayService{
		dayRepo:   dayRepo,
		sleepRepo: sleepRepo,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *dayService) Summary(ctx context.Context, userID uuid.UUID, from, to string) (*domain.RangeSummary, error) {
	r := daterange.Resolve(from, to, s.now(), s.loc)

	tracer := otel.Tracer("tracker-api/days")
	ctx, span := tracer.Start(ctx, "DayService.Summary",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("range.from", r.From),
			attribute.String("range.to", r.To),
		),
	)
	defer span.End()

	moods, err := s.dayRepo.ListRange(ctx, userID, r.From, r.To)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load moods: %w", err)
	}

	events, err := s.sleepRepo.ListRange(ctx, userID, r.StartTimestamp(), r.EndTimestamp())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load sleep events: %w", err)
	}

	summary := analysis.BuildRangeSummary(r.From, r.To, moods, events)

	span.SetAttributes(
		attribute.Int("moods.count", len(moods)),
		attribute.Int("sleep_events.count", len(events)),
		attribute.Int("days.count", len(summary.Days)),
		attribute.Int("pairs.count", len(summary.Pairs)),
		attribute.Int("unmatched.beds", summary.SleepUnmatched.Beds),
		attribute.Int("unmatched.wakes", summary.SleepUnmatched.Wakes),
	)
	if out, err := json.Marshal(summary.SleepUnmatched); err == nil {
		span.SetAttributes(attribute.String("summary.unmatched", string(out)))
	}

	return &summary, nil
}

func (s *dayService) PutMood(ctx context.Context, userID uuid.UUID, date string, req *domain.PutMoodRequest) (*domain.MoodEntry, error) {
	src := req.MoodDateSource
	if src == "" {
		src = domain.MoodDateToday
	}

	entry := domain.MoodEntry{
		Date:           date,
		Mood:           req.Mood,
		MoodDateSource: &src,
	}
	if err := s.dayRepo.Upsert(ctx, userID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
