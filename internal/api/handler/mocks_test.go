package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jisook325/tracker/internal/auth"
	"github.com/jisook325/tracker/internal/domain"
)

// MockDayService is a mock implementation of DayService
type MockDayService struct {
	summaryFunc func(ctx context.Context, userID uuid.UUID, from, to string) (*domain.RangeSummary, error)
	putMoodFunc func(ctx context.Context, userID uuid.UUID, date string, req *domain.PutMoodRequest) (*domain.MoodEntry, error)
}

func (m *MockDayService) Summary(ctx context.Context, userID uuid.UUID, from, to string) (*domain.RangeSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, from, to)
	}
	return &domain.RangeSummary{
		From:  from,
		To:    to,
		Days:  []domain.DaySummary{},
		Pairs: []domain.SleepPair{},
	}, nil
}

func (m *MockDayService) PutMood(ctx context.Context, userID uuid.UUID, date string, req *domain.PutMoodRequest) (*domain.MoodEntry, error) {
	if m.putMoodFunc != nil {
		return m.putMoodFunc(ctx, userID, date, req)
	}
	src := req.MoodDateSource
	if src == "" {
		src = domain.MoodDateToday
	}
	return &domain.MoodEntry{Date: date, Mood: req.Mood, MoodDateSource: &src}, nil
}

// MockSleepEventService is a mock implementation of SleepEventService
type MockSleepEventService struct {
	recordFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, error)
}

func (m *MockSleepEventService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, userID, req)
	}
	ts := req.Timestamp
	if ts == "" {
		ts = req.Date + "T00:00"
	}
	return &domain.SleepEvent{ID: 1, Type: req.Type, TimestampLocal: ts}, nil
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	getFunc  func(ctx context.Context, userID uuid.UUID) (*domain.MoodSettings, error)
	saveFunc func(ctx context.Context, userID uuid.UUID, settings *domain.MoodSettings) (*domain.MoodSettings, error)
}

func (m *MockSettingsService) GetMoodSettings(ctx context.Context, userID uuid.UUID) (*domain.MoodSettings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.MoodSettings{Options: []string{}}, nil
}

func (m *MockSettingsService) SaveMoodSettings(ctx context.Context, userID uuid.UUID, settings *domain.MoodSettings) (*domain.MoodSettings, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, userID, settings)
	}
	return settings, nil
}

// withUser attaches an authenticated user and chi URL params to req.
func withUser(req *http.Request, user *domain.User, params map[string]string) *http.Request {
	ctx := req.Context()
	if user != nil {
		ctx = auth.WithUser(ctx, user)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func testUser() *domain.User {
	return &domain.User{ID: uuid.New(), ExternalID: "mock-user"}
}
