package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jisook325/tracker/internal/domain"
)

// MockDayEntryRepository is an in-memory DayEntryRepository keyed by user and date.
type MockDayEntryRepository struct {
	entries map[uuid.UUID]map[string]domain.MoodEntry
	err     error
}

func NewMockDayEntryRepository() *MockDayEntryRepository {
	return &MockDayEntryRepository{
		entries: make(map[uuid.UUID]map[string]domain.MoodEntry),
	}
}

func (m *MockDayEntryRepository) Upsert(ctx context.Context, userID uuid.UUID, entry domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	if m.entries[userID] == nil {
		m.entries[userID] = make(map[string]domain.MoodEntry)
	}
	m.entries[userID][entry.Date] = entry
	return nil
}

func (m *MockDayEntryRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for date, entry := range m.entries[userID] {
		if date >= from && date <= to {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// MockSleepEventRepository is an in-memory SleepEventRepository.
type MockSleepEventRepository struct {
	events map[uuid.UUID][]domain.SleepEvent
	nextID uint64
	err    error

	lastFrom, lastTo string
}

func NewMockSleepEventRepository() *MockSleepEventRepository {
	return &MockSleepEventRepository{
		events: make(map[uuid.UUID][]domain.SleepEvent),
	}
}

func (m *MockSleepEventRepository) Create(ctx context.Context, userID uuid.UUID, event *domain.SleepEvent) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	event.ID = m.nextID
	m.events[userID] = append(m.events[userID], *event)
	return nil
}

func (m *MockSleepEventRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepEvent, error) {
	m.lastFrom, m.lastTo = from, to
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepEvent
	for _, ev := range m.events[userID] {
		if ev.TimestampLocal >= from && ev.TimestampLocal <= to {
			result = append(result, ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].TimestampLocal < result[j].TimestampLocal })
	return result, nil
}

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Ensure(ctx context.Context, externalID string, email *string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ExternalID == externalID {
			return u, nil
		}
	}
	u := &domain.User{ID: uuid.New(), ExternalID: externalID, Email: email}
	m.users[u.ID] = u
	return u, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ExternalID == externalID {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSettingsRepository is an in-memory SettingsRepository.
type MockSettingsRepository struct {
	options map[uuid.UUID][]string
	err     error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{options: make(map[uuid.UUID][]string)}
}

func (m *MockSettingsRepository) GetMoodOptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	opts, ok := m.options[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return opts, nil
}

func (m *MockSettingsRepository) SaveMoodOptions(ctx context.Context, userID uuid.UUID, options []string) error {
	if m.err != nil {
		return m.err
	}
	m.options[userID] = options
	return nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
