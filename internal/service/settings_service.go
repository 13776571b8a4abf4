package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
)

type SettingsService interface {
	GetMoodSettings(ctx context.Context, userID uuid.UUID) (*domain.MoodSettings, error)
	SaveMoodSettings(ctx context.Context, userID uuid.UUID, settings *domain.MoodSettings) (*domain.MoodSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) GetMoodSettings(ctx context.Context, userID uuid.UUID) (*domain.MoodSettings, error) {
	options, err := s.repo.GetMoodOptions(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if options == nil {
		options = []string{}
	}
	return &domain.MoodSettings{Options: options}, nil
}

func (s *settingsService) SaveMoodSettings(ctx context.Context, userID uuid.UUID, settings *domain.MoodSettings) (*domain.MoodSettings, error) {
	if len(settings.Options) > domain.MaxMoodOptions {
		return nil, domain.ErrTooManyMoodOptions
	}
	options := append([]string{}, settings.Options...)
	if err := s.repo.SaveMoodOptions(ctx, userID, options); err != nil {
		return nil, err
	}
	return &domain.MoodSettings{Options: options}, nil
}
