package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
)

type UserService interface {
	// Ensure finds or creates the user behind an authenticated identity.
	Ensure(ctx context.Context, externalID, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Ensure(ctx context.Context, externalID, email string) (*domain.User, error) {
	if externalID == "" {
		return nil, domain.ErrInvalidInput
	}
	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}
	return s.repo.Ensure(ctx, externalID, emailPtr)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	return s.repo.GetByExternalID(ctx, externalID)
}
