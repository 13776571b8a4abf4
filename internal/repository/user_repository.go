package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jisook325/tracker/internal/domain"
)

type UserRepository interface {
	// Ensure returns the user with externalID, creating it on first sight.
	Ensure(ctx context.Context, externalID string, email *string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Ensure(ctx context.Context, externalID string, email *string) (*domain.User, error) {
	var row userRow
	// Email is only recorded on creation.
	err := r.db.WithContext(ctx).
		Where(userRow{ExternalID: externalID}).
		Attrs(userRow{Email: email}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, fmt.Errorf("ensure user %q: %w", externalID, err)
	}
	return row.toDomain(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).First(&row, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}
