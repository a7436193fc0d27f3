package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB, logger *zap.Logger) domainRepo.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a user profile by id
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user profile",
			zap.String("user_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return &user, nil
}

// GetByIDs retrieves the profiles that exist among ids
func (r *userRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.UserProfile, error) {
	if len(ids) == 0 {
		return []*model.UserProfile{}, nil
	}
	var users []*model.UserProfile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		r.logger.Error("Failed to get user profiles", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("failed to get user profiles: %w", err)
	}
	return users, nil
}
