package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// activityRepository implements the ActivityRepository interface
type activityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewActivityRepository creates a new activity repository instance
func NewActivityRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ActivityRepository {
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends an activity entry
func (r *activityRepository) Create(ctx context.Context, activity *model.UserActivity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		r.logger.Error("Failed to create activity",
			zap.String("user_id", activity.UserID.String()),
			zap.String("activity_type", string(activity.ActivityType)),
			zap.Error(err))
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListByUser returns the user's entries with one of the given visibilities, newest first
func (r *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error) {
	var activities []*model.UserActivity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND visibility IN ?", userID, visibilities).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&activities).Error
	if err != nil {
		r.logger.Error("Failed to list activities",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// ListFeed returns entries of all given users, newest first
func (r *activityRepository) ListFeed(ctx context.Context, userIDs []uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error) {
	if len(userIDs) == 0 {
		return []*model.UserActivity{}, nil
	}
	var activities []*model.UserActivity
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND visibility IN ?", userIDs, visibilities).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&activities).Error
	if err != nil {
		r.logger.Error("Failed to list activity feed",
			zap.Int("users", len(userIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list activity feed: %w", err)
	}
	return activities, nil
}

// CountByType counts the user's entries of one activity type
func (r *activityRepository) CountByType(ctx context.Context, userID uuid.UUID, activityType model.ActivityType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.UserActivity{}).
		Where("user_id = ? AND activity_type = ?", userID, activityType).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return n, nil
}
