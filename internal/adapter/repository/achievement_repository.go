package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// achievementRepository implements the AchievementRepository interface
type achievementRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAchievementRepository creates a new achievement repository instance
func NewAchievementRepository(db *gorm.DB, logger *zap.Logger) domainRepo.AchievementRepository {
	return &achievementRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns the active catalog ordered by category and points
func (r *achievementRepository) ListActive(ctx context.Context) ([]*model.Achievement, error) {
	var achievements []*model.Achievement
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, points ASC, name ASC").
		Find(&achievements).Error
	if err != nil {
		r.logger.Error("Failed to list achievements", zap.Error(err))
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

// ListUnearned returns active achievements the user has not earned yet
func (r *achievementRepository) ListUnearned(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error) {
	var achievements []*model.Achievement
	earned := r.db.Model(&model.UserAchievement{}).
		Select("achievement_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id NOT IN (?)", earned).
		Order("points ASC, name ASC").
		Find(&achievements).Error
	if err != nil {
		r.logger.Error("Failed to list unearned achievements",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list unearned achievements: %w", err)
	}
	return achievements, nil
}

// ListEarned returns the user's achievements with their catalog entry, newest first
func (r *achievementRepository) ListEarned(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error) {
	var earned []*model.UserAchievement
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&earned).Error
	if err != nil {
		r.logger.Error("Failed to list earned achievements",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list earned achievements: %w", err)
	}
	return earned, nil
}

// Award inserts the user achievement and its activity entry atomically.
// A duplicate pair inserts nothing and returns false.
func (r *achievementRepository) Award(ctx context.Context, award *model.UserAchievement, activity *model.UserActivity) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
			DoNothing: true,
		}).Omit("Achievement").Create(award)
		if result.Error != nil {
			return fmt.Errorf("failed to insert user achievement: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if activity != nil {
			if err := tx.Create(activity).Error; err != nil {
				return fmt.Errorf("failed to insert achievement activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to award achievement",
			zap.String("user_id", award.UserID.String()),
			zap.String("achievement_id", award.AchievementID.String()),
			zap.Error(err))
		return false, err
	}
	return created, nil
}

// UpsertCatalog inserts or updates a catalog entry keyed by name
func (r *achievementRepository) UpsertCatalog(ctx context.Context, achievement *model.Achievement) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "category", "points", "icon", "criteria", "is_active", "updated_at"}),
	}).Create(achievement).Error
	if err != nil {
		r.logger.Error("Failed to upsert achievement",
			zap.String("name", achievement.Name),
			zap.Error(err))
		return fmt.Errorf("failed to upsert achievement: %w", err)
	}
	return nil
}
