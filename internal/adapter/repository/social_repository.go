package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

const reconcileCountersSQL = `
UPDATE user_profiles AS u
SET total_followers = c.followers,
    total_following = c.following,
    updated_at = NOW()
FROM (
    SELECT p.id,
           (SELECT COUNT(*) FROM user_follows f WHERE f.following_id = p.id) AS followers,
           (SELECT COUNT(*) FROM user_follows f WHERE f.follower_id = p.id) AS following
    FROM user_profiles p
) AS c
WHERE u.id = c.id
  AND (u.total_followers <> c.followers OR u.total_following <> c.following)`

// socialRepository implements the SocialRepository interface
type socialRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSocialRepository creates a new social repository instance
func NewSocialRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SocialRepository {
	return &socialRepository{
		db:     db,
		logger: logger,
	}
}

func adjustCounter(tx *gorm.DB, userID uuid.UUID, column string, delta int) error {
	return tx.Model(&model.UserProfile{}).
		Where("id = ?", userID).
		Update(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta)).Error
}

// Follow inserts the edge, bumps both counters and writes the activities in one transaction
func (r *socialRepository) Follow(ctx context.Context, follow *model.UserFollow, activities []*model.UserActivity) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).Create(follow)
		if result.Error != nil {
			return fmt.Errorf("failed to insert follow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if err := adjustCounter(tx, follow.FollowerID, "total_following", 1); err != nil {
			return fmt.Errorf("failed to update following counter: %w", err)
		}
		if err := adjustCounter(tx, follow.FollowingID, "total_followers", 1); err != nil {
			return fmt.Errorf("failed to update follower counter: %w", err)
		}
		if len(activities) > 0 {
			if err := tx.Create(&activities).Error; err != nil {
				return fmt.Errorf("failed to insert follow activities: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to follow user",
			zap.String("follower_id", follow.FollowerID.String()),
			zap.String("following_id", follow.FollowingID.String()),
			zap.Error(err))
		return false, err
	}
	return created, nil
}

// Unfollow deletes the edge, decrements both counters and writes the activity in one transaction
func (r *socialRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID, activity *model.UserActivity) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&model.UserFollow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete follow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true

		if err := adjustCounter(tx, followerID, "total_following", -1); err != nil {
			return fmt.Errorf("failed to update following counter: %w", err)
		}
		if err := adjustCounter(tx, followingID, "total_followers", -1); err != nil {
			return fmt.Errorf("failed to update follower counter: %w", err)
		}
		if activity != nil {
			if err := tx.Create(activity).Error; err != nil {
				return fmt.Errorf("failed to insert unfollow activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to unfollow user",
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
			zap.Error(err))
		return false, err
	}
	return removed, nil
}

func (r *socialRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return n > 0, nil
}

func (r *socialRepository) listProfiles(ctx context.Context, joinColumn, filterColumn string, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	var users []*model.UserProfile
	err := r.db.WithContext(ctx).
		Table("user_profiles").
		Select("user_profiles.*").
		Joins("JOIN user_follows ON user_follows."+joinColumn+" = user_profiles.id").
		Where("user_follows."+filterColumn+" = ?", userID).
		Order("user_follows.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&users).Error
	if err != nil {
		r.logger.Error("Failed to list follow edges",
			zap.String("user_id", userID.String()),
			zap.String("direction", filterColumn),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}
	return users, nil
}

// ListFollowers returns profiles following userID, most recent first
func (r *socialRepository) ListFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	return r.listProfiles(ctx, "follower_id", "following_id", userID, page)
}

// ListFollowing returns profiles followed by userID, most recent first
func (r *socialRepository) ListFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	return r.listProfiles(ctx, "following_id", "follower_id", userID, page)
}

func (r *socialRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load followed ids: %w", err)
	}
	return ids, nil
}

// Favorite inserts the favorite and its activity in one transaction
func (r *socialRepository) Favorite(ctx context.Context, favorite *model.UserFavorite, activity *model.UserActivity) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "problem_id"}},
			DoNothing: true,
		}).Omit("Problem").Create(favorite)
		if result.Error != nil {
			return fmt.Errorf("failed to insert favorite: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if activity != nil {
			if err := tx.Create(activity).Error; err != nil {
				return fmt.Errorf("failed to insert favorite activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to favorite problem",
			zap.String("user_id", favorite.UserID.String()),
			zap.String("problem_id", favorite.ProblemID.String()),
			zap.Error(err))
		return false, err
	}
	return created, nil
}

func (r *socialRepository) Unfavorite(ctx context.Context, userID, problemID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND problem_id = ?", userID, problemID).
		Delete(&model.UserFavorite{})
	if result.Error != nil {
		r.logger.Error("Failed to unfavorite problem",
			zap.String("user_id", userID.String()),
			zap.String("problem_id", problemID.String()),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *socialRepository) IsFavorited(ctx context.Context, userID, problemID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.UserFavorite{}).
		Where("user_id = ? AND problem_id = ?", userID, problemID).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return n > 0, nil
}

// ListFavorites returns favorites with their problem, most recent first
func (r *socialRepository) ListFavorites(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error) {
	var favorites []*model.UserFavorite
	err := r.db.WithContext(ctx).
		Preload("Problem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&favorites).Error
	if err != nil {
		r.logger.Error("Failed to list favorites",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// ReconcileCounters recomputes follow counters from the edge table
func (r *socialRepository) ReconcileCounters(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(reconcileCountersSQL)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reconcile counters: %w", result.Error)
	}
	return result.RowsAffected, nil
}
