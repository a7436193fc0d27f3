package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// statsRepository answers aggregate queries directly against the source tables
type statsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStatsRepository creates a new stats repository instance
func NewStatsRepository(db *gorm.DB, logger *zap.Logger) domainRepo.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *statsRepository) count(ctx context.Context, name string, userID uuid.UUID, query func(tx *gorm.DB) *gorm.DB) (int64, error) {
	var n int64
	if err := query(r.db.WithContext(ctx)).Count(&n).Error; err != nil {
		r.logger.Error("Failed to count "+name,
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return n, nil
}

func (r *statsRepository) CountVotes(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "votes", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.Vote{}).Where("user_id = ?", userID)
	})
}

func (r *statsRepository) CountProblems(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "problems", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.Problem{}).Where("proposer_id = ?", userID)
	})
}

// CountVotesReceived sums the vote counters of the user's problems
func (r *statsRepository) CountVotesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Problem{}).
		Select("COALESCE(SUM(vote_count), 0)").
		Where("proposer_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		r.logger.Error("Failed to sum votes received",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, fmt.Errorf("failed to sum votes received: %w", err)
	}
	return total, nil
}

func (r *statsRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "followers", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.UserFollow{}).Where("following_id = ?", userID)
	})
}

func (r *statsRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "following", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.UserFollow{}).Where("follower_id = ?", userID)
	})
}

func (r *statsRepository) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "favorites", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.UserFavorite{}).Where("user_id = ?", userID)
	})
}

func (r *statsRepository) CountAchievements(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, "achievements", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.UserAchievement{}).Where("user_id = ?", userID)
	})
}

func (r *statsRepository) CountPopularProblems(ctx context.Context, userID uuid.UUID, minVotes int) (int64, error) {
	return r.count(ctx, "popular problems", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&model.Problem{}).Where("proposer_id = ? AND vote_count >= ?", userID, minVotes)
	})
}

// CountEarlyVotes counts votes cast among the first maxPrior on problems that
// later reached minVotes. Ties on created_at count as earlier.
func (r *statsRepository) CountEarlyVotes(ctx context.Context, userID uuid.UUID, minVotes, maxPrior int) (int64, error) {
	return r.count(ctx, "early votes", userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Table("votes AS v").
			Joins("JOIN problems AS p ON p.id = v.problem_id").
			Where("v.user_id = ?", userID).
			Where("p.vote_count >= ?", minVotes).
			Where("(SELECT COUNT(*) FROM votes AS e WHERE e.problem_id = v.problem_id AND e.created_at <= v.created_at) <= ?", maxPrior)
	})
}

func (r *statsRepository) CountVotedCategories(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("votes AS v").
		Joins("JOIN problems AS p ON p.id = v.problem_id").
		Where("v.user_id = ?", userID).
		Select("COUNT(DISTINCT p.category_id)").
		Scan(&n).Error
	if err != nil {
		r.logger.Error("Failed to count voted categories",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count voted categories: %w", err)
	}
	return n, nil
}

// ActivityTimestamps returns created_at of the user's activities since the given time
func (r *statsRepository) ActivityTimestamps(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var timestamps []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.UserActivity{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Pluck("created_at", &timestamps).Error
	if err != nil {
		r.logger.Error("Failed to load activity timestamps",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load activity timestamps: %w", err)
	}
	return timestamps, nil
}
