package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// reputationRepository implements the ReputationRepository interface
type reputationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReputationRepository creates a new reputation repository instance
func NewReputationRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ReputationRepository {
	return &reputationRepository{
		db:     db,
		logger: logger,
	}
}

// ApplyDeltas locks the profile row, applies each delta with a zero floor and
// appends the history rows, all in one transaction
func (r *reputationRepository) ApplyDeltas(ctx context.Context, userID uuid.UUID, deltas []*model.UserReputationHistory) (int, int, error) {
	var before, after int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile model.UserProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "reputation_score").
			Where("id = ?", userID).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user profile: %w", err)
		}
		before = profile.ReputationScore

		for _, d := range deltas {
			err := tx.Model(&model.UserProfile{}).
				Where("id = ?", userID).
				Update("reputation_score", gorm.Expr(
					"CASE WHEN reputation_score + ? < 0 THEN 0 ELSE reputation_score + ? END", d.PointsChange, d.PointsChange,
				)).Error
			if err != nil {
				return fmt.Errorf("failed to update reputation score: %w", err)
			}
		}

		if err := tx.Create(&deltas).Error; err != nil {
			return fmt.Errorf("failed to insert reputation history: %w", err)
		}

		return tx.Model(&model.UserProfile{}).
			Select("reputation_score").
			Where("id = ?", userID).
			Scan(&after).Error
	})
	if err != nil {
		if !errors.Is(err, domainErrors.ErrUserNotFound) {
			r.logger.Error("Failed to apply reputation deltas",
				zap.String("user_id", userID.String()),
				zap.Int("deltas", len(deltas)),
				zap.Error(err))
		}
		return 0, 0, err
	}

	r.logger.Debug("Reputation deltas applied",
		zap.String("user_id", userID.String()),
		zap.Int("before", before),
		zap.Int("after", after))

	return before, after, nil
}

// SumDeltas sums points_change in [from, to)
func (r *reputationRepository) SumDeltas(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&model.UserReputationHistory{}).
		Select("COALESCE(SUM(points_change), 0)").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum reputation deltas: %w", err)
	}
	return total, nil
}

// ListHistory returns the user's deltas, newest first
func (r *reputationRepository) ListHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error) {
	var history []*model.UserReputationHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&history).Error
	if err != nil {
		r.logger.Error("Failed to list reputation history",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list reputation history: %w", err)
	}
	return history, nil
}
