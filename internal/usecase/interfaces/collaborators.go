package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
)

// AchievementChecker re-evaluates achievements after a user action
type AchievementChecker interface {
	CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID, activityType string, details map[string]interface{}) []entity.AwardedAchievement
}

// PointsAwarder applies reputation deltas atomically and returns the new score
type PointsAwarder interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, grants []entity.PointsGrant) (int, error)
}
