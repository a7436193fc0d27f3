package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// AchievementRepository manages the catalog and earned achievements
type AchievementRepository interface {
	ListActive(ctx context.Context) ([]*model.Achievement, error)

	// ListUnearned returns active achievements the user has not earned yet
	ListUnearned(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error)

	// ListEarned returns earned achievements with their catalog entry, newest first
	ListEarned(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error)

	// Award inserts the user achievement and its activity entry in one transaction.
	// It returns false when the pair already existed.
	Award(ctx context.Context, award *model.UserAchievement, activity *model.UserActivity) (bool, error)

	// UpsertCatalog inserts or updates a catalog entry keyed by name
	UpsertCatalog(ctx context.Context, achievement *model.Achievement) error
}
