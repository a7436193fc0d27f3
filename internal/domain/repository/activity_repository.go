package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// ActivityRepository appends to and reads the activity log
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.UserActivity) error
	ListByUser(ctx context.Context, userID uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error)
	ListFeed(ctx context.Context, userIDs []uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error)
	CountByType(ctx context.Context, userID uuid.UUID, activityType model.ActivityType) (int64, error)
}
