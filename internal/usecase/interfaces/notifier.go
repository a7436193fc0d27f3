package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// Notifier delivers user notifications. Callers log and ignore its errors.
type Notifier interface {
	SendFollowNotification(ctx context.Context, followerID, followingID uuid.UUID) error
	SendAchievementNotification(ctx context.Context, userID uuid.UUID, achievement entity.AwardedAchievement) error
	SendProblemFavoritedNotification(ctx context.Context, proposerID, userID, problemID uuid.UUID) error
	SendReputationMilestoneNotification(ctx context.Context, userID uuid.UUID, milestone, score int) error
	SendActivityMilestoneNotification(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, count int64) error
}

// Broadcaster pushes realtime events to connected clients
type Broadcaster interface {
	Broadcast(ctx context.Context, channel string, event entity.RealtimeEvent) error
}
