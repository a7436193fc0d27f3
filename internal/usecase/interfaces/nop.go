package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// NopNotifier is used when notifications are not configured
type NopNotifier struct{}

func (NopNotifier) SendFollowNotification(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (NopNotifier) SendAchievementNotification(context.Context, uuid.UUID, entity.AwardedAchievement) error {
	return nil
}
func (NopNotifier) SendProblemFavoritedNotification(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error {
	return nil
}
func (NopNotifier) SendReputationMilestoneNotification(context.Context, uuid.UUID, int, int) error {
	return nil
}
func (NopNotifier) SendActivityMilestoneNotification(context.Context, uuid.UUID, model.ActivityType, int64) error {
	return nil
}

// NopBroadcaster is used when realtime delivery is not configured
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(context.Context, string, entity.RealtimeEvent) error { return nil }

// NopAchievementChecker never awards anything
type NopAchievementChecker struct{}

func (NopAchievementChecker) CheckAndAwardAchievements(context.Context, uuid.UUID, string, map[string]interface{}) []entity.AwardedAchievement {
	return nil
}

// UserChannel is the realtime channel of a single user
func UserChannel(userID uuid.UUID) string {
	return "user:" + userID.String()
}
