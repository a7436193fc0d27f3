package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

// NotificationsChannel receives every notification for downstream consumers
const NotificationsChannel = "notifications"

// UserNotificationsChannel is the per-user notification channel
func UserNotificationsChannel(userID uuid.UUID) string {
	return NotificationsChannel + ":" + userID.String()
}

// RedisNotifier publishes notifications over Redis pub/sub
type RedisNotifier struct {
	publisher messaging.RedisClient
	users     domainRepo.UserRepository
	logger    *zap.Logger
}

// NewRedisNotifier creates a notifier. users is used to resolve display names and may be nil.
func NewRedisNotifier(publisher messaging.RedisClient, users domainRepo.UserRepository, logger *zap.Logger) interfaces.Notifier {
	return &RedisNotifier{
		publisher: publisher,
		users:     users,
		logger:    logger,
	}
}

func (n *RedisNotifier) publish(ctx context.Context, notification *entity.Notification) error {
	if err := n.publisher.Publish(ctx, UserNotificationsChannel(notification.UserID), notification); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	if err := n.publisher.Publish(ctx, NotificationsChannel, notification); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	n.logger.Debug("Notification published",
		zap.String("user_id", notification.UserID.String()),
		zap.String("type", string(notification.Type)))
	return nil
}

func (n *RedisNotifier) displayName(ctx context.Context, userID uuid.UUID) string {
	if n.users == nil {
		return "Someone"
	}
	user, err := n.users.GetByID(ctx, userID)
	if err != nil || user == nil || user.DisplayName == "" {
		return "Someone"
	}
	return user.DisplayName
}

func (n *RedisNotifier) SendFollowNotification(ctx context.Context, followerID, followingID uuid.UUID) error {
	name := n.displayName(ctx, followerID)
	return n.publish(ctx, entity.NewNotification(followingID, entity.NotificationFollow,
		"New follower",
		fmt.Sprintf("%s started following you", name),
		map[string]interface{}{"follower_id": followerID, "follower_name": name},
	))
}

func (n *RedisNotifier) SendAchievementNotification(ctx context.Context, userID uuid.UUID, achievement entity.AwardedAchievement) error {
	return n.publish(ctx, entity.NewNotification(userID, entity.NotificationAchievement,
		"Achievement unlocked",
		fmt.Sprintf("You earned \"%s\" (+%d points)", achievement.Name, achievement.Points),
		map[string]interface{}{
			"achievement_id": achievement.AchievementID,
			"name":           achievement.Name,
			"category":       achievement.Category,
			"points":         achievement.Points,
			"icon":           achievement.Icon,
		},
	))
}

func (n *RedisNotifier) SendProblemFavoritedNotification(ctx context.Context, proposerID, userID, problemID uuid.UUID) error {
	name := n.displayName(ctx, userID)
	return n.publish(ctx, entity.NewNotification(proposerID, entity.NotificationProblemFavorited,
		"Problem favorited",
		fmt.Sprintf("%s added your problem to favorites", name),
		map[string]interface{}{"user_id": userID, "problem_id": problemID},
	))
}

func (n *RedisNotifier) SendReputationMilestoneNotification(ctx context.Context, userID uuid.UUID, milestone, score int) error {
	return n.publish(ctx, entity.NewNotification(userID, entity.NotificationReputationMilestone,
		"Reputation milestone",
		fmt.Sprintf("Your reputation reached %d points", milestone),
		map[string]interface{}{"milestone": milestone, "score": score},
	))
}

func (n *RedisNotifier) SendActivityMilestoneNotification(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, count int64) error {
	return n.publish(ctx, entity.NewNotification(userID, entity.NotificationActivityMilestone,
		"Activity milestone",
		fmt.Sprintf("You reached %d %s activities", count, activityType),
		map[string]interface{}{"activity_type": activityType, "count": count},
	))
}
