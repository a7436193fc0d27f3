package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
)

// MultiNotifier delivers every notification through all notifiers.
// Every notifier is called; the errors are joined.
type MultiNotifier []interfaces.Notifier

// NewMultiNotifier skips nil entries and collapses a single notifier
func NewMultiNotifier(notifiers ...interfaces.Notifier) interfaces.Notifier {
	var out MultiNotifier
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	switch len(out) {
	case 0:
		return interfaces.NopNotifier{}
	case 1:
		return out[0]
	}
	return out
}

func (m MultiNotifier) each(fn func(interfaces.Notifier) error) error {
	var errs []error
	for _, n := range m {
		if err := fn(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiNotifier) SendFollowNotification(ctx context.Context, followerID, followingID uuid.UUID) error {
	return m.each(func(n interfaces.Notifier) error { return n.SendFollowNotification(ctx, followerID, followingID) })
}

func (m MultiNotifier) SendAchievementNotification(ctx context.Context, userID uuid.UUID, achievement entity.AwardedAchievement) error {
	return m.each(func(n interfaces.Notifier) error { return n.SendAchievementNotification(ctx, userID, achievement) })
}

func (m MultiNotifier) SendProblemFavoritedNotification(ctx context.Context, proposerID, userID, problemID uuid.UUID) error {
	return m.each(func(n interfaces.Notifier) error {
		return n.SendProblemFavoritedNotification(ctx, proposerID, userID, problemID)
	})
}

func (m MultiNotifier) SendReputationMilestoneNotification(ctx context.Context, userID uuid.UUID, milestone, score int) error {
	return m.each(func(n interfaces.Notifier) error {
		return n.SendReputationMilestoneNotification(ctx, userID, milestone, score)
	})
}

func (m MultiNotifier) SendActivityMilestoneNotification(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, count int64) error {
	return m.each(func(n interfaces.Notifier) error {
		return n.SendActivityMilestoneNotification(ctx, userID, activityType, count)
	})
}
