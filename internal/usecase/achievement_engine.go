package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/metrics"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

// AchievementEngine evaluates the catalog against user statistics and awards
// achievements that are newly satisfied
type AchievementEngine struct {
	achievements domainRepo.AchievementRepository
	collector    *StatsCollector
	points       interfaces.PointsAwarder
	notifier     interfaces.Notifier
	broadcaster  interfaces.Broadcaster
	logger       *zap.Logger
	now          func() time.Time
}

// NewAchievementEngine creates an engine. Nil notifier and broadcaster disable delivery.
func NewAchievementEngine(
	achievements domainRepo.AchievementRepository,
	collector *StatsCollector,
	points interfaces.PointsAwarder,
	notifier interfaces.Notifier,
	broadcaster interfaces.Broadcaster,
	logger *zap.Logger,
) *AchievementEngine {
	if notifier == nil {
		notifier = interfaces.NopNotifier{}
	}
	if broadcaster == nil {
		broadcaster = interfaces.NopBroadcaster{}
	}
	return &AchievementEngine{
		achievements: achievements,
		collector:    collector,
		points:       points,
		notifier:     notifier,
		broadcaster:  broadcaster,
		logger:       logger,
		now:          time.Now,
	}
}

// CheckAndAwardAchievements awards every unearned achievement whose criterion
// the user now satisfies and grants their points. Query failures abort the
// check and yield an empty list; a failed award is skipped.
func (e *AchievementEngine) CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID, activityType string, details map[string]interface{}) []entity.AwardedAchievement {
	start := time.Now()
	defer func() { metrics.AchievementCheckDuration.Observe(time.Since(start).Seconds()) }()

	awarded := []entity.AwardedAchievement{}

	stats, user, err := e.collector.CollectUserStats(ctx, userID)
	if err != nil {
		apperrors.LogError(e.logger, err, "Failed to load stats for achievement check",
			zap.String("user_id", userID.String()),
			zap.String("activity_type", activityType))
		return awarded
	}

	candidates, err := e.achievements.ListUnearned(ctx, userID)
	if err != nil {
		apperrors.LogError(e.logger, err, "Failed to load unearned achievements",
			zap.String("user_id", userID.String()))
		return awarded
	}

	awardContext := encodeJSON(map[string]interface{}{
		"trigger": activityType,
		"details": details,
		"stats":   stats,
	})

	for _, achievement := range candidates {
		criterion, err := entity.ParseCriterion(achievement.Criteria)
		if err != nil {
			e.logger.Warn("Skipping achievement with invalid criteria",
				zap.String("achievement", achievement.Name),
				zap.Error(err))
			continue
		}
		if !entity.Evaluate(criterion, *stats) {
			continue
		}

		earned, ok := e.award(ctx, user, achievement, awardContext)
		if ok {
			awarded = append(awarded, earned)
		}
	}

	if len(awarded) == 0 {
		return awarded
	}

	grants := make([]entity.PointsGrant, 0, len(awarded))
	entityType := model.EntityAchievement
	for _, a := range awarded {
		if a.Points == 0 {
			continue
		}
		achievementID := a.AchievementID
		grants = append(grants, entity.PointsGrant{
			Points:            a.Points,
			Reason:            model.ReasonAchievementEarned,
			RelatedEntityType: &entityType,
			RelatedEntityID:   &achievementID,
		})
	}
	if len(grants) > 0 && e.points != nil {
		if _, err := e.points.AwardPoints(ctx, userID, grants); err != nil {
			apperrors.LogError(e.logger, err, "Failed to grant achievement points",
				zap.String("user_id", userID.String()),
				zap.Int("achievements", len(awarded)))
		}
	}

	e.logger.Info("Achievements awarded",
		zap.String("user_id", userID.String()),
		zap.String("activity_type", activityType),
		zap.Int("count", len(awarded)))

	return awarded
}

func (e *AchievementEngine) award(ctx context.Context, user *model.UserProfile, achievement *model.Achievement, awardContext datatypes.JSON) (entity.AwardedAchievement, bool) {
	earnedAt := e.now().UTC()
	achievementID := achievement.ID
	entityType := model.EntityAchievement

	row := &model.UserAchievement{
		UserID:        user.ID,
		AchievementID: achievement.ID,
		EarnedAt:      earnedAt,
		Context:       awardContext,
	}
	activity := &model.UserActivity{
		UserID:       user.ID,
		ActivityType: model.ActivityAchievementEarned,
		EntityType:   &entityType,
		EntityID:     &achievementID,
		Metadata: encodeJSON(map[string]interface{}{
			"achievement_name": achievement.Name,
			"category":         achievement.Category,
			"points":           achievement.Points,
		}),
		Visibility: user.ActivityVisibility,
		CreatedAt:  earnedAt,
	}

	created, err := e.achievements.Award(ctx, row, activity)
	if err != nil {
		apperrors.LogError(e.logger, err, "Failed to award achievement",
			zap.String("user_id", user.ID.String()),
			zap.String("achievement", achievement.Name))
		return entity.AwardedAchievement{}, false
	}
	if !created {
		e.logger.Debug("Achievement already earned",
			zap.String("user_id", user.ID.String()),
			zap.String("achievement", achievement.Name))
		return entity.AwardedAchievement{}, false
	}

	earned := entity.AwardedAchievement{
		AchievementID: achievement.ID,
		Name:          achievement.Name,
		Description:   achievement.Description,
		Category:      achievement.Category,
		Points:        achievement.Points,
		Icon:          achievement.Icon,
		EarnedAt:      earnedAt,
	}
	metrics.AchievementsAwarded.WithLabelValues(achievement.Category).Inc()

	if err := e.notifier.SendAchievementNotification(ctx, user.ID, earned); err != nil {
		metrics.NotificationFailures.WithLabelValues("achievement").Inc()
		e.logger.Warn("Failed to send achievement notification",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}
	event := entity.RealtimeEvent{Type: entity.EventAchievementEarned, Payload: earned, Timestamp: earnedAt}
	if err := e.broadcaster.Broadcast(ctx, interfaces.UserChannel(user.ID), event); err != nil {
		metrics.NotificationFailures.WithLabelValues("broadcast").Inc()
		e.logger.Warn("Failed to broadcast achievement",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	return earned, true
}

// GetUserAchievements returns the user's earned achievements, newest first
func (e *AchievementEngine) GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error) {
	earned, err := e.achievements.ListEarned(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load achievements", err)
	}
	return earned, nil
}

// ListCatalog returns the active achievement catalog
func (e *AchievementEngine) ListCatalog(ctx context.Context) ([]*model.Achievement, error) {
	catalog, err := e.achievements.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load achievement catalog", err)
	}
	return catalog, nil
}

// GetAchievementProgress reports progress towards every unearned achievement,
// closest first
func (e *AchievementEngine) GetAchievementProgress(ctx context.Context, userID uuid.UUID) ([]entity.AchievementProgress, error) {
	stats, _, err := e.collector.CollectUserStats(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user stats")
	}
	candidates, err := e.achievements.ListUnearned(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load achievements", err)
	}

	progress := make([]entity.AchievementProgress, 0, len(candidates))
	for _, a := range candidates {
		criterion, err := entity.ParseCriterion(a.Criteria)
		if err != nil {
			continue
		}
		current, target := entity.Progress(criterion, *stats)
		percent := 0
		if target > 0 {
			percent = current * 100 / target
			if percent > 100 {
				percent = 100
			}
		}
		progress = append(progress, entity.AchievementProgress{
			AchievementID: a.ID,
			Name:          a.Name,
			Category:      a.Category,
			Points:        a.Points,
			Current:       current,
			Target:        target,
			Percent:       percent,
		})
	}

	sort.SliceStable(progress, func(i, j int) bool { return progress[i].Percent > progress[j].Percent })
	return progress, nil
}

// SeedCatalog upserts catalog entries by name. Entries with invalid criteria
// are rejected before anything is written.
func (e *AchievementEngine) SeedCatalog(ctx context.Context, entries []entity.CatalogEntry) (int, error) {
	rows := make([]*model.Achievement, 0, len(entries))
	for _, entry := range entries {
		if _, err := entry.Criteria.ToCriterion(); err != nil {
			return 0, apperrors.InvalidArgument(fmt.Sprintf("invalid criteria for achievement %q", entry.Name), err)
		}
		criteria, err := json.Marshal(entry.Criteria)
		if err != nil {
			return 0, fmt.Errorf("failed to encode criteria: %w", err)
		}
		rows = append(rows, &model.Achievement{
			Name:        entry.Name,
			Description: entry.Description,
			Category:    entry.Category,
			Points:      entry.Points,
			Icon:        entry.Icon,
			Criteria:    datatypes.JSON(criteria),
			IsActive:    true,
		})
	}

	for _, row := range rows {
		if err := e.achievements.UpsertCatalog(ctx, row); err != nil {
			return 0, fmt.Errorf("failed to seed achievement %q: %w", row.Name, err)
		}
	}

	e.logger.Info("Achievement catalog seeded", zap.Int("entries", len(rows)))
	return len(rows), nil
}

func encodeJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
