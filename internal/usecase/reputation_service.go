package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/service"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/metrics"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

// ReputationService computes reputation breakdowns and applies score changes
type ReputationService struct {
	reputation domainRepo.ReputationRepository
	collector  *StatsCollector
	cache      domainRepo.BreakdownCache
	calculator *service.ReputationCalculator
	notifier   interfaces.Notifier
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewReputationService creates a reputation service. cache may be nil.
func NewReputationService(
	reputation domainRepo.ReputationRepository,
	collector *StatsCollector,
	cache domainRepo.BreakdownCache,
	calculator *service.ReputationCalculator,
	notifier interfaces.Notifier,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ReputationService {
	if notifier == nil {
		notifier = interfaces.NopNotifier{}
	}
	return &ReputationService{
		reputation: reputation,
		collector:  collector,
		cache:      cache,
		calculator: calculator,
		notifier:   notifier,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the time source, used by tests
func (s *ReputationService) WithClock(now func() time.Time) *ReputationService {
	s.now = now
	return s
}

// CalculateUserReputation returns the user's reputation breakdown, served from
// cache when a fresh entry exists
func (s *ReputationService) CalculateUserReputation(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("Failed to read reputation cache",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	breakdown, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, breakdown, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache reputation breakdown",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}
	return breakdown, nil
}

func (s *ReputationService) compute(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	stats, _, err := s.collector.CollectReputationStats(ctx, userID, s.calculator.Weights())
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.Internal("failed to calculate reputation", err)
	}

	result := s.calculator.Calculate(*stats)
	rank, next := service.RankFor(result.TotalScore)

	breakdown := &entity.ReputationBreakdown{
		UserID:           userID,
		BasicActivity:    result.BasicActivity,
		QualityBonuses:   result.Quality,
		SocialFactors:    result.Social,
		Community:        result.Community,
		Consistency:      result.Consistency,
		Penalties:        result.Penalties,
		Components:       result.Components(),
		RawScore:         result.RawScore,
		TotalScore:       result.TotalScore,
		DecayApplied:     result.DecayApplied,
		Rank:             rank,
		NextRank:         next,
		PointsToNextRank: service.PointsToNextRank(result.TotalScore),
		Trend:            s.trend(ctx, userID),
		Display:          service.Display(result.TotalScore),
		CalculatedAt:     s.now().UTC(),
	}

	s.logger.Debug("Reputation calculated",
		zap.String("user_id", userID.String()),
		zap.Int("score", breakdown.TotalScore),
		zap.String("rank", rank.Name),
		zap.String("penalties", service.Describe(result.Penalties)))

	return breakdown, nil
}

func (s *ReputationService) trend(ctx context.Context, userID uuid.UUID) entity.Trend {
	window := time.Duration(s.calculator.Weights().TrendWindowDays) * 24 * time.Hour
	now := s.now()

	recent, err := s.reputation.SumDeltas(ctx, userID, now.Add(-window), now)
	if err != nil {
		s.logger.Warn("Failed to load recent reputation deltas", zap.String("user_id", userID.String()), zap.Error(err))
		return entity.Trend{Direction: entity.TrendStable}
	}
	previous, err := s.reputation.SumDeltas(ctx, userID, now.Add(-2*window), now.Add(-window))
	if err != nil {
		s.logger.Warn("Failed to load previous reputation deltas", zap.String("user_id", userID.String()), zap.Error(err))
		return entity.Trend{Direction: entity.TrendStable}
	}
	return s.calculator.Trend(recent, previous)
}

// UpdateUserReputation adds pointsChange to the stored score (floored at zero)
// and records one history row. It returns the new score.
func (s *ReputationService) UpdateUserReputation(ctx context.Context, userID uuid.UUID, pointsChange int, reason string, relatedEntityType *string, relatedEntityID *uuid.UUID) (int, error) {
	if pointsChange == 0 {
		return 0, domainErrors.ErrZeroPointsChange
	}
	if strings.TrimSpace(reason) == "" {
		return 0, domainErrors.ErrEmptyReason
	}
	return s.AwardPoints(ctx, userID, []entity.PointsGrant{{
		Points:            pointsChange,
		Reason:            reason,
		RelatedEntityType: relatedEntityType,
		RelatedEntityID:   relatedEntityID,
	}})
}

// AwardPoints applies all grants in one transaction with one history row each
func (s *ReputationService) AwardPoints(ctx context.Context, userID uuid.UUID, grants []entity.PointsGrant) (int, error) {
	deltas := make([]*model.UserReputationHistory, 0, len(grants))
	createdAt := s.now().UTC()
	for _, g := range grants {
		if g.Points == 0 {
			continue
		}
		deltas = append(deltas, &model.UserReputationHistory{
			UserID:            userID,
			PointsChange:      g.Points,
			Reason:            g.Reason,
			RelatedEntityType: g.RelatedEntityType,
			RelatedEntityID:   g.RelatedEntityID,
			CreatedAt:         createdAt,
		})
	}
	if len(deltas) == 0 {
		return 0, domainErrors.ErrZeroPointsChange
	}

	before, after, err := s.reputation.ApplyDeltas(ctx, userID, deltas)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrNotFound) {
			return 0, err
		}
		apperrors.LogError(s.logger, err, "Failed to update reputation", zap.String("user_id", userID.String()))
		return 0, apperrors.Internal("failed to update reputation", err)
	}

	for _, d := range deltas {
		metrics.ReputationUpdates.WithLabelValues(d.Reason).Inc()
	}
	s.invalidate(ctx, userID)

	s.logger.Info("Reputation updated",
		zap.String("user_id", userID.String()),
		zap.Int("before", before),
		zap.Int("after", after),
		zap.Int("deltas", len(deltas)))

	if milestone, ok := service.CrossedMilestone(before, after); ok {
		if err := s.notifier.SendReputationMilestoneNotification(ctx, userID, milestone, after); err != nil {
			metrics.NotificationFailures.WithLabelValues("reputation_milestone").Inc()
			s.logger.Warn("Failed to send reputation milestone notification",
				zap.String("user_id", userID.String()),
				zap.Int("milestone", milestone),
				zap.Error(err))
		}
	}

	return after, nil
}

func (s *ReputationService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate reputation cache",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}

// GetReputationHistory returns the user's score changes, newest first
func (s *ReputationService) GetReputationHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error) {
	history, err := s.reputation.ListHistory(ctx, userID, page.Normalize())
	if err != nil {
		return nil, apperrors.Internal("failed to load reputation history", err)
	}
	return history, nil
}

// RecalculateAndStore recomputes the score from scratch and stores the
// difference to the persisted score as a recalculation delta
func (s *ReputationService) RecalculateAndStore(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	breakdown, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.collector.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	delta := breakdown.TotalScore - user.ReputationScore
	if delta != 0 {
		userEntity := model.EntityUser
		if _, err := s.AwardPoints(ctx, userID, []entity.PointsGrant{{
			Points:            delta,
			Reason:            model.ReasonRecalculation,
			RelatedEntityType: &userEntity,
			RelatedEntityID:   &userID,
		}}); err != nil {
			return nil, err
		}
	} else {
		s.invalidate(ctx, userID)
	}

	s.logger.Info("Reputation recalculated",
		zap.String("user_id", userID.String()),
		zap.Int("stored", user.ReputationScore),
		zap.Int("calculated", breakdown.TotalScore))

	return breakdown, nil
}
