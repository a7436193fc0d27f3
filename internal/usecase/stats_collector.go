package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/service"
)

// StatsCollector gathers the aggregates used by achievements and reputation.
// Independent queries run concurrently.
type StatsCollector struct {
	users    domainRepo.UserRepository
	stats    domainRepo.StatsRepository
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewStatsCollector creates a collector. Dates are bucketed in loc (time.Local when nil).
func NewStatsCollector(users domainRepo.UserRepository, stats domainRepo.StatsRepository, loc *time.Location, logger *zap.Logger) *StatsCollector {
	if loc == nil {
		loc = time.Local
	}
	return &StatsCollector{
		users:    users,
		stats:    stats,
		location: loc,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the time source, used by tests
func (c *StatsCollector) WithClock(now func() time.Time) *StatsCollector {
	c.now = now
	return c
}

// Location returns the time zone used for calendar days
func (c *StatsCollector) Location() *time.Location {
	return c.location
}

func (c *StatsCollector) loadUser(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	user, err := c.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return user, nil
}

func (c *StatsCollector) startOfDay(t time.Time) time.Time {
	local := t.In(c.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.location)
}

func count(dst *int, fn func() (int64, error)) func() error {
	return func() error {
		n, err := fn()
		if err != nil {
			return err
		}
		*dst = int(n)
		return nil
	}
}

// CollectUserStats loads the statistics achievement criteria are evaluated against
func (c *StatsCollector) CollectUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, *model.UserProfile, error) {
	user, err := c.loadUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := c.now()
	since := c.startOfDay(now).AddDate(0, 0, -(service.StreakWindowDays - 1))
	stats := &entity.UserStats{JoinDate: user.CreatedAt}
	var timestamps []time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(count(&stats.VoteCount, func() (int64, error) { return c.stats.CountVotes(gctx, userID) }))
	g.Go(count(&stats.ProblemCount, func() (int64, error) { return c.stats.CountProblems(gctx, userID) }))
	g.Go(count(&stats.ProblemVotesReceived, func() (int64, error) { return c.stats.CountVotesReceived(gctx, userID) }))
	g.Go(count(&stats.FollowerCount, func() (int64, error) { return c.stats.CountFollowers(gctx, userID) }))
	g.Go(count(&stats.FollowingCount, func() (int64, error) { return c.stats.CountFollowing(gctx, userID) }))
	g.Go(count(&stats.FavoriteCount, func() (int64, error) { return c.stats.CountFavorites(gctx, userID) }))
	g.Go(count(&stats.AchievementCount, func() (int64, error) { return c.stats.CountAchievements(gctx, userID) }))
	g.Go(func() error {
		ts, err := c.stats.ActivityTimestamps(gctx, userID, since)
		timestamps = ts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to collect user stats: %w", err)
	}

	stats.ProfileCompleteness = service.ProfileCompleteness(user)
	stats.ProfileComplete = stats.ProfileCompleteness >= 1
	stats.ActivityStreak = service.ActivityStreak(timestamps, now, c.location)

	return stats, user, nil
}

// CollectReputationStats loads the inputs of the reputation formula
func (c *StatsCollector) CollectReputationStats(ctx context.Context, userID uuid.UUID, w service.ReputationWeights) (*entity.ReputationStats, *model.UserProfile, error) {
	user, err := c.loadUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := c.now()
	since := c.startOfDay(now).AddDate(0, 0, -(w.ConsistencyWindowDays - 1))
	stats := &entity.ReputationStats{}
	var timestamps []time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(count(&stats.ProblemsCreated, func() (int64, error) { return c.stats.CountProblems(gctx, userID) }))
	g.Go(count(&stats.VotesGiven, func() (int64, error) { return c.stats.CountVotes(gctx, userID) }))
	g.Go(count(&stats.VotesReceived, func() (int64, error) { return c.stats.CountVotesReceived(gctx, userID) }))
	g.Go(count(&stats.Followers, func() (int64, error) { return c.stats.CountFollowers(gctx, userID) }))
	g.Go(count(&stats.PopularProblems, func() (int64, error) {
		return c.stats.CountPopularProblems(gctx, userID, w.PopularProblemThreshold)
	}))
	g.Go(count(&stats.EarlyVotes, func() (int64, error) {
		return c.stats.CountEarlyVotes(gctx, userID, w.PopularProblemThreshold, w.EarlyVoterMaxPriorVotes)
	}))
	g.Go(count(&stats.VotedCategories, func() (int64, error) { return c.stats.CountVotedCategories(gctx, userID) }))
	g.Go(func() error {
		ts, err := c.stats.ActivityTimestamps(gctx, userID, since)
		timestamps = ts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to collect reputation stats: %w", err)
	}

	stats.ActiveDays = service.DistinctDays(timestamps, c.location)
	stats.ProfileCompleteness = service.ProfileCompleteness(user)
	stats.AccountAgeDays = daysBetween(user.CreatedAt, now)

	lastSeen := user.CreatedAt
	if user.LastLoginAt != nil {
		lastSeen = *user.LastLoginAt
	}
	stats.DaysSinceLogin = daysBetween(lastSeen, now)

	c.logger.Debug("Collected reputation stats",
		zap.String("user_id", userID.String()),
		zap.Int("active_days", stats.ActiveDays),
		zap.Int("days_since_login", stats.DaysSinceLogin))

	return stats, user, nil
}

func daysBetween(from, to time.Time) int {
	if from.IsZero() || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
