package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.UserProfile, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*model.UserProfile), args.Error(1)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountVotes(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountProblems(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountVotesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountAchievements(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountPopularProblems(ctx context.Context, userID uuid.UUID, minVotes int) (int64, error) {
	args := m.Called(ctx, userID, minVotes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountEarlyVotes(ctx context.Context, userID uuid.UUID, minVotes, maxPrior int) (int64, error) {
	args := m.Called(ctx, userID, minVotes, maxPrior)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountVotedCategories(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) ActivityTimestamps(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockAchievementRepository is a mock implementation of AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) ListActive(ctx context.Context) ([]*model.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) ListUnearned(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) ListEarned(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserAchievement), args.Error(1)
}

func (m *MockAchievementRepository) Award(ctx context.Context, award *model.UserAchievement, activity *model.UserActivity) (bool, error) {
	args := m.Called(ctx, award, activity)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) UpsertCatalog(ctx context.Context, achievement *model.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

// MockSocialRepository is a mock implementation of SocialRepository
type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) Follow(ctx context.Context, follow *model.UserFollow, activities []*model.UserActivity) (bool, error) {
	args := m.Called(ctx, follow, activities)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID, activity *model.UserActivity) (bool, error) {
	args := m.Called(ctx, followerID, followingID, activity)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) ListFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserProfile), args.Error(1)
}

func (m *MockSocialRepository) ListFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserProfile), args.Error(1)
}

func (m *MockSocialRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockSocialRepository) Favorite(ctx context.Context, favorite *model.UserFavorite, activity *model.UserActivity) (bool, error) {
	args := m.Called(ctx, favorite, activity)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) Unfavorite(ctx context.Context, userID, problemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, problemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) IsFavorited(ctx context.Context, userID, problemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, problemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) ListFavorites(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserFavorite), args.Error(1)
}

func (m *MockSocialRepository) ReconcileCounters(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.UserActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error) {
	args := m.Called(ctx, userID, visibilities, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserActivity), args.Error(1)
}

func (m *MockActivityRepository) ListFeed(ctx context.Context, userIDs []uuid.UUID, visibilities []model.Visibility, page entity.Page) ([]*model.UserActivity, error) {
	args := m.Called(ctx, userIDs, visibilities, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserActivity), args.Error(1)
}

func (m *MockActivityRepository) CountByType(ctx context.Context, userID uuid.UUID, activityType model.ActivityType) (int64, error) {
	args := m.Called(ctx, userID, activityType)
	return args.Get(0).(int64), args.Error(1)
}

// MockReputationRepository is a mock implementation of ReputationRepository
type MockReputationRepository struct {
	mock.Mock
}

func (m *MockReputationRepository) ApplyDeltas(ctx context.Context, userID uuid.UUID, deltas []*model.UserReputationHistory) (int, int, error) {
	args := m.Called(ctx, userID, deltas)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockReputationRepository) SumDeltas(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockReputationRepository) ListHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserReputationHistory), args.Error(1)
}

// MockBreakdownCache is a mock implementation of BreakdownCache
type MockBreakdownCache struct {
	mock.Mock
}

func (m *MockBreakdownCache) Get(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReputationBreakdown), args.Error(1)
}

func (m *MockBreakdownCache) Set(ctx context.Context, breakdown *entity.ReputationBreakdown, ttl time.Duration) error {
	args := m.Called(ctx, breakdown, ttl)
	return args.Error(0)
}

func (m *MockBreakdownCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockProblemRepository is a mock implementation of ProblemRepository
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Problem), args.Error(1)
}

// MockNotifier records notification calls
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendFollowNotification(ctx context.Context, followerID, followingID uuid.UUID) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockNotifier) SendAchievementNotification(ctx context.Context, userID uuid.UUID, achievement entity.AwardedAchievement) error {
	args := m.Called(ctx, userID, achievement)
	return args.Error(0)
}

func (m *MockNotifier) SendProblemFavoritedNotification(ctx context.Context, proposerID, userID, problemID uuid.UUID) error {
	args := m.Called(ctx, proposerID, userID, problemID)
	return args.Error(0)
}

func (m *MockNotifier) SendReputationMilestoneNotification(ctx context.Context, userID uuid.UUID, milestone, score int) error {
	args := m.Called(ctx, userID, milestone, score)
	return args.Error(0)
}

func (m *MockNotifier) SendActivityMilestoneNotification(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, count int64) error {
	args := m.Called(ctx, userID, activityType, count)
	return args.Error(0)
}

// MockBroadcaster records realtime broadcasts
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(ctx context.Context, channel string, event entity.RealtimeEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}

// MockAchievementChecker records achievement re-checks
type MockAchievementChecker struct {
	mock.Mock
}

func (m *MockAchievementChecker) CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID, activityType string, details map[string]interface{}) []entity.AwardedAchievement {
	args := m.Called(ctx, userID, activityType, details)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]entity.AwardedAchievement)
}

// MockPointsAwarder records reputation grants
type MockPointsAwarder struct {
	mock.Mock
}

func (m *MockPointsAwarder) AwardPoints(ctx context.Context, userID uuid.UUID, grants []entity.PointsGrant) (int, error) {
	args := m.Called(ctx, userID, grants)
	return args.Int(0), args.Error(1)
}
