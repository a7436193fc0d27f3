package http

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/dto"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

type MockSocialUsecase struct {
	mock.Mock
}

func (m *MockSocialUsecase) FollowUser(ctx context.Context, followerID, followingID uuid.UUID) (*model.UserFollow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserFollow), args.Error(1)
}

func (m *MockSocialUsecase) UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockSocialUsecase) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) bool {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0)
}

func (m *MockSocialUsecase) GetUserFollowers(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	args := m.Called(ctx, userID, requesterID, page)
	return args.Get(0).([]*model.UserProfile), args.Error(1)
}

func (m *MockSocialUsecase) GetUserFollowing(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	args := m.Called(ctx, userID, requesterID, page)
	return args.Get(0).([]*model.UserProfile), args.Error(1)
}

func (m *MockSocialUsecase) FavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.UserFavorite, error) {
	args := m.Called(ctx, userID, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserFavorite), args.Error(1)
}

func (m *MockSocialUsecase) UnfavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) error {
	args := m.Called(ctx, userID, problemID)
	return args.Error(0)
}

func (m *MockSocialUsecase) IsFavorited(ctx context.Context, userID, problemID uuid.UUID) bool {
	args := m.Called(ctx, userID, problemID)
	return args.Bool(0)
}

func (m *MockSocialUsecase) GetUserFavorites(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error) {
	args := m.Called(ctx, userID, requesterID, page)
	return args.Get(0).([]*model.UserFavorite), args.Error(1)
}

func (m *MockSocialUsecase) CreateActivity(ctx context.Context, in dto.ActivityInput) (*model.UserActivity, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserActivity), args.Error(1)
}

func (m *MockSocialUsecase) GetUserActivity(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserActivity, error) {
	args := m.Called(ctx, userID, requesterID, page)
	return args.Get(0).([]*model.UserActivity), args.Error(1)
}

func (m *MockSocialUsecase) GetActivityFeed(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserActivity, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]*model.UserActivity), args.Error(1)
}

type MockReputationUsecase struct {
	mock.Mock
}

func (m *MockReputationUsecase) CalculateUserReputation(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReputationBreakdown), args.Error(1)
}

func (m *MockReputationUsecase) UpdateUserReputation(ctx context.Context, userID uuid.UUID, pointsChange int, reason string, relatedEntityType *string, relatedEntityID *uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, pointsChange, reason, relatedEntityType, relatedEntityID)
	return args.Int(0), args.Error(1)
}

func (m *MockReputationUsecase) GetReputationHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]*model.UserReputationHistory), args.Error(1)
}

func (m *MockReputationUsecase) RecalculateAndStore(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReputationBreakdown), args.Error(1)
}

type MockAchievementUsecase struct {
	mock.Mock
}

func (m *MockAchievementUsecase) CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID, activityType string, details map[string]interface{}) []entity.AwardedAchievement {
	args := m.Called(ctx, userID, activityType, details)
	return args.Get(0).([]entity.AwardedAchievement)
}

func (m *MockAchievementUsecase) GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*model.UserAchievement), args.Error(1)
}

func (m *MockAchievementUsecase) ListCatalog(ctx context.Context) ([]*model.Achievement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Achievement), args.Error(1)
}

func (m *MockAchievementUsecase) GetAchievementProgress(ctx context.Context, userID uuid.UUID) ([]entity.AchievementProgress, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.AchievementProgress), args.Error(1)
}

// fakeSubscriber hands out one unbuffered channel per subscribed name
type fakeSubscriber struct {
	mu       sync.Mutex
	channels map[string]chan messaging.Message
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{channels: make(map[string]chan messaging.Message)}
}

func (f *fakeSubscriber) Publish(context.Context, string, interface{}) error { return nil }

func (f *fakeSubscriber) Subscribe(ctx context.Context, channel string) (<-chan messaging.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan messaging.Message)
	f.channels[channel] = ch
	return ch, nil
}

func (f *fakeSubscriber) Close() error { return nil }

func (f *fakeSubscriber) channel(name string) chan messaging.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channels[name]
}
