package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/dto"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

type socialFixture struct {
	users       *MockUserRepository
	social      *MockSocialRepository
	activities  *MockActivityRepository
	problems    *MockProblemRepository
	checker     *MockAchievementChecker
	notifier    *MockNotifier
	broadcaster *MockBroadcaster
	service     *usecase.SocialService
}

func newSocialFixture() *socialFixture {
	f := &socialFixture{
		users:       new(MockUserRepository),
		social:      new(MockSocialRepository),
		activities:  new(MockActivityRepository),
		problems:    new(MockProblemRepository),
		checker:     new(MockAchievementChecker),
		notifier:    new(MockNotifier),
		broadcaster: new(MockBroadcaster),
	}
	f.service = usecase.NewSocialService(f.users, f.social, f.activities, f.problems, f.checker, f.notifier, f.broadcaster, zap.NewNop())
	return f
}

func TestSocialService_FollowUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful follow", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		follower := newUser(followerID)
		follower.ActivityVisibility = model.VisibilityFollowersOnly
		target := newUser(targetID)

		f.users.On("GetByID", ctx, targetID).Return(target, nil)
		f.users.On("GetByID", ctx, followerID).Return(follower, nil)
		f.social.On("IsFollowing", ctx, followerID, targetID).Return(false, nil)
		f.social.On("Follow", ctx, mock.AnythingOfType("*model.UserFollow"), mock.MatchedBy(func(a []*model.UserActivity) bool {
			return len(a) == 2 &&
				a[0].UserID == followerID && a[0].ActivityType == model.ActivityFollowedUser && a[0].Visibility == model.VisibilityFollowersOnly &&
				a[1].UserID == targetID && a[1].ActivityType == model.ActivityGainedFollower && a[1].Visibility == model.VisibilityFollowersOnly
		})).Return(true, nil)
		f.notifier.On("SendFollowNotification", ctx, followerID, targetID).Return(nil)
		f.checker.On("CheckAndAwardAchievements", ctx, followerID, string(model.ActivityFollowedUser), mock.Anything).Return(nil)
		f.checker.On("CheckAndAwardAchievements", ctx, targetID, string(model.ActivityGainedFollower), mock.Anything).Return(nil)
		f.broadcaster.On("Broadcast", ctx, interfaces.UserChannel(targetID), mock.MatchedBy(func(e entity.RealtimeEvent) bool {
			return e.Type == entity.EventNewFollower
		})).Return(nil)
		f.broadcaster.On("Broadcast", ctx, interfaces.UserChannel(followerID), mock.MatchedBy(func(e entity.RealtimeEvent) bool {
			return e.Type == entity.EventFollowed
		})).Return(errors.New("redis down"))

		follow, err := f.service.FollowUser(ctx, followerID, targetID)

		require.NoError(t, err)
		assert.Equal(t, followerID, follow.FollowerID)
		assert.Equal(t, targetID, follow.FollowingID)
		f.social.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
		f.checker.AssertExpectations(t)
		f.broadcaster.AssertExpectations(t)
	})

	t.Run("cannot follow yourself", func(t *testing.T) {
		f := newSocialFixture()
		id := uuid.New()

		_, err := f.service.FollowUser(ctx, id, id)

		assert.ErrorIs(t, err, domainErrors.ErrCannotFollowSelf)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("missing target", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.users.On("GetByID", ctx, targetID).Return(nil, nil)

		_, err := f.service.FollowUser(ctx, followerID, targetID)

		assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
	})

	t.Run("target disallows follows", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		target := newUser(targetID)
		target.AllowFollows = false
		f.users.On("GetByID", ctx, targetID).Return(target, nil)

		_, err := f.service.FollowUser(ctx, followerID, targetID)

		assert.ErrorIs(t, err, domainErrors.ErrFollowsNotAllowed)
		assert.Equal(t, "User does not allow followers", err.Error())
	})

	t.Run("already following", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.users.On("GetByID", ctx, targetID).Return(newUser(targetID), nil)
		f.users.On("GetByID", ctx, followerID).Return(newUser(followerID), nil)
		f.social.On("IsFollowing", ctx, followerID, targetID).Return(true, nil)

		_, err := f.service.FollowUser(ctx, followerID, targetID)

		assert.ErrorIs(t, err, domainErrors.ErrAlreadyFollowing)
		f.social.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost insert race is a conflict", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.users.On("GetByID", ctx, targetID).Return(newUser(targetID), nil)
		f.users.On("GetByID", ctx, followerID).Return(newUser(followerID), nil)
		f.social.On("IsFollowing", ctx, followerID, targetID).Return(false, nil)
		f.social.On("Follow", ctx, mock.Anything, mock.Anything).Return(false, nil)

		_, err := f.service.FollowUser(ctx, followerID, targetID)

		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
		f.notifier.AssertNotCalled(t, "SendFollowNotification", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.users.On("GetByID", ctx, targetID).Return(newUser(targetID), nil)
		f.users.On("GetByID", ctx, followerID).Return(newUser(followerID), nil)
		f.social.On("IsFollowing", ctx, followerID, targetID).Return(false, nil)
		f.social.On("Follow", ctx, mock.Anything, mock.Anything).Return(false, errors.New("deadlock"))

		_, err := f.service.FollowUser(ctx, followerID, targetID)

		assert.True(t, apperrors.HasCode(err, apperrors.ErrInternal))
	})
}

func TestSocialService_UnfollowUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful unfollow", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.social.On("Unfollow", ctx, followerID, targetID, mock.MatchedBy(func(a *model.UserActivity) bool {
			return a.ActivityType == model.ActivityUnfollowedUser && a.Visibility == model.VisibilityPrivate
		})).Return(true, nil)
		f.broadcaster.On("Broadcast", ctx, interfaces.UserChannel(followerID), mock.Anything).Return(nil)

		err := f.service.UnfollowUser(ctx, followerID, targetID)

		require.NoError(t, err)
		f.social.AssertExpectations(t)
	})

	t.Run("not following", func(t *testing.T) {
		f := newSocialFixture()
		followerID, targetID := uuid.New(), uuid.New()
		f.social.On("Unfollow", ctx, followerID, targetID, mock.Anything).Return(false, nil)

		err := f.service.UnfollowUser(ctx, followerID, targetID)

		assert.ErrorIs(t, err, domainErrors.ErrNotFollowing)
	})
}

func TestSocialService_IsFollowing(t *testing.T) {
	ctx := context.Background()
	f := newSocialFixture()
	a, b := uuid.New(), uuid.New()

	f.social.On("IsFollowing", ctx, a, b).Return(true, nil)
	f.social.On("IsFollowing", ctx, b, a).Return(false, errors.New("db down"))

	assert.True(t, f.service.IsFollowing(ctx, a, b))
	assert.False(t, f.service.IsFollowing(ctx, b, a))
	assert.False(t, f.service.IsFollowing(ctx, uuid.Nil, a))
}

func TestSocialService_Visibility(t *testing.T) {
	ctx := context.Background()
	ownerID, followerID, strangerID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name       string
		visibility model.Visibility
		viewer     uuid.UUID
		expected   bool
	}{
		{"public profile, anonymous viewer", model.VisibilityPublic, uuid.Nil, true},
		{"private profile, owner", model.VisibilityPrivate, ownerID, true},
		{"private profile, follower", model.VisibilityPrivate, followerID, false},
		{"followers only, follower", model.VisibilityFollowersOnly, followerID, true},
		{"followers only, stranger", model.VisibilityFollowersOnly, strangerID, false},
		{"followers only, anonymous", model.VisibilityFollowersOnly, uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSocialFixture()
			owner := newUser(ownerID)
			owner.ProfileVisibility = tt.visibility
			owner.ActivityVisibility = tt.visibility

			f.users.On("GetByID", ctx, ownerID).Return(owner, nil)
			f.social.On("IsFollowing", ctx, followerID, ownerID).Return(true, nil)
			f.social.On("IsFollowing", ctx, strangerID, ownerID).Return(false, nil)

			assert.Equal(t, tt.expected, f.service.CanViewUserProfile(ctx, ownerID, tt.viewer))
			assert.Equal(t, tt.expected, f.service.CanViewUserActivity(ctx, ownerID, tt.viewer))
		})
	}

	t.Run("missing user is not viewable", func(t *testing.T) {
		f := newSocialFixture()
		f.users.On("GetByID", ctx, ownerID).Return(nil, nil)

		assert.False(t, f.service.CanViewUserProfile(ctx, ownerID, strangerID))
	})
}

func TestSocialService_GetUserFollowers(t *testing.T) {
	ctx := context.Background()
	ownerID, viewerID := uuid.New(), uuid.New()

	t.Run("strips private emails", func(t *testing.T) {
		f := newSocialFixture()
		follower := newUser(uuid.New())
		follower.Email = "hidden@example.org"
		public := newUser(uuid.New())
		public.Email = "shown@example.org"
		public.EmailVisibility = model.VisibilityPublic

		f.users.On("GetByID", ctx, ownerID).Return(newUser(ownerID), nil)
		f.social.On("ListFollowers", ctx, ownerID, entity.Page{Limit: 20}).Return([]*model.UserProfile{follower, public}, nil)

		users, err := f.service.GetUserFollowers(ctx, ownerID, viewerID, entity.Page{})

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Empty(t, users[0].Email)
		assert.Equal(t, "shown@example.org", users[1].Email)
		assert.Equal(t, "hidden@example.org", follower.Email)
	})

	t.Run("private profile yields empty list", func(t *testing.T) {
		f := newSocialFixture()
		owner := newUser(ownerID)
		owner.ProfileVisibility = model.VisibilityPrivate
		f.users.On("GetByID", ctx, ownerID).Return(owner, nil)

		users, err := f.service.GetUserFollowing(ctx, ownerID, viewerID, entity.Page{})

		require.NoError(t, err)
		assert.Empty(t, users)
		f.social.AssertNotCalled(t, "ListFollowing", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSocialService_FavoriteProblem(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the proposer", func(t *testing.T) {
		f := newSocialFixture()
		userID, proposerID, problemID := uuid.New(), uuid.New(), uuid.New()
		problem := &model.Problem{ID: problemID, ProposerID: proposerID, Title: "Plastica nei fiumi"}

		f.problems.On("GetByID", ctx, problemID).Return(problem, nil)
		f.users.On("GetByID", ctx, userID).Return(newUser(userID), nil)
		f.social.On("Favorite", ctx, mock.AnythingOfType("*model.UserFavorite"), mock.MatchedBy(func(a *model.UserActivity) bool {
			return a.ActivityType == model.ActivityFavoritedProblem && *a.EntityID == problemID
		})).Return(true, nil)
		f.notifier.On("SendProblemFavoritedNotification", ctx, proposerID, userID, problemID).Return(nil)
		f.checker.On("CheckAndAwardAchievements", ctx, userID, string(model.ActivityFavoritedProblem), mock.Anything).Return(nil)

		favorite, err := f.service.FavoriteProblem(ctx, userID, problemID)

		require.NoError(t, err)
		assert.Equal(t, problem, favorite.Problem)
		f.notifier.AssertExpectations(t)
		f.checker.AssertExpectations(t)
	})

	t.Run("own problem skips notification", func(t *testing.T) {
		f := newSocialFixture()
		userID, problemID := uuid.New(), uuid.New()

		f.problems.On("GetByID", ctx, problemID).Return(&model.Problem{ID: problemID, ProposerID: userID}, nil)
		f.users.On("GetByID", ctx, userID).Return(newUser(userID), nil)
		f.social.On("Favorite", ctx, mock.Anything, mock.Anything).Return(true, nil)
		f.checker.On("CheckAndAwardAchievements", ctx, userID, mock.Anything, mock.Anything).Return(nil)

		_, err := f.service.FavoriteProblem(ctx, userID, problemID)

		require.NoError(t, err)
		f.notifier.AssertNotCalled(t, "SendProblemFavoritedNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing problem", func(t *testing.T) {
		f := newSocialFixture()
		userID, problemID := uuid.New(), uuid.New()
		f.problems.On("GetByID", ctx, problemID).Return(nil, nil)

		_, err := f.service.FavoriteProblem(ctx, userID, problemID)

		assert.ErrorIs(t, err, domainErrors.ErrProblemNotFound)
	})

	t.Run("already favorited", func(t *testing.T) {
		f := newSocialFixture()
		userID, problemID := uuid.New(), uuid.New()
		f.problems.On("GetByID", ctx, problemID).Return(&model.Problem{ID: problemID, ProposerID: uuid.New()}, nil)
		f.users.On("GetByID", ctx, userID).Return(newUser(userID), nil)
		f.social.On("Favorite", ctx, mock.Anything, mock.Anything).Return(false, nil)

		_, err := f.service.FavoriteProblem(ctx, userID, problemID)

		assert.ErrorIs(t, err, domainErrors.ErrAlreadyFavorited)
	})
}

func TestSocialService_UnfavoriteProblem(t *testing.T) {
	ctx := context.Background()
	f := newSocialFixture()
	userID, problemID, other := uuid.New(), uuid.New(), uuid.New()

	f.social.On("Unfavorite", ctx, userID, problemID).Return(true, nil)
	f.social.On("Unfavorite", ctx, userID, other).Return(false, nil)

	assert.NoError(t, f.service.UnfavoriteProblem(ctx, userID, problemID))
	assert.ErrorIs(t, f.service.UnfavoriteProblem(ctx, userID, other), domainErrors.ErrNotFavorited)
}

func TestSocialService_CreateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("uses default visibility and fires milestone", func(t *testing.T) {
		f := newSocialFixture()
		userID := uuid.New()
		user := newUser(userID)
		user.ActivityVisibility = model.VisibilityFollowersOnly

		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *model.UserActivity) bool {
			return a.Visibility == model.VisibilityFollowersOnly && a.ActivityType == model.ActivityVoteCast
		})).Return(nil)
		f.activities.On("CountByType", ctx, userID, model.ActivityVoteCast).Return(int64(10), nil)
		f.notifier.On("SendActivityMilestoneNotification", ctx, userID, model.ActivityVoteCast, int64(10)).Return(nil)

		activity, err := f.service.CreateActivity(ctx, dto.ActivityInput{
			UserID:       userID,
			ActivityType: model.ActivityVoteCast,
			Metadata:     map[string]interface{}{"problem_id": "p1"},
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{"problem_id":"p1"}`, string(activity.Metadata))
		f.notifier.AssertExpectations(t)
	})

	t.Run("override visibility without milestone", func(t *testing.T) {
		f := newSocialFixture()
		userID := uuid.New()
		private := model.VisibilityPrivate

		f.users.On("GetByID", ctx, userID).Return(newUser(userID), nil)
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *model.UserActivity) bool {
			return a.Visibility == model.VisibilityPrivate
		})).Return(nil)
		f.activities.On("CountByType", ctx, userID, model.ActivityProfileUpdated).Return(int64(11), nil)

		_, err := f.service.CreateActivity(ctx, dto.ActivityInput{UserID: userID, ActivityType: model.ActivityProfileUpdated, Visibility: &private})

		require.NoError(t, err)
		f.notifier.AssertNotCalled(t, "SendActivityMilestoneNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects types written by the service", func(t *testing.T) {
		for _, reserved := range []model.ActivityType{
			model.ActivityAchievementEarned,
			model.ActivityGainedFollower,
			model.ActivityFollowedUser,
			model.ActivityUnfollowedUser,
			model.ActivityFavoritedProblem,
		} {
			f := newSocialFixture()

			_, err := f.service.CreateActivity(ctx, dto.ActivityInput{UserID: uuid.New(), ActivityType: reserved})

			assert.ErrorIs(t, err, domainErrors.ErrReservedActivityType, string(reserved))
			f.activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("invalid visibility", func(t *testing.T) {
		f := newSocialFixture()
		bogus := model.Visibility("everyone")

		_, err := f.service.CreateActivity(ctx, dto.ActivityInput{UserID: uuid.New(), ActivityType: model.ActivityVoteCast, Visibility: &bogus})

		assert.ErrorIs(t, err, domainErrors.ErrInvalidVisibility)
	})
}

func TestSocialService_GetUserActivity(t *testing.T) {
	ctx := context.Background()
	ownerID, followerID, strangerID := uuid.New(), uuid.New(), uuid.New()
	page := entity.Page{Limit: 20}

	all := []model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly, model.VisibilityPrivate}
	followers := []model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly}
	public := []model.Visibility{model.VisibilityPublic}

	tests := []struct {
		name         string
		viewer       uuid.UUID
		visibilities []model.Visibility
	}{
		{"owner sees everything", ownerID, all},
		{"follower sees followers only entries", followerID, followers},
		{"stranger sees public entries", strangerID, public},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSocialFixture()
			entries := []*model.UserActivity{{UserID: ownerID, ActivityType: model.ActivityVoteCast}}

			f.users.On("GetByID", ctx, ownerID).Return(newUser(ownerID), nil)
			f.social.On("IsFollowing", ctx, followerID, ownerID).Return(true, nil)
			f.social.On("IsFollowing", ctx, strangerID, ownerID).Return(false, nil)
			f.activities.On("ListByUser", ctx, ownerID, tt.visibilities, page).Return(entries, nil)

			result, err := f.service.GetUserActivity(ctx, ownerID, tt.viewer, entity.Page{})

			require.NoError(t, err)
			assert.Equal(t, entries, result)
			f.activities.AssertExpectations(t)
		})
	}
}

func TestSocialService_GetUserActivity_PrivateProfile(t *testing.T) {
	ctx := context.Background()
	ownerID, followerID := uuid.New(), uuid.New()
	owner := newUser(ownerID)
	owner.ProfileVisibility = model.VisibilityPrivate

	f := newSocialFixture()
	f.users.On("GetByID", ctx, ownerID).Return(owner, nil)
	f.social.On("IsFollowing", ctx, followerID, ownerID).Return(true, nil)

	result, err := f.service.GetUserActivity(ctx, ownerID, followerID, entity.Page{})

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.False(t, f.service.CanViewUserActivity(ctx, ownerID, followerID))
	f.activities.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSocialService_GetActivityFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("includes self and followed users", func(t *testing.T) {
		f := newSocialFixture()
		userID, a, b := uuid.New(), uuid.New(), uuid.New()
		entries := []*model.UserActivity{{UserID: a}, {UserID: userID}}

		f.social.On("FollowingIDs", ctx, userID).Return([]uuid.UUID{a, b}, nil)
		f.users.On("GetByIDs", ctx, []uuid.UUID{a, b}).Return([]*model.UserProfile{newUser(a), newUser(b)}, nil)
		f.activities.On("ListFeed", ctx, []uuid.UUID{userID, a, b},
			[]model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly}, entity.Page{Limit: 10}).Return(entries, nil)

		feed, err := f.service.GetActivityFeed(ctx, userID, entity.Page{Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, entries, feed)
	})

	t.Run("skips followed users with private profile or activity", func(t *testing.T) {
		f := newSocialFixture()
		userID, open, privateActivity, privateProfile := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		hidden := newUser(privateActivity)
		hidden.ActivityVisibility = model.VisibilityPrivate
		locked := newUser(privateProfile)
		locked.ProfileVisibility = model.VisibilityPrivate
		followersOnly := newUser(open)
		followersOnly.ActivityVisibility = model.VisibilityFollowersOnly
		followed := []uuid.UUID{open, privateActivity, privateProfile}

		f.social.On("FollowingIDs", ctx, userID).Return(followed, nil)
		f.users.On("GetByIDs", ctx, followed).Return([]*model.UserProfile{followersOnly, hidden, locked}, nil)
		f.activities.On("ListFeed", ctx, []uuid.UUID{userID, open},
			[]model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly}, entity.Page{Limit: 20}).
			Return([]*model.UserActivity{{UserID: open}}, nil)

		feed, err := f.service.GetActivityFeed(ctx, userID, entity.Page{})

		require.NoError(t, err)
		assert.Len(t, feed, 1)
		f.activities.AssertExpectations(t)
	})

	t.Run("profile lookup failure yields empty feed", func(t *testing.T) {
		f := newSocialFixture()
		userID, a := uuid.New(), uuid.New()
		f.social.On("FollowingIDs", ctx, userID).Return([]uuid.UUID{a}, nil)
		f.users.On("GetByIDs", ctx, []uuid.UUID{a}).Return([]*model.UserProfile(nil), errors.New("db down"))

		feed, err := f.service.GetActivityFeed(ctx, userID, entity.Page{})

		require.NoError(t, err)
		assert.Empty(t, feed)
		f.activities.AssertNotCalled(t, "ListFeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure yields empty feed", func(t *testing.T) {
		f := newSocialFixture()
		userID := uuid.New()
		f.social.On("FollowingIDs", ctx, userID).Return(nil, errors.New("db down"))

		feed, err := f.service.GetActivityFeed(ctx, userID, entity.Page{})

		require.NoError(t, err)
		assert.Empty(t, feed)
	})
}
