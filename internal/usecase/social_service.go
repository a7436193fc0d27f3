package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/dto"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/service"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/metrics"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	apperrors "github.com/ecologicaleaving/wikigaialab/pkg/errors"
)

// SocialService manages follows, favorites and the activity log
type SocialService struct {
	users        domainRepo.UserRepository
	social       domainRepo.SocialRepository
	activities   domainRepo.ActivityRepository
	problems     domainRepo.ProblemRepository
	achievements interfaces.AchievementChecker
	notifier     interfaces.Notifier
	broadcaster  interfaces.Broadcaster
	logger       *zap.Logger
	now          func() time.Time
}

// NewSocialService creates a social service. Nil collaborators are replaced by no-ops.
func NewSocialService(
	users domainRepo.UserRepository,
	social domainRepo.SocialRepository,
	activities domainRepo.ActivityRepository,
	problems domainRepo.ProblemRepository,
	achievements interfaces.AchievementChecker,
	notifier interfaces.Notifier,
	broadcaster interfaces.Broadcaster,
	logger *zap.Logger,
) *SocialService {
	if achievements == nil {
		achievements = interfaces.NopAchievementChecker{}
	}
	if notifier == nil {
		notifier = interfaces.NopNotifier{}
	}
	if broadcaster == nil {
		broadcaster = interfaces.NopBroadcaster{}
	}
	return &SocialService{
		users:        users,
		social:       social,
		activities:   activities,
		problems:     problems,
		achievements: achievements,
		notifier:     notifier,
		broadcaster:  broadcaster,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *SocialService) getUser(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return user, nil
}

// FollowUser makes followerID follow followingID
func (s *SocialService) FollowUser(ctx context.Context, followerID, followingID uuid.UUID) (*model.UserFollow, error) {
	if followerID == followingID {
		return nil, domainErrors.ErrCannotFollowSelf
	}

	target, err := s.getUser(ctx, followingID)
	if err != nil {
		return nil, err
	}
	if !target.AllowFollows {
		return nil, domainErrors.ErrFollowsNotAllowed
	}
	follower, err := s.getUser(ctx, followerID)
	if err != nil {
		return nil, err
	}

	already, err := s.social.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return nil, apperrors.Internal("failed to check follow status", err)
	}
	if already {
		return nil, domainErrors.ErrAlreadyFollowing
	}

	now := s.now().UTC()
	userEntity := model.EntityUser
	targetID, sourceID := followingID, followerID
	follow := &model.UserFollow{FollowerID: followerID, FollowingID: followingID, CreatedAt: now}
	activities := []*model.UserActivity{
		{
			UserID:       followerID,
			ActivityType: model.ActivityFollowedUser,
			EntityType:   &userEntity,
			EntityID:     &targetID,
			Metadata:     encodeJSON(map[string]interface{}{"following_name": target.DisplayName}),
			Visibility:   follower.ActivityVisibility,
			CreatedAt:    now,
		},
		{
			UserID:       followingID,
			ActivityType: model.ActivityGainedFollower,
			EntityType:   &userEntity,
			EntityID:     &sourceID,
			Metadata:     encodeJSON(map[string]interface{}{"follower_name": follower.DisplayName}),
			Visibility:   model.VisibilityFollowersOnly,
			CreatedAt:    now,
		},
	}

	created, err := s.social.Follow(ctx, follow, activities)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to follow user",
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()))
		return nil, apperrors.Internal("failed to follow user", err)
	}
	if !created {
		return nil, domainErrors.ErrAlreadyFollowing
	}
	metrics.SocialActions.WithLabelValues("follow").Inc()

	if err := s.notifier.SendFollowNotification(ctx, followerID, followingID); err != nil {
		s.notifyFailed("follow", followingID, err)
	}

	s.achievements.CheckAndAwardAchievements(ctx, followerID, string(model.ActivityFollowedUser),
		map[string]interface{}{"following_id": followingID.String()})
	s.achievements.CheckAndAwardAchievements(ctx, followingID, string(model.ActivityGainedFollower),
		map[string]interface{}{"follower_id": followerID.String()})

	s.broadcast(ctx, followingID, entity.EventNewFollower, map[string]interface{}{
		"follower_id":   followerID,
		"follower_name": follower.DisplayName,
	})
	s.broadcast(ctx, followerID, entity.EventFollowed, map[string]interface{}{
		"following_id":   followingID,
		"following_name": target.DisplayName,
	})

	s.logger.Info("User followed",
		zap.String("follower_id", followerID.String()),
		zap.String("following_id", followingID.String()))

	return follow, nil
}

// UnfollowUser removes the follow edge
func (s *SocialService) UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	userEntity := model.EntityUser
	targetID := followingID
	activity := &model.UserActivity{
		UserID:       followerID,
		ActivityType: model.ActivityUnfollowedUser,
		EntityType:   &userEntity,
		EntityID:     &targetID,
		Visibility:   model.VisibilityPrivate,
		CreatedAt:    s.now().UTC(),
	}

	removed, err := s.social.Unfollow(ctx, followerID, followingID, activity)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to unfollow user",
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()))
		return apperrors.Internal("failed to unfollow user", err)
	}
	if !removed {
		return domainErrors.ErrNotFollowing
	}
	metrics.SocialActions.WithLabelValues("unfollow").Inc()

	s.broadcast(ctx, followerID, entity.EventUnfollowed, map[string]interface{}{"following_id": followingID})

	s.logger.Info("User unfollowed",
		zap.String("follower_id", followerID.String()),
		zap.String("following_id", followingID.String()))
	return nil
}

// IsFollowing reports whether followerID follows followingID. Lookup failures read as false.
func (s *SocialService) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) bool {
	if followerID == uuid.Nil || followerID == followingID {
		return false
	}
	following, err := s.social.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		s.logger.Warn("Failed to check follow status",
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
			zap.Error(err))
		return false
	}
	return following
}

// GetUserFollowers lists the user's followers when the requester may view the profile
func (s *SocialService) GetUserFollowers(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	if !s.CanViewUserProfile(ctx, userID, requesterID) {
		return []*model.UserProfile{}, nil
	}
	users, err := s.social.ListFollowers(ctx, userID, page.Normalize())
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to list followers", zap.String("user_id", userID.String()))
		return []*model.UserProfile{}, nil
	}
	return publicViews(users), nil
}

// GetUserFollowing lists the users followed by userID when the requester may view the profile
func (s *SocialService) GetUserFollowing(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error) {
	if !s.CanViewUserProfile(ctx, userID, requesterID) {
		return []*model.UserProfile{}, nil
	}
	users, err := s.social.ListFollowing(ctx, userID, page.Normalize())
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to list following", zap.String("user_id", userID.String()))
		return []*model.UserProfile{}, nil
	}
	return publicViews(users), nil
}

func publicViews(users []*model.UserProfile) []*model.UserProfile {
	out := make([]*model.UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, u.PublicView())
	}
	return out
}

// FavoriteProblem adds problemID to the user's favorites
func (s *SocialService) FavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.UserFavorite, error) {
	problem, err := s.problems.GetByID(ctx, problemID)
	if err != nil {
		return nil, apperrors.Internal("failed to load problem", err)
	}
	if problem == nil {
		return nil, domainErrors.ErrProblemNotFound
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	problemEntity := model.EntityProblem
	pid := problemID
	favorite := &model.UserFavorite{UserID: userID, ProblemID: problemID, CreatedAt: now}
	activity := &model.UserActivity{
		UserID:       userID,
		ActivityType: model.ActivityFavoritedProblem,
		EntityType:   &problemEntity,
		EntityID:     &pid,
		Metadata:     encodeJSON(map[string]interface{}{"problem_title": problem.Title}),
		Visibility:   user.ActivityVisibility,
		CreatedAt:    now,
	}

	created, err := s.social.Favorite(ctx, favorite, activity)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to favorite problem",
			zap.String("user_id", userID.String()),
			zap.String("problem_id", problemID.String()))
		return nil, apperrors.Internal("failed to favorite problem", err)
	}
	if !created {
		return nil, domainErrors.ErrAlreadyFavorited
	}
	metrics.SocialActions.WithLabelValues("favorite").Inc()

	if problem.ProposerID != userID {
		if err := s.notifier.SendProblemFavoritedNotification(ctx, problem.ProposerID, userID, problemID); err != nil {
			s.notifyFailed("problem_favorited", problem.ProposerID, err)
		}
	}

	s.achievements.CheckAndAwardAchievements(ctx, userID, string(model.ActivityFavoritedProblem),
		map[string]interface{}{"problem_id": problemID.String()})

	favorite.Problem = problem
	return favorite, nil
}

// UnfavoriteProblem removes problemID from the user's favorites
func (s *SocialService) UnfavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) error {
	removed, err := s.social.Unfavorite(ctx, userID, problemID)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to unfavorite problem",
			zap.String("user_id", userID.String()),
			zap.String("problem_id", problemID.String()))
		return apperrors.Internal("failed to unfavorite problem", err)
	}
	if !removed {
		return domainErrors.ErrNotFavorited
	}
	metrics.SocialActions.WithLabelValues("unfavorite").Inc()
	return nil
}

// IsFavorited reports whether the problem is among the user's favorites. Lookup failures read as false.
func (s *SocialService) IsFavorited(ctx context.Context, userID, problemID uuid.UUID) bool {
	favorited, err := s.social.IsFavorited(ctx, userID, problemID)
	if err != nil {
		s.logger.Warn("Failed to check favorite status",
			zap.String("user_id", userID.String()),
			zap.String("problem_id", problemID.String()),
			zap.Error(err))
		return false
	}
	return favorited
}

// GetUserFavorites lists favorites with their problems when the requester may view the profile
func (s *SocialService) GetUserFavorites(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error) {
	if !s.CanViewUserProfile(ctx, userID, requesterID) {
		return []*model.UserFavorite{}, nil
	}
	favorites, err := s.social.ListFavorites(ctx, userID, page.Normalize())
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to list favorites", zap.String("user_id", userID.String()))
		return []*model.UserFavorite{}, nil
	}
	return favorites, nil
}

// CreateActivity appends an entry to the user's activity log
func (s *SocialService) CreateActivity(ctx context.Context, in dto.ActivityInput) (*model.UserActivity, error) {
	if in.ActivityType == "" {
		return nil, apperrors.InvalidArgument("Activity type is required", nil)
	}
	if !in.ActivityType.ClientCreatable() {
		return nil, domainErrors.ErrReservedActivityType
	}
	if in.Visibility != nil && !in.Visibility.IsValid() {
		return nil, domainErrors.ErrInvalidVisibility
	}

	user, err := s.getUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	visibility := user.ActivityVisibility
	if in.Visibility != nil {
		visibility = *in.Visibility
	}

	activity := &model.UserActivity{
		UserID:       in.UserID,
		ActivityType: in.ActivityType,
		EntityType:   in.EntityType,
		EntityID:     in.EntityID,
		Visibility:   visibility,
		CreatedAt:    s.now().UTC(),
	}
	if in.Metadata != nil {
		activity.Metadata = encodeJSON(in.Metadata)
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		apperrors.LogError(s.logger, err, "Failed to create activity",
			zap.String("user_id", in.UserID.String()),
			zap.String("activity_type", string(in.ActivityType)))
		return nil, apperrors.Internal("failed to create activity", err)
	}

	count, err := s.activities.CountByType(ctx, in.UserID, in.ActivityType)
	if err != nil {
		s.logger.Warn("Failed to count activities",
			zap.String("user_id", in.UserID.String()),
			zap.Error(err))
	} else if service.IsActivityMilestone(count) {
		if err := s.notifier.SendActivityMilestoneNotification(ctx, in.UserID, in.ActivityType, count); err != nil {
			s.notifyFailed("activity_milestone", in.UserID, err)
		}
	}

	return activity, nil
}

// GetUserActivity returns the entries of userID visible to requesterID
func (s *SocialService) GetUserActivity(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserActivity, error) {
	if !s.CanViewUserActivity(ctx, userID, requesterID) {
		return []*model.UserActivity{}, nil
	}

	visibilities := []model.Visibility{model.VisibilityPublic}
	switch {
	case requesterID == userID:
		visibilities = []model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly, model.VisibilityPrivate}
	case s.IsFollowing(ctx, requesterID, userID):
		visibilities = []model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly}
	}

	activities, err := s.activities.ListByUser(ctx, userID, visibilities, page.Normalize())
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to list user activity", zap.String("user_id", userID.String()))
		return []*model.UserActivity{}, nil
	}
	return activities, nil
}

// GetActivityFeed returns recent activity of the user and everyone they follow
func (s *SocialService) GetActivityFeed(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserActivity, error) {
	ids, err := s.social.FollowingIDs(ctx, userID)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to load followed users", zap.String("user_id", userID.String()))
		return []*model.UserActivity{}, nil
	}
	ids, err = s.feedAuthors(ctx, ids)
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to load followed profiles", zap.String("user_id", userID.String()))
		return []*model.UserActivity{}, nil
	}
	ids = append([]uuid.UUID{userID}, ids...)

	visibilities := []model.Visibility{model.VisibilityPublic, model.VisibilityFollowersOnly}
	feed, err := s.activities.ListFeed(ctx, ids, visibilities, page.Normalize())
	if err != nil {
		apperrors.LogError(s.logger, err, "Failed to load activity feed", zap.String("user_id", userID.String()))
		return []*model.UserActivity{}, nil
	}
	return feed, nil
}

// feedAuthors keeps the followed users whose profile and activity are visible to followers
func (s *SocialService) feedAuthors(ctx context.Context, followed []uuid.UUID) ([]uuid.UUID, error) {
	if len(followed) == 0 {
		return followed, nil
	}
	profiles, err := s.users.GetByIDs(ctx, followed)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		if p.ProfileVisibility == model.VisibilityPrivate || p.ActivityVisibility == model.VisibilityPrivate {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// CanViewUserProfile applies the target's profile visibility. uuid.Nil is an anonymous viewer.
func (s *SocialService) CanViewUserProfile(ctx context.Context, targetID, viewerID uuid.UUID) bool {
	return s.canView(ctx, targetID, viewerID, func(u *model.UserProfile) model.Visibility { return u.ProfileVisibility })
}

// CanViewUserActivity applies both the target's profile and activity visibility.
// uuid.Nil is an anonymous viewer.
func (s *SocialService) CanViewUserActivity(ctx context.Context, targetID, viewerID uuid.UUID) bool {
	return s.canView(ctx, targetID, viewerID,
		func(u *model.UserProfile) model.Visibility { return u.ProfileVisibility },
		func(u *model.UserProfile) model.Visibility { return u.ActivityVisibility })
}

func (s *SocialService) canView(ctx context.Context, targetID, viewerID uuid.UUID, visibilityOf ...func(*model.UserProfile) model.Visibility) bool {
	if viewerID != uuid.Nil && viewerID == targetID {
		return true
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		s.logger.Warn("Failed to load user for visibility check",
			zap.String("user_id", targetID.String()),
			zap.Error(err))
		return false
	}
	if target == nil {
		return false
	}

	followersOnly := false
	for _, of := range visibilityOf {
		switch of(target) {
		case model.VisibilityPublic:
		case model.VisibilityFollowersOnly:
			followersOnly = true
		default:
			return false
		}
	}
	if followersOnly {
		return s.IsFollowing(ctx, viewerID, targetID)
	}
	return true
}

func (s *SocialService) broadcast(ctx context.Context, userID uuid.UUID, eventType string, payload interface{}) {
	event := entity.RealtimeEvent{Type: eventType, Payload: payload, Timestamp: s.now().UTC()}
	if err := s.broadcaster.Broadcast(ctx, interfaces.UserChannel(userID), event); err != nil {
		metrics.NotificationFailures.WithLabelValues("broadcast").Inc()
		s.logger.Warn("Failed to broadcast event",
			zap.String("user_id", userID.String()),
			zap.String("event", eventType),
			zap.Error(err))
	}
}

func (s *SocialService) notifyFailed(kind string, userID uuid.UUID, err error) {
	metrics.NotificationFailures.WithLabelValues(kind).Inc()
	s.logger.Warn("Failed to send notification",
		zap.String("kind", kind),
		zap.String("user_id", userID.String()),
		zap.Error(err))
}
