package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/dto"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	"github.com/ecologicaleaving/wikigaialab/internal/middleware/auth"
)

// SocialUsecase is the part of the social service the handler calls
type SocialUsecase interface {
	FollowUser(ctx context.Context, followerID, followingID uuid.UUID) (*model.UserFollow, error)
	UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) bool
	GetUserFollowers(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error)
	GetUserFollowing(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserProfile, error)
	FavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.UserFavorite, error)
	UnfavoriteProblem(ctx context.Context, userID, problemID uuid.UUID) error
	IsFavorited(ctx context.Context, userID, problemID uuid.UUID) bool
	GetUserFavorites(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error)
	CreateActivity(ctx context.Context, in dto.ActivityInput) (*model.UserActivity, error)
	GetUserActivity(ctx context.Context, userID, requesterID uuid.UUID, page entity.Page) ([]*model.UserActivity, error)
	GetActivityFeed(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserActivity, error)
}

// SocialHandler handles follow, favorite and activity requests
type SocialHandler struct {
	logger  *zap.Logger
	service SocialUsecase
}

// NewSocialHandler creates a new social handler instance
func NewSocialHandler(logger *zap.Logger, service SocialUsecase) *SocialHandler {
	return &SocialHandler{logger: logger, service: service}
}

// Follow handles POST /api/v1/users/:id/follow
func (h *SocialHandler) Follow(c echo.Context) error {
	followerID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	follow, err := h.service.FollowUser(c.Request().Context(), followerID, targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, follow)
}

// Unfollow handles DELETE /api/v1/users/:id/follow
func (h *SocialHandler) Unfollow(c echo.Context) error {
	followerID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.UnfollowUser(c.Request().Context(), followerID, targetID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// FollowStatus handles GET /api/v1/users/:id/follow
func (h *SocialHandler) FollowStatus(c echo.Context) error {
	followerID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"is_following": h.service.IsFollowing(c.Request().Context(), followerID, targetID),
	})
}

// Followers handles GET /api/v1/users/:id/followers
func (h *SocialHandler) Followers(c echo.Context) error {
	return h.listProfiles(c, h.service.GetUserFollowers)
}

// Following handles GET /api/v1/users/:id/following
func (h *SocialHandler) Following(c echo.Context) error {
	return h.listProfiles(c, h.service.GetUserFollowing)
}

func (h *SocialHandler) listProfiles(c echo.Context, list func(context.Context, uuid.UUID, uuid.UUID, entity.Page) ([]*model.UserProfile, error)) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	users, err := list(c.Request().Context(), userID, auth.ViewerID(c), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewListResponse(users, page.Limit, page.Offset))
}

// Favorite handles POST /api/v1/problems/:id/favorite
func (h *SocialHandler) Favorite(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	problemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	favorite, err := h.service.FavoriteProblem(c.Request().Context(), userID, problemID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, favorite)
}

// Unfavorite handles DELETE /api/v1/problems/:id/favorite
func (h *SocialHandler) Unfavorite(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	problemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.UnfavoriteProblem(c.Request().Context(), userID, problemID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// FavoriteStatus handles GET /api/v1/problems/:id/favorite
func (h *SocialHandler) FavoriteStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	problemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"is_favorited": h.service.IsFavorited(c.Request().Context(), userID, problemID),
	})
}

// Favorites handles GET /api/v1/users/:id/favorites
func (h *SocialHandler) Favorites(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	favorites, err := h.service.GetUserFavorites(c.Request().Context(), userID, auth.ViewerID(c), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewListResponse(favorites, page.Limit, page.Offset))
}

// CreateActivity handles POST /api/v1/activities
func (h *SocialHandler) CreateActivity(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := dto.ActivityInput{
		UserID:       userID,
		ActivityType: model.ActivityType(req.ActivityType),
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		Metadata:     req.Metadata,
	}
	if req.Visibility != nil {
		v := model.Visibility(*req.Visibility)
		in.Visibility = &v
	}

	activity, err := h.service.CreateActivity(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// UserActivity handles GET /api/v1/users/:id/activity
func (h *SocialHandler) UserActivity(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	activities, err := h.service.GetUserActivity(c.Request().Context(), userID, auth.ViewerID(c), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewListResponse(activities, page.Limit, page.Offset))
}

// Feed handles GET /api/v1/feed
func (h *SocialHandler) Feed(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	activities, err := h.service.GetActivityFeed(c.Request().Context(), userID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewListResponse(activities, page.Limit, page.Offset))
}
