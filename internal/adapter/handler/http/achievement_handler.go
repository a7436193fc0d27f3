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
)

// AchievementUsecase is the part of the achievement engine the handler calls
type AchievementUsecase interface {
	CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID, activityType string, details map[string]interface{}) []entity.AwardedAchievement
	GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*model.UserAchievement, error)
	ListCatalog(ctx context.Context) ([]*model.Achievement, error)
	GetAchievementProgress(ctx context.Context, userID uuid.UUID) ([]entity.AchievementProgress, error)
}

// AchievementHandler serves the catalog, earned achievements and checks
type AchievementHandler struct {
	logger *zap.Logger
	engine AchievementUsecase
}

// NewAchievementHandler creates a new achievement handler instance
func NewAchievementHandler(logger *zap.Logger, engine AchievementUsecase) *AchievementHandler {
	return &AchievementHandler{logger: logger, engine: engine}
}

// ListCatalog handles GET /api/v1/achievements
func (h *AchievementHandler) ListCatalog(c echo.Context) error {
	achievements, err := h.engine.ListCatalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": nonNil(achievements)})
}

// UserAchievements handles GET /api/v1/users/:id/achievements
func (h *AchievementHandler) UserAchievements(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	earned, err := h.engine.GetUserAchievements(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": nonNil(earned)})
}

// Progress handles GET /api/v1/users/:id/achievements/progress
func (h *AchievementHandler) Progress(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	progress, err := h.engine.GetAchievementProgress(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": nonNil(progress)})
}

// Check handles POST /api/v1/achievements/check for the caller
func (h *AchievementHandler) Check(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CheckAchievementsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	awarded := h.engine.CheckAndAwardAchievements(c.Request().Context(), userID, req.ActivityType, req.Context)
	return c.JSON(http.StatusOK, map[string]interface{}{"awarded": nonNil(awarded)})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
