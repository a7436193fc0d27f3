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

// ReputationUsecase is the part of the reputation service the handler calls
type ReputationUsecase interface {
	CalculateUserReputation(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error)
	UpdateUserReputation(ctx context.Context, userID uuid.UUID, pointsChange int, reason string, relatedEntityType *string, relatedEntityID *uuid.UUID) (int, error)
	GetReputationHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error)
	RecalculateAndStore(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error)
}

// ReputationHandler serves reputation breakdowns and admin adjustments
type ReputationHandler struct {
	logger  *zap.Logger
	service ReputationUsecase
}

// NewReputationHandler creates a new reputation handler instance
func NewReputationHandler(logger *zap.Logger, service ReputationUsecase) *ReputationHandler {
	return &ReputationHandler{logger: logger, service: service}
}

// GetReputation handles GET /api/v1/users/:id/reputation
func (h *ReputationHandler) GetReputation(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	breakdown, err := h.service.CalculateUserReputation(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, breakdown)
}

// GetHistory handles GET /api/v1/users/:id/reputation/history
func (h *ReputationHandler) GetHistory(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	history, err := h.service.GetReputationHistory(c.Request().Context(), userID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewListResponse(history, page.Limit, page.Offset))
}

// Adjust handles POST /api/v1/admin/users/:id/reputation
func (h *ReputationHandler) Adjust(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AdjustReputationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	score, err := h.service.UpdateUserReputation(c.Request().Context(), userID, req.PointsChange, req.Reason, req.RelatedEntityType, req.RelatedEntityID)
	if err != nil {
		return err
	}

	h.logger.Info("Reputation adjusted by admin",
		zap.String("user_id", userID.String()),
		zap.Int("points_change", req.PointsChange),
		zap.String("reason", req.Reason),
		zap.Any("admin_id", c.Get("user_id")))

	return c.JSON(http.StatusOK, dto.AdjustReputationResponse{UserID: userID, ReputationScore: score})
}

// Recalculate handles POST /api/v1/admin/users/:id/reputation/recalculate
func (h *ReputationHandler) Recalculate(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	breakdown, err := h.service.RecalculateAndStore(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, breakdown)
}
