package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

type problemRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProblemRepository creates a new problem repository instance
func NewProblemRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ProblemRepository {
	return &problemRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a problem by id
func (r *problemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Problem, error) {
	var problem model.Problem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&problem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem",
			zap.String("problem_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	return &problem, nil
}
