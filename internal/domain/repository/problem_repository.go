package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// ProblemRepository reads problems owned by the wider platform
type ProblemRepository interface {
	// GetByID returns nil, nil when the problem does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*model.Problem, error)
}
