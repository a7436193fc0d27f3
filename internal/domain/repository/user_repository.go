package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// UserRepository reads user profiles
type UserRepository interface {
	// GetByID returns nil, nil when the user does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.UserProfile, error)
}
