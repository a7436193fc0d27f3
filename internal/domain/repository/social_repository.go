package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// SocialRepository manages follow and favorite edges.
// Mutations write the edge, counters and activity rows in a single transaction.
type SocialRepository interface {
	// Follow returns false when the edge already existed; nothing is written then
	Follow(ctx context.Context, follow *model.UserFollow, activities []*model.UserActivity) (bool, error)
	// Unfollow returns false when there was no edge
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID, activity *model.UserActivity) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserProfile, error)
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Favorite returns false when the problem was already a favorite
	Favorite(ctx context.Context, favorite *model.UserFavorite, activity *model.UserActivity) (bool, error)
	Unfavorite(ctx context.Context, userID, problemID uuid.UUID) (bool, error)
	IsFavorited(ctx context.Context, userID, problemID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserFavorite, error)

	// ReconcileCounters recomputes follower/following counters from edges and
	// returns the number of corrected profiles
	ReconcileCounters(ctx context.Context) (int64, error)
}
