package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// ReputationRepository stores scores and their history
type ReputationRepository interface {
	// ApplyDeltas adds every delta to the stored score (floored at zero) and
	// appends one history row per delta, atomically. It returns the score
	// before and after.
	ApplyDeltas(ctx context.Context, userID uuid.UUID, deltas []*model.UserReputationHistory) (before, after int, err error)

	// SumDeltas sums points_change in [from, to)
	SumDeltas(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	ListHistory(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*model.UserReputationHistory, error)
}

// BreakdownCache caches computed reputation breakdowns
type BreakdownCache interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error)
	Set(ctx context.Context, breakdown *entity.ReputationBreakdown, ttl time.Duration) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
