package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatsRepository answers the aggregate queries behind achievements and reputation
type StatsRepository interface {
	CountVotes(ctx context.Context, userID uuid.UUID) (int64, error)
	CountProblems(ctx context.Context, userID uuid.UUID) (int64, error)
	CountVotesReceived(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAchievements(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountPopularProblems counts the user's problems with at least minVotes votes
	CountPopularProblems(ctx context.Context, userID uuid.UUID, minVotes int) (int64, error)

	// CountEarlyVotes counts the user's votes on problems that reached minVotes
	// where at most maxPrior votes, theirs included, were cast at or before theirs
	CountEarlyVotes(ctx context.Context, userID uuid.UUID, minVotes, maxPrior int) (int64, error)

	// CountVotedCategories counts distinct categories of problems the user voted on
	CountVotedCategories(ctx context.Context, userID uuid.UUID) (int64, error)

	// ActivityTimestamps returns created_at of the user's activities since the given time
	ActivityTimestamps(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}
