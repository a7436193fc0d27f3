package usecase_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newUser(id uuid.UUID) *model.UserProfile {
	return &model.UserProfile{
		ID:                 id,
		DisplayName:        "Giulia",
		ProfileVisibility:  model.VisibilityPublic,
		ActivityVisibility: model.VisibilityPublic,
		EmailVisibility:    model.VisibilityPrivate,
		AllowFollows:       true,
		CreatedAt:          fixedNow.AddDate(0, -2, 0),
	}
}

type userCounts struct {
	votes, problems, votesReceived, followers, following, favorites, achievements int64
}

// stubUserStats sets up every query CollectUserStats issues
func stubUserStats(stats *MockStatsRepository, userID uuid.UUID, c userCounts, timestamps []time.Time) {
	stats.On("CountVotes", mock.Anything, userID).Return(c.votes, nil)
	stats.On("CountProblems", mock.Anything, userID).Return(c.problems, nil)
	stats.On("CountVotesReceived", mock.Anything, userID).Return(c.votesReceived, nil)
	stats.On("CountFollowers", mock.Anything, userID).Return(c.followers, nil)
	stats.On("CountFollowing", mock.Anything, userID).Return(c.following, nil)
	stats.On("CountFavorites", mock.Anything, userID).Return(c.favorites, nil)
	stats.On("CountAchievements", mock.Anything, userID).Return(c.achievements, nil)
	stats.On("ActivityTimestamps", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(timestamps, nil)
}

func catalogEntry(name, category string, points int, criteria string) *model.Achievement {
	return &model.Achievement{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Points:   points,
		Criteria: datatypes.JSON(criteria),
		IsActive: true,
	}
}
