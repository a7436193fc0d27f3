package database

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/adapter/repository"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	User        domainRepo.UserRepository
	Problem     domainRepo.ProblemRepository
	Stats       domainRepo.StatsRepository
	Achievement domainRepo.AchievementRepository
	Activity    domainRepo.ActivityRepository
	Social      domainRepo.SocialRepository
	Reputation  domainRepo.ReputationRepository
	// Breakdowns is nil when no Redis client is configured
	Breakdowns domainRepo.BreakdownCache
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *Repositories {
	repos := &Repositories{
		User:        repository.NewUserRepository(db, logger),
		Problem:     repository.NewProblemRepository(db, logger),
		Stats:       repository.NewStatsRepository(db, logger),
		Achievement: repository.NewAchievementRepository(db, logger),
		Activity:    repository.NewActivityRepository(db, logger),
		Social:      repository.NewSocialRepository(db, logger),
		Reputation:  repository.NewReputationRepository(db, logger),
	}
	if redisClient != nil {
		repos.Breakdowns = repository.NewBreakdownCache(redisClient, logger)
	}
	return repos
}
