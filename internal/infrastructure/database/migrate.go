package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	err := db.AutoMigrate(
		&model.UserProfile{},
		&model.Problem{},
		&model.Vote{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.UserActivity{},
		&model.UserFollow{},
		&model.UserFavorite{},
		&model.UserReputationHistory{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createConstraints(db); err != nil {
		logger.Error("Failed to create constraints", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createConstraints adds checks GORM tags cannot express
func createConstraints(db *gorm.DB) error {
	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_user_follows_not_self')`).Scan(&exists).Error; err != nil {
		return err
	}
	if !exists {
		if err := db.Exec(`ALTER TABLE user_follows ADD CONSTRAINT chk_user_follows_not_self CHECK (follower_id <> following_id)`).Error; err != nil {
			return err
		}
	}
	return nil
}

// createCustomIndexes creates indexes for the feed and streak queries
func createCustomIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_user_activities_feed ON user_activities (user_id, created_at DESC) WHERE visibility IN ('public', 'followers_only')`,
		`CREATE INDEX IF NOT EXISTS idx_user_achievements_earned ON user_achievements (user_id, earned_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_active ON achievements (category, points) WHERE is_active`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
