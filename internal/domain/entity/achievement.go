package entity

import (
	"time"

	"github.com/google/uuid"
)

// AwardedAchievement is returned for each achievement granted by a check
type AwardedAchievement struct {
	AchievementID uuid.UUID `json:"achievement_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Points        int       `json:"points"`
	Icon          string    `json:"icon,omitempty"`
	EarnedAt      time.Time `json:"earned_at"`
}

// AchievementProgress describes how close a user is to an unearned achievement
type AchievementProgress struct {
	AchievementID uuid.UUID `json:"achievement_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Points        int       `json:"points"`
	Current       int       `json:"current"`
	Target        int       `json:"target"`
	Percent       int       `json:"percent"`
}

// CatalogEntry is an achievement definition loaded from the seed file
type CatalogEntry struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Category    string              `yaml:"category"`
	Points      int                 `yaml:"points"`
	Icon        string              `yaml:"icon"`
	Criteria    CriterionDescriptor `yaml:"criteria"`
}
