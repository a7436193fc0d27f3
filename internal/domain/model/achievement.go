package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Achievement is a catalog entry describing a single earnable badge
type Achievement struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(50);not null;index" json:"category"`
	Points      int            `gorm:"not null;default:0" json:"points"`
	Icon        string         `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Criteria    datatypes.JSON `gorm:"type:jsonb;not null" json:"criteria"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement records that a user earned an achievement; one row per pair
type UserAchievement struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievements_pair,priority:1" json:"user_id"`
	AchievementID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievements_pair,priority:2" json:"achievement_id"`
	EarnedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"earned_at"`
	Context       datatypes.JSON `gorm:"type:jsonb" json:"context,omitempty"`

	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

// TableName specifies the table name for GORM
func (UserAchievement) TableName() string {
	return "user_achievements"
}
