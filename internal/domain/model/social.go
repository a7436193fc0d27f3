package model

import (
	"time"

	"github.com/google/uuid"
)

// UserFollow is a directed follow edge
type UserFollow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_pair,priority:1" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_pair,priority:2;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserFollow) TableName() string {
	return "user_follows"
}

// UserFavorite marks a problem as a user's favorite
type UserFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorites_pair,priority:1" json:"user_id"`
	ProblemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorites_pair,priority:2" json:"problem_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Problem *Problem `gorm:"foreignKey:ProblemID" json:"problem,omitempty"`
}

// TableName specifies the table name for GORM
func (UserFavorite) TableName() string {
	return "user_favorites"
}
