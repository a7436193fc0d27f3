package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityType names an entry in the activity log
type ActivityType string

const (
	ActivityProblemCreated    ActivityType = "problem_created"
	ActivityVoteCast          ActivityType = "vote_cast"
	ActivityProfileUpdated    ActivityType = "profile_updated"
	ActivityFollowedUser      ActivityType = "followed_user"
	ActivityGainedFollower    ActivityType = "gained_follower"
	ActivityUnfollowedUser    ActivityType = "unfollowed_user"
	ActivityFavoritedProblem  ActivityType = "favorited_problem"
	ActivityAchievementEarned ActivityType = "achievement_earned"
)

// ClientCreatable reports whether callers may log this type directly.
// The remaining types are written only by the social and achievement flows.
func (t ActivityType) ClientCreatable() bool {
	switch t {
	case ActivityProblemCreated, ActivityVoteCast, ActivityProfileUpdated:
		return true
	default:
		return false
	}
}

// Entity types referenced by activities and reputation history
const (
	EntityUser        = "user"
	EntityProblem     = "problem"
	EntityVote        = "vote"
	EntityAchievement = "achievement"
)

// UserActivity is an append-only activity log entry
type UserActivity struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_activities_user_created,priority:1" json:"user_id"`
	ActivityType ActivityType   `gorm:"type:varchar(50);not null;index" json:"activity_type"`
	EntityType   *string        `gorm:"type:varchar(50)" json:"entity_type,omitempty"`
	EntityID     *uuid.UUID     `gorm:"type:uuid" json:"entity_id,omitempty"`
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	Visibility   Visibility     `gorm:"type:varchar(20);not null;default:'public'" json:"visibility"`
	CreatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_user_activities_user_created,priority:2,sort:desc" json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserActivity) TableName() string {
	return "user_activities"
}
