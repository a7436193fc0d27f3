package model

import (
	"time"

	"github.com/google/uuid"
)

// Visibility controls who may read a profile, activity log or email
type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityPrivate       Visibility = "private"
	VisibilityFollowersOnly Visibility = "followers_only"
)

// IsValid reports whether v is one of the known visibility levels
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFollowersOnly:
		return true
	}
	return false
}

// UserProfile represents a community member and their denormalized counters
type UserProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	DisplayName string    `gorm:"type:varchar(100)" json:"display_name"`
	Bio         string    `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Location    string    `gorm:"type:varchar(100)" json:"location,omitempty"`
	Website     string    `gorm:"type:text" json:"website,omitempty"`

	ProfileVisibility  Visibility `gorm:"type:varchar(20);not null;default:'public'" json:"profile_visibility"`
	ActivityVisibility Visibility `gorm:"type:varchar(20);not null;default:'public'" json:"activity_visibility"`
	EmailVisibility    Visibility `gorm:"type:varchar(20);not null;default:'private'" json:"email_visibility"`
	AllowFollows       bool       `gorm:"not null;default:true" json:"allow_follows"`

	TotalFollowers        int `gorm:"not null;default:0;check:chk_total_followers,total_followers >= 0" json:"total_followers"`
	TotalFollowing        int `gorm:"not null;default:0;check:chk_total_following,total_following >= 0" json:"total_following"`
	TotalVotesCast        int `gorm:"not null;default:0" json:"total_votes_cast"`
	TotalProblemsProposed int `gorm:"not null;default:0" json:"total_problems_proposed"`
	ReputationScore       int `gorm:"not null;default:0;check:chk_reputation_score,reputation_score >= 0" json:"reputation_score"`

	IsAdmin            bool   `gorm:"not null;default:false" json:"is_admin"`
	SubscriptionStatus string `gorm:"type:varchar(20);not null;default:'free'" json:"subscription_status"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (UserProfile) TableName() string {
	return "user_profiles"
}

// PublicView strips the email unless the owner made it public
func (u *UserProfile) PublicView() *UserProfile {
	clone := *u
	if clone.EmailVisibility != VisibilityPublic {
		clone.Email = ""
	}
	return &clone
}
