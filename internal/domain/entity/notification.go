package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies what a notification is about
type NotificationType string

const (
	NotificationFollow              NotificationType = "follow"
	NotificationAchievement         NotificationType = "achievement"
	NotificationProblemFavorited    NotificationType = "problem_favorited"
	NotificationReputationMilestone NotificationType = "reputation_milestone"
	NotificationActivityMilestone   NotificationType = "activity_milestone"
)

// Notification is published to a user's notification channel
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// NewNotification builds a notification stamped with a fresh id
func NewNotification(userID uuid.UUID, t NotificationType, title, content string, data map[string]interface{}) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Title:     title,
		Content:   content,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}

// RealtimeEvent is broadcast to live clients
type RealtimeEvent struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Realtime event types
const (
	EventNewFollower       = "new_follower"
	EventFollowed          = "followed"
	EventUnfollowed        = "unfollowed"
	EventAchievementEarned = "achievement_earned"
)
