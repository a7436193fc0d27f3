package model

import (
	"time"

	"github.com/google/uuid"
)

// Reasons recorded in the reputation history
const (
	ReasonAchievementEarned = "achievement_earned"
	ReasonManualAdjustment  = "manual_adjustment"
	ReasonRecalculation     = "recalculation"
)

// UserReputationHistory is an append-only log of reputation deltas
type UserReputationHistory struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_reputation_history_user_created,priority:1" json:"user_id"`
	PointsChange      int        `gorm:"not null" json:"points_change"`
	Reason            string     `gorm:"type:varchar(100);not null" json:"reason"`
	RelatedEntityType *string    `gorm:"type:varchar(50)" json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `gorm:"type:uuid" json:"related_entity_id,omitempty"`
	CreatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_reputation_history_user_created,priority:2" json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserReputationHistory) TableName() string {
	return "user_reputation_history"
}
