package dto

import "github.com/google/uuid"

// AdjustReputationRequest is the body of the admin reputation endpoint
type AdjustReputationRequest struct {
	PointsChange      int        `json:"points_change" validate:"required,min=-10000,max=10000"`
	Reason            string     `json:"reason" validate:"required,max=100"`
	RelatedEntityType *string    `json:"related_entity_type,omitempty" validate:"omitempty,oneof=user problem vote achievement"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
}

// AdjustReputationResponse reports the resulting score
type AdjustReputationResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	ReputationScore int       `json:"reputation_score"`
}

// CheckAchievementsRequest is the body of POST /api/v1/achievements/check
type CheckAchievementsRequest struct {
	ActivityType string                 `json:"activity_type" validate:"required,max=50"`
	Context      map[string]interface{} `json:"context,omitempty"`
}
