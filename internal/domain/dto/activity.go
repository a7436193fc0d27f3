package dto

import (
	"github.com/google/uuid"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

// ActivityInput is the input of SocialService.CreateActivity
type ActivityInput struct {
	UserID       uuid.UUID
	ActivityType model.ActivityType
	EntityType   *string
	EntityID     *uuid.UUID
	Metadata     map[string]interface{}
	// Visibility overrides the user's default activity visibility when set
	Visibility *model.Visibility
}

// CreateActivityRequest is the body of POST /api/v1/activities
type CreateActivityRequest struct {
	ActivityType string                 `json:"activity_type" validate:"required,oneof=problem_created vote_cast profile_updated"`
	EntityType   *string                `json:"entity_type,omitempty" validate:"omitempty,oneof=user problem vote achievement"`
	EntityID     *uuid.UUID             `json:"entity_id,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Visibility   *string                `json:"visibility,omitempty" validate:"omitempty,oneof=public private followers_only"`
}
