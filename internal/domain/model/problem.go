package model

import (
	"time"

	"github.com/google/uuid"
)

// Problem is a proposal users vote on. Only the columns read here are mapped.
type Problem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProposerID uuid.UUID `gorm:"type:uuid;not null;index" json:"proposer_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	VoteCount  int       `gorm:"not null;default:0" json:"vote_count"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Problem) TableName() string {
	return "problems"
}

// Vote is a single user's vote on a problem
type Vote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_pair,priority:1" json:"user_id"`
	ProblemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_pair,priority:2;index:idx_votes_problem_created,priority:1" json:"problem_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_votes_problem_created,priority:2" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Vote) TableName() string {
	return "votes"
}
