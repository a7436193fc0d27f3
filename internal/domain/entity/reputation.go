package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReputationComponent is one labelled contribution to the score
type ReputationComponent struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// TrendDirection of recent reputation changes
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// Trend compares the last 7 days of deltas with the 7 days before
type Trend struct {
	Direction      TrendDirection `json:"direction"`
	Percentage     float64        `json:"percentage"`
	RecentPoints   int            `json:"recent_points"`
	PreviousPoints int            `json:"previous_points"`
}

// Rank is a named score band. Max < 0 means the band has no upper bound.
type Rank struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Contains reports whether score falls inside the band
func (r Rank) Contains(score int) bool {
	return score >= r.Min && (r.Max < 0 || score <= r.Max)
}

// ReputationBreakdown is the full result of a reputation calculation
type ReputationBreakdown struct {
	UserID           uuid.UUID             `json:"user_id"`
	BasicActivity    ReputationComponent   `json:"basic_activity"`
	QualityBonuses   ReputationComponent   `json:"quality_bonuses"`
	SocialFactors    ReputationComponent   `json:"social_factors"`
	Community        ReputationComponent   `json:"community_contribution"`
	Consistency      ReputationComponent   `json:"consistency"`
	Penalties        ReputationComponent   `json:"penalties"`
	Components       []ReputationComponent `json:"components"`
	RawScore         int                   `json:"raw_score"`
	TotalScore       int                   `json:"total_score"`
	DecayApplied     bool                  `json:"decay_applied"`
	Rank             Rank                  `json:"rank"`
	NextRank         *Rank                 `json:"next_rank,omitempty"`
	PointsToNextRank int                   `json:"points_to_next_rank"`
	Trend            Trend                 `json:"trend"`
	Display          ScoreDisplay          `json:"display"`
	CalculatedAt     time.Time             `json:"calculated_at"`
}

// ScoreDisplay holds the presentational helpers for a score
type ScoreDisplay struct {
	Formatted string `json:"formatted"`
	Color     string `json:"color"`
	Badge     string `json:"badge"`
}

// PointsGrant is one reputation delta to apply
type PointsGrant struct {
	Points            int
	Reason            string
	RelatedEntityType *string
	RelatedEntityID   *uuid.UUID
}
