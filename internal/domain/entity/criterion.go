package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Criterion kinds as stored in achievements.criteria.type
const (
	CriterionVoteCount            = "vote_count"
	CriterionProblemCount         = "problem_count"
	CriterionProblemVotesReceived = "problem_votes_received"
	CriterionFollowingCount       = "following_count"
	CriterionFollowerCount        = "follower_count"
	CriterionJoinDate             = "join_date"
	CriterionProfileComplete      = "profile_complete"
	CriterionFavoriteCount        = "favorite_count"
	CriterionActivityStreak       = "activity_streak"
)

// CriterionDescriptor is the stored form of a criterion
type CriterionDescriptor struct {
	Type      string     `json:"type" yaml:"type"`
	Threshold int        `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Days      int        `json:"days,omitempty" yaml:"days,omitempty"`
	Before    *time.Time `json:"before,omitempty" yaml:"before,omitempty"`
}

// Criterion is the closed set of achievement rules. Every variant lives in
// this file; Evaluate and Progress switch over all of them.
type Criterion interface {
	Kind() string
	isCriterion()
}

type VoteCountCriterion struct{ Threshold int }
type ProblemCountCriterion struct{ Threshold int }
type ProblemVotesReceivedCriterion struct{ Threshold int }
type FollowingCountCriterion struct{ Threshold int }
type FollowerCountCriterion struct{ Threshold int }
type FavoriteCountCriterion struct{ Threshold int }
type ActivityStreakCriterion struct{ Days int }
type JoinDateCriterion struct{ Before time.Time }
type ProfileCompleteCriterion struct{}

func (VoteCountCriterion) Kind() string            { return CriterionVoteCount }
func (ProblemCountCriterion) Kind() string         { return CriterionProblemCount }
func (ProblemVotesReceivedCriterion) Kind() string { return CriterionProblemVotesReceived }
func (FollowingCountCriterion) Kind() string       { return CriterionFollowingCount }
func (FollowerCountCriterion) Kind() string        { return CriterionFollowerCount }
func (FavoriteCountCriterion) Kind() string        { return CriterionFavoriteCount }
func (ActivityStreakCriterion) Kind() string       { return CriterionActivityStreak }
func (JoinDateCriterion) Kind() string             { return CriterionJoinDate }
func (ProfileCompleteCriterion) Kind() string      { return CriterionProfileComplete }

func (VoteCountCriterion) isCriterion()            {}
func (ProblemCountCriterion) isCriterion()         {}
func (ProblemVotesReceivedCriterion) isCriterion() {}
func (FollowingCountCriterion) isCriterion()       {}
func (FollowerCountCriterion) isCriterion()        {}
func (FavoriteCountCriterion) isCriterion()        {}
func (ActivityStreakCriterion) isCriterion()       {}
func (JoinDateCriterion) isCriterion()             {}
func (ProfileCompleteCriterion) isCriterion()      {}

// MaxStreakDays is the longest activity streak the statistics can report
const MaxStreakDays = 7

// ErrUnknownCriterion is returned for descriptors with an unsupported type
var ErrUnknownCriterion = fmt.Errorf("unknown criterion type")

// ToCriterion converts a descriptor into its typed variant
func (d CriterionDescriptor) ToCriterion() (Criterion, error) {
	switch d.Type {
	case CriterionVoteCount:
		return VoteCountCriterion{Threshold: d.Threshold}, nil
	case CriterionProblemCount:
		return ProblemCountCriterion{Threshold: d.Threshold}, nil
	case CriterionProblemVotesReceived:
		return ProblemVotesReceivedCriterion{Threshold: d.Threshold}, nil
	case CriterionFollowingCount:
		return FollowingCountCriterion{Threshold: d.Threshold}, nil
	case CriterionFollowerCount:
		return FollowerCountCriterion{Threshold: d.Threshold}, nil
	case CriterionFavoriteCount:
		return FavoriteCountCriterion{Threshold: d.Threshold}, nil
	case CriterionActivityStreak:
		if d.Days <= 0 {
			return nil, fmt.Errorf("activity_streak requires positive days, got %d", d.Days)
		}
		if d.Days > MaxStreakDays {
			return nil, fmt.Errorf("activity_streak days %d exceed the %d day streak window", d.Days, MaxStreakDays)
		}
		return ActivityStreakCriterion{Days: d.Days}, nil
	case CriterionJoinDate:
		if d.Before == nil {
			return nil, fmt.Errorf("join_date requires a before date")
		}
		return JoinDateCriterion{Before: *d.Before}, nil
	case CriterionProfileComplete:
		return ProfileCompleteCriterion{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, d.Type)
	}
}

// ParseCriterion decodes a stored JSON descriptor
func ParseCriterion(raw []byte) (Criterion, error) {
	var d CriterionDescriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to decode criterion: %w", err)
	}
	return d.ToCriterion()
}

// Evaluate reports whether stats satisfy c
func Evaluate(c Criterion, stats UserStats) bool {
	switch c := c.(type) {
	case VoteCountCriterion:
		return stats.VoteCount >= c.Threshold
	case ProblemCountCriterion:
		return stats.ProblemCount >= c.Threshold
	case ProblemVotesReceivedCriterion:
		return stats.ProblemVotesReceived >= c.Threshold
	case FollowingCountCriterion:
		return stats.FollowingCount >= c.Threshold
	case FollowerCountCriterion:
		return stats.FollowerCount >= c.Threshold
	case FavoriteCountCriterion:
		return stats.FavoriteCount >= c.Threshold
	case ActivityStreakCriterion:
		return stats.ActivityStreak >= c.Days
	case JoinDateCriterion:
		return !stats.JoinDate.IsZero() && stats.JoinDate.Before(c.Before)
	case ProfileCompleteCriterion:
		return stats.ProfileComplete
	default:
		panic(fmt.Sprintf("unhandled criterion %T", c))
	}
}

// Progress returns the current value and target for c. Date based criteria
// report 1/1 when satisfied and 0/1 otherwise.
func Progress(c Criterion, stats UserStats) (current, target int) {
	switch c := c.(type) {
	case VoteCountCriterion:
		return stats.VoteCount, c.Threshold
	case ProblemCountCriterion:
		return stats.ProblemCount, c.Threshold
	case ProblemVotesReceivedCriterion:
		return stats.ProblemVotesReceived, c.Threshold
	case FollowingCountCriterion:
		return stats.FollowingCount, c.Threshold
	case FollowerCountCriterion:
		return stats.FollowerCount, c.Threshold
	case FavoriteCountCriterion:
		return stats.FavoriteCount, c.Threshold
	case ActivityStreakCriterion:
		return stats.ActivityStreak, c.Days
	case JoinDateCriterion, ProfileCompleteCriterion:
		if Evaluate(c, stats) {
			return 1, 1
		}
		return 0, 1
	default:
		panic(fmt.Sprintf("unhandled criterion %T", c))
	}
}
