package entity

import "time"

// UserStats are the aggregates achievement criteria are evaluated against
type UserStats struct {
	VoteCount            int       `json:"vote_count"`
	ProblemCount         int       `json:"problem_count"`
	ProblemVotesReceived int       `json:"problem_votes_received"`
	FollowerCount        int       `json:"follower_count"`
	FollowingCount       int       `json:"following_count"`
	FavoriteCount        int       `json:"favorite_count"`
	AchievementCount     int       `json:"achievement_count"`
	ProfileCompleteness  float64   `json:"profile_completeness"`
	ProfileComplete      bool      `json:"profile_complete"`
	ActivityStreak       int       `json:"activity_streak"`
	JoinDate             time.Time `json:"join_date"`
}

// ReputationStats are the inputs of the reputation calculation
type ReputationStats struct {
	ProblemsCreated     int
	VotesGiven          int
	VotesReceived       int
	PopularProblems     int
	EarlyVotes          int
	VotedCategories     int
	ActiveDays          int
	Followers           int
	ProfileCompleteness float64
	DaysSinceLogin      int
	AccountAgeDays      int
}
