package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
)

// ReputationWeights parameterises the reputation formula
type ReputationWeights struct {
	ProblemCreated int
	VoteGiven      int
	VoteReceived   int

	PopularProblemBonus     int
	PopularProblemThreshold int
	EarlyVoterBonus         int
	EarlyVoterMaxPriorVotes int

	ProfileCompleteBonus     int
	ProfileCompleteThreshold float64
	PerFollowerBonus         int

	PerCategoryBonus int
	MaxCategories    int

	ConsistencyMaxBonus   int
	ConsistencyWindowDays int
	ConsistencyFullDays   int

	InactivityGraceDays     int
	InactivityPenaltyPerDay int
	MaxInactivityPenalty    int

	DecayEnabled      bool
	DecayHalfLifeDays float64
	DecayMinRetained  float64

	TrendWindowDays     int
	TrendNoiseThreshold int
}

// DefaultReputationWeights returns the production weights
func DefaultReputationWeights() ReputationWeights {
	return ReputationWeights{
		ProblemCreated:           10,
		VoteGiven:                1,
		VoteReceived:             2,
		PopularProblemBonus:      50,
		PopularProblemThreshold:  20,
		EarlyVoterBonus:          5,
		EarlyVoterMaxPriorVotes:  5,
		ProfileCompleteBonus:     25,
		ProfileCompleteThreshold: 0.8,
		PerFollowerBonus:         2,
		PerCategoryBonus:         10,
		MaxCategories:            5,
		ConsistencyMaxBonus:      30,
		ConsistencyWindowDays:    30,
		ConsistencyFullDays:      15,
		InactivityGraceDays:      30,
		InactivityPenaltyPerDay:  1,
		MaxInactivityPenalty:     50,
		DecayEnabled:             false,
		DecayHalfLifeDays:        365,
		DecayMinRetained:         0.5,
		TrendWindowDays:          7,
		TrendNoiseThreshold:      5,
	}
}

// Component labels
const (
	LabelBasicActivity = "Basic Activity"
	LabelQuality       = "Quality Bonuses"
	LabelSocial        = "Social Factors"
	LabelCommunity     = "Community Contribution"
	LabelConsistency   = "Consistency"
	LabelPenalties     = "Penalties"
)

// ReputationCalculator computes reputation components from user statistics
type ReputationCalculator struct {
	w ReputationWeights
}

// NewReputationCalculator creates a calculator with the given weights
func NewReputationCalculator(w ReputationWeights) *ReputationCalculator {
	return &ReputationCalculator{w: w}
}

// Weights returns the weights in use
func (c *ReputationCalculator) Weights() ReputationWeights {
	return c.w
}

func (c *ReputationCalculator) BasicActivity(s entity.ReputationStats) entity.ReputationComponent {
	points := s.ProblemsCreated*c.w.ProblemCreated + s.VotesGiven*c.w.VoteGiven + s.VotesReceived*c.w.VoteReceived
	return entity.ReputationComponent{Label: LabelBasicActivity, Points: points}
}

func (c *ReputationCalculator) QualityBonuses(s entity.ReputationStats) entity.ReputationComponent {
	points := s.PopularProblems*c.w.PopularProblemBonus + s.EarlyVotes*c.w.EarlyVoterBonus
	return entity.ReputationComponent{Label: LabelQuality, Points: points}
}

func (c *ReputationCalculator) SocialFactors(s entity.ReputationStats) entity.ReputationComponent {
	points := s.Followers * c.w.PerFollowerBonus
	if s.ProfileCompleteness >= c.w.ProfileCompleteThreshold {
		points += c.w.ProfileCompleteBonus
	}
	return entity.ReputationComponent{Label: LabelSocial, Points: points}
}

func (c *ReputationCalculator) CommunityContribution(s entity.ReputationStats) entity.ReputationComponent {
	categories := s.VotedCategories
	if categories > c.w.MaxCategories {
		categories = c.w.MaxCategories
	}
	return entity.ReputationComponent{Label: LabelCommunity, Points: categories * c.w.PerCategoryBonus}
}

func (c *ReputationCalculator) Consistency(s entity.ReputationStats) entity.ReputationComponent {
	if c.w.ConsistencyFullDays <= 0 {
		return entity.ReputationComponent{Label: LabelConsistency}
	}
	days := s.ActiveDays
	if days > c.w.ConsistencyFullDays {
		days = c.w.ConsistencyFullDays
	}
	return entity.ReputationComponent{
		Label:  LabelConsistency,
		Points: c.w.ConsistencyMaxBonus * days / c.w.ConsistencyFullDays,
	}
}

// Penalties is zero or negative
func (c *ReputationCalculator) Penalties(s entity.ReputationStats) entity.ReputationComponent {
	overdue := s.DaysSinceLogin - c.w.InactivityGraceDays
	if overdue <= 0 {
		return entity.ReputationComponent{Label: LabelPenalties}
	}
	penalty := overdue * c.w.InactivityPenaltyPerDay
	if penalty > c.w.MaxInactivityPenalty {
		penalty = c.w.MaxInactivityPenalty
	}
	return entity.ReputationComponent{Label: LabelPenalties, Points: -penalty}
}

// Result is the score part of a breakdown
type Result struct {
	BasicActivity entity.ReputationComponent
	Quality       entity.ReputationComponent
	Social        entity.ReputationComponent
	Community     entity.ReputationComponent
	Consistency   entity.ReputationComponent
	Penalties     entity.ReputationComponent
	RawScore      int
	TotalScore    int
	DecayApplied  bool
}

// Components lists the six components in display order
func (r Result) Components() []entity.ReputationComponent {
	return []entity.ReputationComponent{r.BasicActivity, r.Quality, r.Social, r.Community, r.Consistency, r.Penalties}
}

// Calculate sums all components, floors at zero and applies decay when enabled
func (c *ReputationCalculator) Calculate(s entity.ReputationStats) Result {
	r := Result{
		BasicActivity: c.BasicActivity(s),
		Quality:       c.QualityBonuses(s),
		Social:        c.SocialFactors(s),
		Community:     c.CommunityContribution(s),
		Consistency:   c.Consistency(s),
		Penalties:     c.Penalties(s),
	}
	for _, comp := range r.Components() {
		r.RawScore += comp.Points
	}
	if r.RawScore < 0 {
		r.RawScore = 0
	}

	r.TotalScore = r.RawScore
	if c.w.DecayEnabled {
		r.TotalScore = c.ApplyDecay(r.RawScore, s.AccountAgeDays)
		r.DecayApplied = r.TotalScore != r.RawScore
	}
	return r
}

// ApplyDecay multiplies score by 0.5^(age/halfLife), never retaining less than
// DecayMinRetained of the original score
func (c *ReputationCalculator) ApplyDecay(score, ageDays int) int {
	if score <= 0 || ageDays <= 0 || c.w.DecayHalfLifeDays <= 0 {
		return score
	}
	factor := math.Pow(0.5, float64(ageDays)/c.w.DecayHalfLifeDays)
	if factor < c.w.DecayMinRetained {
		factor = c.w.DecayMinRetained
	}
	return int(math.Round(float64(score) * factor))
}

// Trend classifies recent vs previous window sums
func (c *ReputationCalculator) Trend(recent, previous int) entity.Trend {
	t := entity.Trend{RecentPoints: recent, PreviousPoints: previous, Direction: entity.TrendStable}
	diff := recent - previous
	if abs(diff) < c.w.TrendNoiseThreshold {
		return t
	}

	if diff > 0 {
		t.Direction = entity.TrendIncreasing
	} else {
		t.Direction = entity.TrendDecreasing
	}

	if previous == 0 {
		t.Percentage = 100
		return t
	}
	pct := decimal.NewFromInt(int64(abs(diff))).
		Div(decimal.NewFromInt(int64(abs(previous)))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	t.Percentage = pct.InexactFloat64()
	return t
}

// Describe renders a one-line summary of a component, used in logs
func Describe(comp entity.ReputationComponent) string {
	return fmt.Sprintf("%s: %+d", comp.Label, comp.Points)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
