package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host image

	"github.com/ecologicaleaving/wikigaialab/internal/domain/service"
	"github.com/ecologicaleaving/wikigaialab/pkg/config"
)

const (
	defaultCacheTTL = 5 * time.Minute
	defaultTimeZone = "Europe/Rome"
)

// ReputationConfig tunes the reputation formula and its cache
type ReputationConfig struct {
	Weights service.ReputationWeights
	// CacheTTL of computed breakdowns; negative disables caching
	CacheTTL time.Duration
	// TimeZone used to bucket activity days for streaks and consistency
	TimeZone string
}

// WithDefaults fills unset cache and time zone settings
func (c ReputationConfig) WithDefaults() ReputationConfig {
	if c.CacheTTL == 0 {
		c.CacheTTL = defaultCacheTTL
	}
	if c.TimeZone == "" {
		c.TimeZone = defaultTimeZone
	}
	return c
}

// Location resolves TimeZone
func (c ReputationConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid reputation time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// reputationFromSource starts from the production weights and overrides only keys present in the source
func reputationFromSource(cfg config.Config) ReputationConfig {
	w := service.DefaultReputationWeights()

	ints := map[string]*int{
		"reputation.weights.problem_created":           &w.ProblemCreated,
		"reputation.weights.vote_given":                &w.VoteGiven,
		"reputation.weights.vote_received":             &w.VoteReceived,
		"reputation.bonuses.popular_problem":           &w.PopularProblemBonus,
		"reputation.bonuses.popular_problem_threshold": &w.PopularProblemThreshold,
		"reputation.bonuses.early_voter":               &w.EarlyVoterBonus,
		"reputation.bonuses.early_voter_max_prior":     &w.EarlyVoterMaxPriorVotes,
		"reputation.bonuses.profile_complete":          &w.ProfileCompleteBonus,
		"reputation.bonuses.per_follower":              &w.PerFollowerBonus,
		"reputation.bonuses.per_category":              &w.PerCategoryBonus,
		"reputation.bonuses.max_categories":            &w.MaxCategories,
		"reputation.consistency.max_bonus":             &w.ConsistencyMaxBonus,
		"reputation.consistency.window_days":           &w.ConsistencyWindowDays,
		"reputation.consistency.full_days":             &w.ConsistencyFullDays,
		"reputation.penalties.inactivity_grace_days":   &w.InactivityGraceDays,
		"reputation.penalties.inactivity_per_day":      &w.InactivityPenaltyPerDay,
		"reputation.penalties.max_inactivity":          &w.MaxInactivityPenalty,
		"reputation.trend.window_days":                 &w.TrendWindowDays,
		"reputation.trend.noise_threshold":             &w.TrendNoiseThreshold,
	}
	for key, dst := range ints {
		if cfg.IsSet(key) {
			*dst = cfg.GetInt(key)
		}
	}

	floats := map[string]*float64{
		"reputation.bonuses.profile_complete_threshold": &w.ProfileCompleteThreshold,
		"reputation.decay.half_life_days":               &w.DecayHalfLifeDays,
		"reputation.decay.min_retained":                 &w.DecayMinRetained,
	}
	for key, dst := range floats {
		if cfg.IsSet(key) {
			*dst = cfg.GetFloat64(key)
		}
	}

	if cfg.IsSet("reputation.decay.enabled") {
		w.DecayEnabled = cfg.GetBool("reputation.decay.enabled")
	}

	return ReputationConfig{
		Weights:  w,
		CacheTTL: cfg.GetDuration("reputation.cache_ttl"),
		TimeZone: cfg.GetString("reputation.time_zone"),
	}.WithDefaults()
}
