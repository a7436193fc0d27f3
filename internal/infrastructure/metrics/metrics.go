package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "community"

var (
	AchievementsAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "achievements_awarded_total", Help: "Achievements awarded by category"},
		[]string{"category"},
	)
	AchievementCheckDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "achievement_check_duration_seconds", Help: "Duration of achievement checks", Buckets: prometheus.DefBuckets},
	)
	SocialActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "social_actions_total", Help: "Follow, unfollow, favorite and unfavorite actions"},
		[]string{"action"},
	)
	ReputationUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "reputation_updates_total", Help: "Reputation deltas applied by reason"},
		[]string{"reason"},
	)
	CountersRepaired = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "counters_repaired_total", Help: "Profiles whose follow counters were corrected"},
	)
	NotificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notification_failures_total", Help: "Notifications and broadcasts that failed to send"},
		[]string{"kind"},
	)
)

// Register adds all collectors to the default registry
func Register() {
	prometheus.MustRegister(
		AchievementsAwarded,
		AchievementCheckDuration,
		SocialActions,
		ReputationUpdates,
		CountersRepaired,
		NotificationFailures,
	)
}
