package service

// ReputationMilestones trigger a notification when crossed upwards
var ReputationMilestones = []int{100, 500, 1000, 2500, 5000, 10000}

// ActivityMilestones trigger a notification when an activity count reaches them
var ActivityMilestones = []int64{10, 50, 100, 500}

// CrossedMilestone returns the highest milestone m with before < m <= after
func CrossedMilestone(before, after int) (int, bool) {
	crossed, ok := 0, false
	for _, m := range ReputationMilestones {
		if before < m && after >= m {
			crossed, ok = m, true
		}
	}
	return crossed, ok
}

// IsActivityMilestone reports whether count is exactly a milestone
func IsActivityMilestone(count int64) bool {
	for _, m := range ActivityMilestones {
		if count == m {
			return true
		}
	}
	return false
}
