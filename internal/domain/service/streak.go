package service

import (
	"time"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
)

// StreakWindowDays bounds how far back activity streaks are examined
const StreakWindowDays = entity.MaxStreakDays

func dateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

// distinctDates buckets timestamps by calendar date in loc
func distinctDates(timestamps []time.Time, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		days[dateKey(ts, loc)] = struct{}{}
	}
	return days
}

// ActivityStreak counts consecutive calendar days with activity ending today.
// It returns 0 when there is no activity today.
func ActivityStreak(timestamps []time.Time, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	days := distinctDates(timestamps, loc)

	today := now.In(loc)
	streak := 0
	for i := 0; i < StreakWindowDays; i++ {
		day := today.AddDate(0, 0, -i)
		if _, ok := days[dateKey(day, loc)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// DistinctDays counts the calendar days in loc on which any timestamp falls
func DistinctDays(timestamps []time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	return len(distinctDates(timestamps, loc))
}
