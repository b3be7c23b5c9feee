package engine

import (
	"time"

	"focusplanner/internal/timemath"
)

// TouchStreak records activity on dateKey.
//
//   - no previous active date: streak = 1
//   - exactly one day after the previous date: streak + 1
//   - more than one day after: streak = 1
//   - same day or earlier (backdated completion): streak unchanged
//
// LastActiveDate is set to dateKey in every case, including the backdated one.
func TouchStreak(stats *GlobalStats, dateKey string) {
	defer func() {
		k := dateKey
		stats.LastActiveDate = &k
	}()

	if stats.LastActiveDate == nil {
		stats.StreakDays = 1
		return
	}
	last, err := time.Parse(timemath.ISODateLayout, *stats.LastActiveDate)
	if err != nil {
		stats.StreakDays = 1
		return
	}
	cur, err := time.Parse(timemath.ISODateLayout, dateKey)
	if err != nil {
		return
	}

	switch diff := timemath.DaysBetween(last, cur); {
	case diff == 1:
		stats.StreakDays++
	case diff > 1:
		stats.StreakDays = 1
	}
}
