package engine

import (
	"time"

	"focusplanner/internal/timemath"
)

type DayPoints struct {
	Date   string
	Points int
}

type StatsSummary struct {
	TotalPoints        int
	TotalFocusSessions int
	StreakDays         int
	LastActiveDate     string
	TodayPoints        int
	// WeekPoints sums the current Monday-to-Sunday week.
	WeekPoints int
	// LastDays holds the trailing days ending today, oldest first.
	LastDays []DayPoints
}

// Summarize aggregates points over the trailing n days and the current week.
func Summarize(st *State, today time.Time, n int, loc *time.Location) StatsSummary {
	day := timemath.NormalizeDate(today, loc)

	sum := StatsSummary{
		TotalPoints:        st.Stats.TotalPoints,
		TotalFocusSessions: st.Stats.TotalFocusSessions,
		StreakDays:         st.Stats.StreakDays,
		TodayPoints:        st.DayPoints(timemath.ISODate(day, loc)),
	}
	if st.Stats.LastActiveDate != nil {
		sum.LastActiveDate = *st.Stats.LastActiveDate
	}

	for i := n - 1; i >= 0; i-- {
		key := timemath.ISODate(timemath.AddDays(day, -i), loc)
		sum.LastDays = append(sum.LastDays, DayPoints{Date: key, Points: st.DayPoints(key)})
	}

	monday := timemath.AddDays(day, -((int(day.Weekday()) + 6) % 7))
	for i := 0; i < 7; i++ {
		sum.WeekPoints += st.DayPoints(timemath.ISODate(timemath.AddDays(monday, i), loc))
	}
	return sum
}
