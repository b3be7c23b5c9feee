package engine

import "math"

const (
	// PointsPerHalfHour is the base award for every 30 planned minutes.
	PointsPerHalfHour = 10

	// UntimedTaskPoints is the base award for tasks without a duration.
	UntimedTaskPoints = 10

	// FocusBoost multiplies the base award of deep work and study tasks.
	FocusBoost = 1.5
)

// PointsFor computes the award of a task from its duration and category.
// An explicit Task.Points is not consulted; see EffectivePoints.
func PointsFor(t Task) int {
	base := UntimedTaskPoints
	if t.Duration != nil && *t.Duration != 0 {
		base = int(math.Round(float64(*t.Duration)/30)) * PointsPerHalfHour
	}
	boost := 1.0
	if t.Category.IsFocus() {
		boost = FocusBoost
	}
	return int(math.Round(float64(base) * boost))
}

// EffectivePoints returns the explicit points of t when set, else PointsFor(t).
func EffectivePoints(t Task) int {
	if t.Points != nil {
		return *t.Points
	}
	return PointsFor(t)
}

type CompleteResult struct {
	TaskID      string
	DateKey     string
	Points      int
	DayPoints   int
	TotalPoints int
	StreakDays  int
	AlreadyDone bool
}

// completeTask marks t done and credits its points to day and stats, then
// advances the streak for dateKey. Completing a done task changes nothing.
func completeTask(t *Task, day *DayRecord, stats *GlobalStats, dateKey string) CompleteResult {
	res := CompleteResult{TaskID: t.ID, DateKey: dateKey}
	if t.IsDone() {
		res.AlreadyDone = true
		res.DayPoints = day.Score.Points
		res.TotalPoints = stats.TotalPoints
		res.StreakDays = stats.StreakDays
		return res
	}

	t.Status = StatusDone
	pts := EffectivePoints(*t)
	day.Score.Points += pts
	day.Score.Completed++
	stats.TotalPoints += pts
	TouchStreak(stats, dateKey)

	res.Points = pts
	res.DayPoints = day.Score.Points
	res.TotalPoints = stats.TotalPoints
	res.StreakDays = stats.StreakDays
	return res
}
