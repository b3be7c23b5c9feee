package engine

import (
	"time"

	"focusplanner/internal/timemath"
)

// RoadmapWeeks is the fixed length of the curriculum.
const RoadmapWeeks = len(curriculum)

// DefaultTopic titles deep work blocks when the roadmap has no weeks.
const DefaultTopic = "Roadmap Focus"

type RoadmapWeek struct {
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
	// Completed is keyed by task index and created on the first toggle.
	Completed map[int]bool `json:"completed,omitempty"`
}

// IsTaskDone reports the completion flag of task idx; missing entries are false.
func (w RoadmapWeek) IsTaskDone(idx int) bool {
	return w.Completed[idx]
}

type Roadmap struct {
	StartISO string        `json:"startISO"`
	Weeks    []RoadmapWeek `json:"weeks"`
}

// GenerateRoadmap anchors a fresh copy of the curriculum at start's calendar day.
// Nothing is shared with previously generated roadmaps.
func GenerateRoadmap(start time.Time, loc *time.Location) *Roadmap {
	weeks := make([]RoadmapWeek, len(curriculum))
	for i, c := range curriculum {
		tasks := make([]string, len(c.tasks))
		copy(tasks, c.tasks)
		weeks[i] = RoadmapWeek{Title: c.title, Tasks: tasks}
	}
	return &Roadmap{
		StartISO: timemath.ISODate(start, loc),
		Weeks:    weeks,
	}
}

// Start returns the roadmap's anchor day in loc.
func (r *Roadmap) Start(loc *time.Location) (time.Time, error) {
	return timemath.ParseISODate(r.StartISO, loc)
}

// WeekIndex maps date to floor(days since start / 7), clamped to the roadmap.
// Dates before the start resolve to week 0 and dates past the end stay on the
// last week. An unparseable start date resolves to week 0.
func (r *Roadmap) WeekIndex(date time.Time, loc *time.Location) int {
	if r == nil || len(r.Weeks) == 0 {
		return 0
	}
	start, err := r.Start(loc)
	if err != nil {
		return 0
	}
	days := timemath.DaysBetween(start, timemath.NormalizeDate(date, loc))
	return clamp(floorDiv(days, 7), 0, len(r.Weeks)-1)
}

// Week returns the week resolved for date, or nil when the roadmap is empty.
func (r *Roadmap) Week(date time.Time, loc *time.Location) *RoadmapWeek {
	if r == nil || len(r.Weeks) == 0 {
		return nil
	}
	return &r.Weeks[r.WeekIndex(date, loc)]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
