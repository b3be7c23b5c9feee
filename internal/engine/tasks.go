package engine

import (
	"fmt"
	"sort"
	"strings"

	"focusplanner/internal/timemath"
)

// TaskInput is the user-editable part of a task.
type TaskInput struct {
	Title    string
	Category Category
	Start    string
	End      string
	Duration *int
	Points   *int
	Fixed    bool
}

// InputFromTask seeds an edit with the current values of t.
func InputFromTask(t Task) TaskInput {
	in := TaskInput{
		Title:    t.Title,
		Category: t.Category,
		Duration: t.Duration,
		Points:   t.Points,
		Fixed:    t.Fixed,
	}
	if t.Start != nil {
		in.Start = *t.Start
	}
	if t.End != nil {
		in.End = *t.End
	}
	return in
}

// NewTask validates in and builds a todo task with the given id.
// When both start and end are set the duration is derived from them, and an
// explicit duration must agree.
func NewTask(id string, in TaskInput) (Task, error) {
	return buildTask(id, in, nil)
}

// rebuildTask is NewTask for an edit of prev. A start or end equal to the
// value already stored on prev is accepted past 24:00, since the planner
// writes blocks that run over midnight without wrapping.
func rebuildTask(prev Task, in TaskInput) (Task, error) {
	return buildTask(prev.ID, in, &prev)
}

func buildTask(id string, in TaskInput, prev *Task) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	cat := in.Category
	if strings.TrimSpace(string(cat)) == "" {
		cat = DefaultCategory
	}

	t := Task{
		ID:       id,
		Title:    title,
		Category: cat,
		Fixed:    in.Fixed,
		Status:   StatusTodo,
	}

	var prevStart, prevEnd *string
	if prev != nil {
		prevStart, prevEnd = prev.Start, prev.End
	}
	start, err := optionalClock("start", in.Start, prevStart)
	if err != nil {
		return Task{}, err
	}
	end, err := optionalClock("end", in.End, prevEnd)
	if err != nil {
		return Task{}, err
	}
	if in.Duration != nil && *in.Duration <= 0 {
		return Task{}, fmt.Errorf("%w: duration must be positive", ErrInvalidTask)
	}
	if in.Points != nil && *in.Points < 0 {
		return Task{}, fmt.Errorf("%w: points must not be negative", ErrInvalidTask)
	}

	if start != nil && end != nil {
		if *end <= *start {
			return Task{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidTask, in.End, in.Start)
		}
		span := *end - *start
		if in.Duration != nil && *in.Duration != span {
			return Task{}, fmt.Errorf("%w: duration %d does not match %s-%s", ErrInvalidTask, *in.Duration, in.Start, in.End)
		}
		t.Duration = &span
	} else if in.Duration != nil {
		d := *in.Duration
		t.Duration = &d
	}
	if start != nil {
		s := timemath.Format(*start)
		t.Start = &s
	}
	if end != nil {
		e := timemath.Format(*end)
		t.End = &e
	}
	if in.Points != nil {
		p := *in.Points
		t.Points = &p
	}
	return t, nil
}

// optionalClock parses a task time as minutes since midnight. Typed values
// must fall within a single day; a value identical to stored is only checked
// for format.
func optionalClock(field, value string, stored *string) (*int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	if stored != nil && strings.TrimSpace(value) == *stored {
		m, err := timemath.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTask, field, err)
		}
		return &m, nil
	}
	m, err := timemath.ParseMinuteOfDay(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTask, field, err)
	}
	v := int(m)
	return &v, nil
}

// unscheduledSortKey places tasks without a start after every timed task.
const unscheduledSortKey = 9999

// SortTasks orders tasks by start time; untimed and unparseable starts go last.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return startKey(tasks[i]) < startKey(tasks[j])
	})
}

func startKey(t Task) int {
	if t.Start == nil {
		return unscheduledSortKey
	}
	m, err := timemath.Parse(*t.Start)
	if err != nil {
		return unscheduledSortKey
	}
	return m
}
