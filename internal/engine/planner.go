package engine

import (
	"regexp"
	"time"

	"focusplanner/internal/timemath"
)

// Planned block lengths in minutes.
const (
	hygieneMinutes     = 30
	exerciseMinutes    = 45
	mindfulnessMinutes = 30
	breakfastMinutes   = 30
	deepWorkMinutes    = 90
	shortBreakMinutes  = 15
	lunchMinutes       = 45
	napMinutes         = 30
	reviewMinutes      = 30
	commuteMinutes     = 45
	unwindMinutes      = 40
	dinnerMinutes      = 30
	recallMinutes      = 30
	journalMinutes     = 20
)

type block struct {
	title    string
	category Category
	start    int
	end      int
}

// chain lays blocks back to back starting from the last anchor.
type chain struct {
	cursor int
	blocks []block
}

func (c *chain) anchor(at int) { c.cursor = at }

func (c *chain) next(title string, cat Category, minutes int) {
	c.span(title, cat, c.cursor, c.cursor+minutes)
}

func (c *chain) span(title string, cat Category, start, end int) {
	c.blocks = append(c.blocks, block{title: title, category: cat, start: start, end: end})
	c.cursor = end
}

// PlanDay builds the full wake-to-sleep schedule for date.
//
// Blocks are chained from the previous block's end except for the meal and
// tuition anchors, which start at their configured times. Gaps in front of an
// anchor are idle time and are not modelled. Deep work blocks are suffixed
// with the roadmap week resolved for date. The result is deterministic: the
// same inputs always produce the same tasks and identifiers.
func PlanDay(date time.Time, prefs Preferences, roadmap *Roadmap, loc *time.Location) ([]Task, error) {
	c, err := prefs.resolve()
	if err != nil {
		return nil, err
	}

	var ch chain
	ch.anchor(c.wake)
	ch.next("Wake + Hygiene + Water", CategoryHealth, hygieneMinutes)
	ch.next("Exercise (walk/yoga/HIIT)", CategoryHealth, exerciseMinutes)
	ch.next("Mindfulness + Plan day", CategoryPersonal, mindfulnessMinutes)

	ch.anchor(c.breakfast)
	ch.next("Breakfast", CategoryMeal, breakfastMinutes)
	ch.next("Deep Work 1: Python/Stats", CategoryDeepWork, deepWorkMinutes)
	ch.next("Short Break", CategoryBreak, shortBreakMinutes)
	ch.next("Deep Work 2: SQL/Projects", CategoryDeepWork, deepWorkMinutes)
	ch.next("Typing Practice", CategoryTyping, c.typingMinutes)

	ch.anchor(c.lunch)
	ch.next("Lunch", CategoryMeal, lunchMinutes)
	ch.next("Nap/Walk", CategoryBreak, napMinutes)
	ch.next("Communication Practice", CategoryCommunication, c.commMinutes)
	ch.next("Light Review / Flashcards", CategoryStudy, reviewMinutes)

	ch.anchor(c.tuitionStart - commuteMinutes)
	ch.next("Commute/Prep for Tuition", CategoryCommute, commuteMinutes)
	ch.span("Tuition", CategoryTuition, c.tuitionStart, c.tuitionEnd)
	ch.next("Return/Unwind", CategoryCommute, unwindMinutes)

	ch.anchor(c.dinner)
	ch.next("Dinner", CategoryMeal, dinnerMinutes)
	ch.next("Active Recall Review", CategoryStudy, recallMinutes)
	ch.next("Plan Tomorrow + Journal", CategoryPersonal, journalMinutes)
	ch.span("Wind down / Reading", CategoryPersonal, ch.cursor, c.sleep)

	topic := DefaultTopic
	if w := roadmap.Week(date, loc); w != nil && w.Title != "" {
		topic = w.Title
	}

	tasks := make([]Task, 0, len(ch.blocks))
	for _, b := range ch.blocks {
		start, end := timemath.Format(b.start), timemath.Format(b.end)
		if b.end <= b.start {
			return nil, BlockError{Title: b.title, Start: start, End: end}
		}
		title := b.title
		if b.category == CategoryDeepWork {
			title = title + " • " + topic
		}
		duration := b.end - b.start
		tasks = append(tasks, Task{
			ID:       PlannedTaskID(title, start),
			Title:    title,
			Category: b.category,
			Start:    &start,
			End:      &end,
			Duration: &duration,
			Fixed:    true,
			Status:   StatusTodo,
		})
	}
	return tasks, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// PlannedTaskID derives a block identifier from its title and start time.
// Two blocks with the same title and start share an identifier; the planner
// never emits such a pair within one day.
func PlannedTaskID(title, start string) string {
	return whitespaceRun.ReplaceAllString("t_"+title+"_"+start, "_")
}
