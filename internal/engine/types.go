package engine

import "strings"

type Category string

const (
	CategoryHealth        Category = "Health"
	CategoryPersonal      Category = "Personal"
	CategoryMeal          Category = "Meal"
	CategoryDeepWork      Category = "Deep Work"
	CategoryTyping        Category = "Typing"
	CategoryBreak         Category = "Break"
	CategoryCommunication Category = "Communication"
	CategoryStudy         Category = "Study"
	CategoryCommute       Category = "Commute"
	CategoryTuition       Category = "Tuition"
)

var builtinCategories = []Category{
	CategoryHealth,
	CategoryPersonal,
	CategoryMeal,
	CategoryDeepWork,
	CategoryTyping,
	CategoryBreak,
	CategoryCommunication,
	CategoryStudy,
	CategoryCommute,
	CategoryTuition,
}

// DefaultCategory is used for new tasks when no category is given.
const DefaultCategory Category = CategoryStudy

func BuiltinCategories() []Category {
	out := make([]Category, len(builtinCategories))
	copy(out, builtinCategories)
	return out
}

func (c Category) IsBuiltin() bool {
	for _, b := range builtinCategories {
		if c == b {
			return true
		}
	}
	return false
}

// IsFocus reports whether the category earns the focus multiplier.
func (c Category) IsFocus() bool {
	return c == CategoryDeepWork || c == CategoryStudy
}

// ParseCategory maps user input onto a built-in category, ignoring case and
// spacing ("deepwork", "deep-work"). Anything else is kept as a free category.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(input)
	if s == "" {
		return DefaultCategory
	}
	key := categoryKey(s)
	for _, b := range builtinCategories {
		if categoryKey(string(b)) == key {
			return b
		}
	}
	return Category(s)
}

func categoryKey(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

type TaskStatus string

const (
	StatusTodo TaskStatus = "todo"
	StatusDone TaskStatus = "done"
)

// Task is one block on a day's timeline. Start/End are "HH:MM" and may
// exceed 23:59 for blocks chained past midnight.
type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Category Category   `json:"category"`
	Start    *string    `json:"start"`
	End      *string    `json:"end"`
	Duration *int       `json:"duration"`
	Points   *int       `json:"points"`
	Fixed    bool       `json:"fixed"`
	Status   TaskStatus `json:"status"`
}

func (t Task) IsDone() bool { return t.Status == StatusDone }

type Score struct {
	Points        int `json:"points"`
	Completed     int `json:"completed"`
	FocusSessions int `json:"focusSessions"`
}

type DayRecord struct {
	Tasks []Task `json:"tasks"`
	Score Score  `json:"score"`
	Notes string `json:"notes"`
}

// FindTask returns a pointer into d.Tasks, or nil.
func (d *DayRecord) FindTask(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// HasProgress reports whether any task of the day has been completed.
func (d *DayRecord) HasProgress() bool {
	for _, t := range d.Tasks {
		if t.IsDone() {
			return true
		}
	}
	return false
}

type GlobalStats struct {
	TotalPoints        int     `json:"totalPoints"`
	TotalFocusSessions int     `json:"totalFocusSessions"`
	StreakDays         int     `json:"streakDays"`
	LastActiveDate     *string `json:"lastActiveDate"`
}

type Profile struct {
	Timezone string `json:"timezone"`
}

// State is the single root of everything that gets persisted.
type State struct {
	Profile     Profile               `json:"profile"`
	Preferences Preferences           `json:"preferences"`
	Roadmap     *Roadmap              `json:"roadmap"`
	Daily       map[string]*DayRecord `json:"daily"`
	Stats       GlobalStats           `json:"stats"`
}
