package engine

import (
	"fmt"

	"focusplanner/internal/timemath"
)

// Preferences drive the day planner and the focus timer.
// JSON names are kept stable so exported files stay importable.
type Preferences struct {
	WakeTime             string `json:"wakeTime"`
	SleepTime            string `json:"sleepTime"`
	Breakfast            string `json:"breakfast"`
	Lunch                string `json:"lunch"`
	Dinner               string `json:"dinner"`
	TuitionStart         string `json:"tuitionStart"`
	TuitionEnd           string `json:"tuitionEnd"`
	TypingMinutes        int    `json:"typingMinutes"`
	CommunicationMinutes int    `json:"communicationMinutes"`
	PomodoroWork         int    `json:"pomodoroWork"`
	PomodoroShortBreak   int    `json:"pomodoroShortBreak"`
	PomodoroLongBreak    int    `json:"pomodoroLongBreak"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		WakeTime:             "06:30",
		SleepTime:            "23:30",
		Breakfast:            "08:30",
		Lunch:                "13:00",
		Dinner:               "21:10",
		TuitionStart:         "16:00",
		TuitionEnd:           "20:30",
		TypingMinutes:        30,
		CommunicationMinutes: 30,
		PomodoroWork:         25,
		PomodoroShortBreak:   5,
		PomodoroLongBreak:    15,
	}
}

// clock is Preferences with every wall-clock field resolved to minutes.
type clock struct {
	wake, sleep                int
	breakfast, lunch, dinner   int
	tuitionStart, tuitionEnd   int
	typingMinutes, commMinutes int
}

// Validate checks every time is a real minute of the day, tuition starts before
// it ends and all durations are positive.
func (p Preferences) Validate() error {
	_, err := p.resolve()
	return err
}

func (p Preferences) resolve() (clock, error) {
	var c clock
	times := []struct {
		field string
		value string
		dst   *int
	}{
		{"wakeTime", p.WakeTime, &c.wake},
		{"sleepTime", p.SleepTime, &c.sleep},
		{"breakfast", p.Breakfast, &c.breakfast},
		{"lunch", p.Lunch, &c.lunch},
		{"dinner", p.Dinner, &c.dinner},
		{"tuitionStart", p.TuitionStart, &c.tuitionStart},
		{"tuitionEnd", p.TuitionEnd, &c.tuitionEnd},
	}
	for _, t := range times {
		m, err := timemath.ParseMinuteOfDay(t.value)
		if err != nil {
			return clock{}, PreferenceError{Field: t.field, Value: t.value, Reason: "want HH:MM between 00:00 and 23:59"}
		}
		*t.dst = int(m)
	}
	if c.tuitionStart >= c.tuitionEnd {
		return clock{}, PreferenceError{Field: "tuitionEnd", Value: p.TuitionEnd, Reason: "must be after tuitionStart " + p.TuitionStart}
	}

	durations := []struct {
		field string
		value int
	}{
		{"typingMinutes", p.TypingMinutes},
		{"communicationMinutes", p.CommunicationMinutes},
		{"pomodoroWork", p.PomodoroWork},
		{"pomodoroShortBreak", p.PomodoroShortBreak},
		{"pomodoroLongBreak", p.PomodoroLongBreak},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return clock{}, PreferenceError{Field: d.field, Value: fmt.Sprint(d.value), Reason: "must be a positive number of minutes"}
		}
	}
	c.typingMinutes = p.TypingMinutes
	c.commMinutes = p.CommunicationMinutes
	return c, nil
}

// PreferencesPatch carries a partial settings update. Empty strings and
// non-positive numbers keep the current value.
type PreferencesPatch struct {
	WakeTime             string
	SleepTime            string
	Breakfast            string
	Lunch                string
	Dinner               string
	TuitionStart         string
	TuitionEnd           string
	TypingMinutes        int
	CommunicationMinutes int
	PomodoroWork         int
	PomodoroShortBreak   int
	PomodoroLongBreak    int
}

// Apply returns p with the non-empty fields of patch applied.
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	str := func(cur, next string) string {
		if next == "" {
			return cur
		}
		return next
	}
	num := func(cur, next int) int {
		if next <= 0 {
			return cur
		}
		return next
	}
	p.WakeTime = str(p.WakeTime, patch.WakeTime)
	p.SleepTime = str(p.SleepTime, patch.SleepTime)
	p.Breakfast = str(p.Breakfast, patch.Breakfast)
	p.Lunch = str(p.Lunch, patch.Lunch)
	p.Dinner = str(p.Dinner, patch.Dinner)
	p.TuitionStart = str(p.TuitionStart, patch.TuitionStart)
	p.TuitionEnd = str(p.TuitionEnd, patch.TuitionEnd)
	p.TypingMinutes = num(p.TypingMinutes, patch.TypingMinutes)
	p.CommunicationMinutes = num(p.CommunicationMinutes, patch.CommunicationMinutes)
	p.PomodoroWork = num(p.PomodoroWork, patch.PomodoroWork)
	p.PomodoroShortBreak = num(p.PomodoroShortBreak, patch.PomodoroShortBreak)
	p.PomodoroLongBreak = num(p.PomodoroLongBreak, patch.PomodoroLongBreak)
	return p
}
