package engine

import "fmt"

type TimerMode string

const (
	TimerWork       TimerMode = "work"
	TimerShortBreak TimerMode = "short"
	TimerLongBreak  TimerMode = "long"
)

func ParseTimerMode(input string) (TimerMode, error) {
	switch m := TimerMode(input); m {
	case TimerWork, TimerShortBreak, TimerLongBreak:
		return m, nil
	case "":
		return TimerWork, nil
	default:
		return "", fmt.Errorf("invalid timer mode: %q", input)
	}
}

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
)

// Timer is a pomodoro countdown advanced by one-second ticks.
// It fires a single completion when a running countdown reaches zero.
type Timer struct {
	prefs     Preferences
	mode      TimerMode
	state     TimerState
	remaining int
}

func NewTimer(prefs Preferences, mode TimerMode) *Timer {
	t := &Timer{prefs: prefs}
	t.SetMode(mode)
	return t
}

// SetMode switches mode, stops the countdown and reloads its full length.
func (t *Timer) SetMode(mode TimerMode) {
	t.mode = mode
	t.Reset()
}

// Reset stops the countdown and reloads the current mode's full length.
func (t *Timer) Reset() {
	t.state = TimerIdle
	t.remaining = t.modeMinutes() * 60
}

// Start runs the countdown. A finished countdown restarts from full length.
// A mode without a positive length refuses to start.
func (t *Timer) Start() error {
	if t.state == TimerRunning {
		return nil
	}
	if t.modeMinutes() <= 0 {
		return PreferenceError{Field: t.modeField(), Value: fmt.Sprint(t.modeMinutes()), Reason: "must be a positive number of minutes"}
	}
	if t.remaining <= 0 {
		t.remaining = t.modeMinutes() * 60
	}
	t.state = TimerRunning
	return nil
}

// Pause halts ticking without firing completion; Start resumes.
func (t *Timer) Pause() {
	if t.state == TimerRunning {
		t.state = TimerPaused
	}
}

// Tick advances a running countdown by one second and reports whether this
// tick completed it. Idle and paused timers ignore ticks.
func (t *Timer) Tick() bool {
	if t.state != TimerRunning {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = TimerIdle
	return true
}

func (t *Timer) Mode() TimerMode       { return t.mode }
func (t *Timer) State() TimerState     { return t.state }
func (t *Timer) RemainingSeconds() int { return t.remaining }

// Display renders the remaining time as "MM:SS".
func (t *Timer) Display() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}

func (t *Timer) modeMinutes() int {
	switch t.mode {
	case TimerShortBreak:
		return t.prefs.PomodoroShortBreak
	case TimerLongBreak:
		return t.prefs.PomodoroLongBreak
	default:
		return t.prefs.PomodoroWork
	}
}

func (t *Timer) modeField() string {
	switch t.mode {
	case TimerShortBreak:
		return "pomodoroShortBreak"
	case TimerLongBreak:
		return "pomodoroLongBreak"
	default:
		return "pomodoroWork"
	}
}
