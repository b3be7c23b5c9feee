package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

type timerModel struct {
	ctx   context.Context
	svc   *engine.Service
	timer *engine.Timer

	// gen identifies the live tick loop; ticks from an older loop are dropped.
	gen      int
	sessions int
	lastLog  string
}

type tickMsg struct{ gen int }

type creditedMsg struct {
	dateKey string
	err     error
}

func newTimerModel(ctx context.Context, svc *engine.Service, t *engine.Timer) timerModel {
	return timerModel{ctx: ctx, svc: svc, timer: t, lastLog: "Press s to start."}
}

func (m timerModel) Init() tea.Cmd { return nil }

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m timerModel) creditCmd() tea.Cmd {
	return func() tea.Msg {
		key := m.svc.TodayKey()
		return creditedMsg{dateKey: key, err: m.svc.CreditFocusSession(m.ctx, key)}
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || m.timer.State() != engine.TimerRunning {
			return m, nil
		}
		if !m.timer.Tick() {
			return m, tick(m.gen)
		}
		if m.timer.Mode() == engine.TimerWork {
			m.lastLog = "Session complete, crediting…"
			return m, tea.Batch(m.creditCmd(), tea.Println("\a"))
		}
		m.lastLog = "Break over."
		return m, tea.Println("\a")
	case creditedMsg:
		if msg.err != nil {
			m.lastLog = "Credit failed: " + msg.err.Error()
			return m, nil
		}
		m.sessions++
		m.lastLog = fmt.Sprintf("Focus session credited to %s.", msg.dateKey)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", " ":
			if m.timer.State() == engine.TimerRunning {
				m.timer.Pause()
				m.lastLog = "Paused."
				return m, nil
			}
			if err := m.timer.Start(); err != nil {
				m.lastLog = "Cannot start: " + err.Error()
				return m, nil
			}
			m.gen++
			m.lastLog = "Running."
			return m, tick(m.gen)
		case "r":
			m.timer.Reset()
			m.gen++
			m.lastLog = "Reset."
			return m, nil
		case "1":
			return m.switchMode(engine.TimerWork)
		case "2":
			return m.switchMode(engine.TimerShortBreak)
		case "3":
			return m.switchMode(engine.TimerLongBreak)
		}
	}
	return m, nil
}

func (m timerModel) switchMode(mode engine.TimerMode) (tea.Model, tea.Cmd) {
	m.timer.SetMode(mode)
	m.gen++
	m.lastLog = "Mode: " + string(mode) + "."
	return m, nil
}

func (m timerModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTimer, "Focus Timer"))
	b.WriteString("\n\n")
	b.WriteString(ui.BigClock.Render(m.timer.Display()))
	b.WriteString("\n")
	b.WriteString(ui.LabelValue("Mode", modeLabel(m.timer.Mode())))
	b.WriteString("  ")
	b.WriteString(ui.LabelValue("State", ui.StatusText(string(m.timer.State()))))
	b.WriteString("  ")
	b.WriteString(ui.LabelValue("Sessions", m.sessions))
	b.WriteString("\n\n")
	b.WriteString(ui.Muted.Render("s/space: start/pause  r: reset  1: work  2: short  3: long  q: quit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func modeLabel(mode engine.TimerMode) string {
	switch mode {
	case engine.TimerShortBreak:
		return "short break"
	case engine.TimerLongBreak:
		return "long break"
	default:
		return "work"
	}
}
