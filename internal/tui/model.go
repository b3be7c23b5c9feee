package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	date    time.Time
	day     engine.DayRecord
	stats   engine.StatsSummary
	week    *engine.RoadmapWeek
	weekIdx int

	selected int
	// confirmReplan is set after a first "p" on a day with completed tasks.
	confirmReplan bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	day     engine.DayRecord
	stats   engine.StatsSummary
	week    *engine.RoadmapWeek
	weekIdx int
	err     error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type plannedMsg struct {
	count int
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service, date time.Time) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		date:    date,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) dateKey() string { return m.svc.DateKey(m.date) }

func (m boardModel) loadCmd() tea.Cmd {
	key := m.dateKey()
	date := m.date
	return func() tea.Msg {
		day, err := m.svc.Day(key)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := m.svc.Stats()
		if err != nil {
			return loadedMsg{err: err}
		}
		rm, _, err := m.svc.Roadmap()
		if err != nil {
			return loadedMsg{err: err}
		}
		msg := loadedMsg{day: day, stats: stats}
		if w := rm.Week(date, m.svc.Location()); w != nil {
			msg.week = w
			msg.weekIdx = rm.WeekIndex(date, m.svc.Location())
		}
		return msg
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	key := m.dateKey()
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, key, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) planCmd() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		tasks, err := m.svc.AutoPlan(m.ctx, date)
		return plannedMsg{count: len(tasks), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.day = msg.day
		m.stats = msg.stats
		m.week = msg.week
		m.weekIdx = msg.weekIdx
		if m.selected >= len(m.day.Tasks) {
			m.selected = len(m.day.Tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyDone {
			m.lastLog = "Already done."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed: +%d pts (day %d, total %d, streak %d)", msg.res.Points, msg.res.DayPoints, msg.res.TotalPoints, msg.res.StreakDays)
		return m, m.loadCmd()
	case plannedMsg:
		if msg.err != nil {
			var be engine.BlockError
			if errors.As(msg.err, &be) {
				m.lastLog = "Plan failed: " + be.Error()
			} else {
				m.lastLog = "Plan failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.selected = 0
		m.lastLog = fmt.Sprintf("Planned %d blocks for %s.", msg.count, m.dateKey())
		return m, m.loadCmd()
	case tea.KeyMsg:
		key := msg.String()
		if key != "p" {
			m.confirmReplan = false
		}
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.day.Tasks)-1 {
				m.selected++
			}
			return m, nil
		case "left", "h":
			return m.shiftDay(-1)
		case "right", "l":
			return m.shiftDay(1)
		case "p":
			if m.day.HasProgress() && !m.confirmReplan {
				m.confirmReplan = true
				m.lastLog = "Day has completed tasks; press p again to replan."
				return m, nil
			}
			m.confirmReplan = false
			m.lastLog = "Planning…"
			return m, m.planCmd()
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.day.Tasks) {
				return m, nil
			}
			t := m.day.Tasks[m.selected]
			if t.IsDone() {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", t.Title)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) shiftDay(n int) (tea.Model, tea.Cmd) {
	m.date = m.date.AddDate(0, 0, n)
	m.selected = 0
	m.loading = true
	m.lastLog = "Showing " + m.dateKey() + "."
	return m, m.loadCmd()
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := len(linesLeft)
	if len(linesRight) > rows {
		rows = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	label := m.date.Format("Mon 02 Jan 2006")
	if m.dateKey() == m.svc.TodayKey() {
		label += " (today)"
	}
	done := 0
	for _, t := range m.day.Tasks {
		if t.IsDone() {
			done++
		}
	}
	bar := ui.Bar(done, len(m.day.Tasks), 20)
	return fmt.Sprintf("Focus Planner | %s | %d/%d %s | %d pts | streak %d",
		label, done, len(m.day.Tasks), bar, m.day.Score.Points, m.stats.StreakDays)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Roadmap"}
	if m.week == nil {
		lines = append(lines, "(no roadmap)")
	} else {
		done := 0
		for i := range m.week.Tasks {
			if m.week.IsTaskDone(i) {
				done++
			}
		}
		lines = append(lines, m.week.Title)
		lines = append(lines, fmt.Sprintf("%s %d/%d", ui.Bar(done, len(m.week.Tasks), 14), done, len(m.week.Tasks)))
		for i, t := range m.week.Tasks {
			mark := "[ ]"
			if m.week.IsTaskDone(i) {
				mark = "[x]"
			}
			lines = append(lines, fmt.Sprintf("%s %s", mark, t))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Stats")
	lines = append(lines, fmt.Sprintf("- total %d pts", m.stats.TotalPoints))
	lines = append(lines, fmt.Sprintf("- this week %d pts", m.stats.WeekPoints))
	lines = append(lines, fmt.Sprintf("- focus sessions %d", m.stats.TotalFocusSessions))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- ←/→ or h/l: day")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- p: auto-plan day")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{"Timeline"}
	if len(m.day.Tasks) == 0 {
		out = append(out, "(nothing planned, press p)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.day.Tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.IsDone() {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (%s, %d pts)", cursor, mark, timeRange(t), t.Title, t.Category, engine.EffectivePoints(t)))
	}
	if m.day.Notes != "" {
		out = append(out, "", "Notes", m.day.Notes)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

// timeRange renders "HH:MM-HH:MM", padding missing ends so columns line up.
func timeRange(t engine.Task) string {
	start, end := "--:--", "--:--"
	if t.Start != nil {
		start = *t.Start
	}
	if t.End != nil {
		end = *t.End
	}
	return start + "-" + end
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
