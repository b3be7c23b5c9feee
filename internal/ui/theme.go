package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Planner theme (CLI + TUI).

const (
	IconPlan     = "🗓️"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTodo     = "⬜"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconMap      = "🗺️"
	IconTimer    = "⏱️"
	IconPencil   = "✏️"
	IconTrash    = "🗑️"
	IconBox      = "📦"
	IconChartBar = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cTeal    = lipgloss.Color("37")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)
	Done  = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	BigClock    = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Padding(1, 4).BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cPrimary)
)

// categoryColors tints the built-in categories; free categories stay muted.
var categoryColors = map[string]lipgloss.Color{
	"health":        cGood,
	"personal":      cAccent,
	"meal":          cWarn,
	"deep work":     cPrimary,
	"typing":        cTeal,
	"break":         cMuted,
	"communication": cTeal,
	"study":         cPrimary,
	"commute":       cMuted,
	"tuition":       cGold,
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "done":
		return Good.Render("done")
	case "todo":
		return Warn.Render("todo")
	case "running":
		return H2.Render("running")
	case "paused":
		return Warn.Render("paused")
	default:
		return Muted.Render(status)
	}
}

func StatusIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

// CategoryTag renders a category as a colored bracketed tag.
func CategoryTag(category string) string {
	c, ok := categoryColors[strings.ToLower(category)]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Foreground(c).Render("[" + category + "]")
}

// Bar renders a fixed-width ASCII progress bar for value out of total.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
