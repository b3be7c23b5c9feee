package root

import (
	"fmt"
	"io"
	"strconv"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

func printTimeline(w io.Writer, tasks []engine.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("(nothing planned; run `fp plan`)"))
		return
	}
	for i, t := range tasks {
		title := t.Title
		if t.IsDone() {
			title = ui.Done.Render(title)
		}
		fmt.Fprintf(w, "%2d. %s %s %s %s %s\n",
			i+1,
			ui.StatusIcon(t.IsDone()),
			ui.Key.Render(timeRange(t)),
			title,
			ui.CategoryTag(string(t.Category)),
			ui.Muted.Render(fmt.Sprintf("%d pts", engine.EffectivePoints(t))),
		)
	}
}

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

// resolveTask accepts either a 1-based position in the day listing or a task id.
func resolveTask(svc *engine.Service, dateKey, ref string) (engine.Task, error) {
	day, err := svc.Day(dateKey)
	if err != nil {
		return engine.Task{}, err
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(day.Tasks) {
		return day.Tasks[n-1], nil
	}
	for _, t := range day.Tasks {
		if t.ID == ref {
			return t, nil
		}
	}
	return engine.Task{}, fmt.Errorf("%w: %s on %s", engine.ErrTaskNotFound, ref, dateKey)
}
