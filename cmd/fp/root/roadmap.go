package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusplanner/internal/ui"
)

func newRoadmapCmd() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the 24-week roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rm, current, err := svc.Roadmap()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rm == nil || len(rm.Weeks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no roadmap; run `fp roadmap rebuild`)"))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconMap, "Roadmap from "+rm.StartISO))
			for i, w := range rm.Weeks {
				if week > 0 && i != week-1 {
					continue
				}
				done := 0
				for j := range w.Tasks {
					if w.IsTaskDone(j) {
						done++
					}
				}
				marker := "  "
				title := w.Title
				if i == current {
					marker = "▶ "
					title = ui.Gold.Render(title)
				}
				fmt.Fprintf(out, "%s%s %s\n", marker, title, ui.Muted.Render(fmt.Sprintf("%s %d/%d", ui.Bar(done, len(w.Tasks), 10), done, len(w.Tasks))))
				if week > 0 || i == current {
					for j, t := range w.Tasks {
						fmt.Fprintf(out, "     %d. %s %s\n", j+1, ui.StatusIcon(w.IsTaskDone(j)), t)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "Show only this week (1-24) with its tasks")
	cmd.AddCommand(newRoadmapToggleCmd(), newRoadmapRebuildCmd())
	return cmd
}

func newRoadmapToggleCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "toggle <week> <task>",
		Short: "Mark a roadmap task done (1-based week and task numbers)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("week and task numbers are required")
			}
			for _, a := range args {
				if _, err := strconv.Atoi(a); err != nil {
					return fmt.Errorf("%q is not a number", a)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			week, _ := strconv.Atoi(args[0])
			task, _ := strconv.Atoi(args[1])
			if err := svc.ToggleRoadmapTask(ctx, week-1, task-1, !undo); err != nil {
				return err
			}
			state := "done"
			if undo {
				state = "todo"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Week %d task %d marked %s", ui.IconDone, week, task, state)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task as not done")
	return cmd
}

func newRoadmapRebuildCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Regenerate the roadmap anchored at a start date",
		Long:  "Regenerates all 24 weeks anchored at --start (default today). Roadmap task checkmarks are cleared.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := svc.ParseDate(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			rm, err := svc.RebuildRoadmap(ctx, day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Roadmap rebuilt from %s (%d weeks)", ui.IconSparkle, rm.StartISO, len(rm.Weeks))))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default today)")
	return cmd
}
