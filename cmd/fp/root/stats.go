package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusplanner/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show points, streak and focus sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.Stats()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChartBar, "Stats"))
			fmt.Fprintln(out, ui.LabelValue("Total points", s.TotalPoints))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d pts", s.TodayPoints)))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%d pts", s.WeekPoints)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, s.StreakDays)))
			fmt.Fprintln(out, ui.LabelValue("Focus sessions", s.TotalFocusSessions))
			if s.LastActiveDate != "" {
				fmt.Fprintln(out, ui.LabelValue("Last active", s.LastActiveDate))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Last 7 days"))
			best := 0
			for _, d := range s.LastDays {
				if d.Points > best {
					best = d.Points
				}
			}
			for _, d := range s.LastDays {
				fmt.Fprintf(out, "%s %s %d\n", ui.Muted.Render(d.Date), ui.Bar(d.Points, best, 20), d.Points)
			}
			return nil
		},
	}

	return cmd
}
