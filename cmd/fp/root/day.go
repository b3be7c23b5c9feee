package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusplanner/internal/ui"
)

func newDayCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's timeline",
		Long:  "Shows the timeline of a day. Today is planned automatically the first time it is opened.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			date, key, err := targetDate(svc)
			if err != nil {
				return err
			}
			if key == svc.TodayKey() {
				if _, err := svc.EnsurePlanned(ctx, date); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("notes") {
				if err := svc.SetNotes(ctx, key, notes); err != nil {
					return err
				}
			}

			day, err := svc.Day(key)
			if err != nil {
				return err
			}
			rm, _, err := svc.Roadmap()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPlan, date.Format("Monday 02 Jan 2006")))
			if w := rm.Week(date, svc.Location()); w != nil {
				fmt.Fprintln(out, ui.LabelValue("Roadmap", w.Title))
			}
			done := 0
			for _, t := range day.Tasks {
				if t.IsDone() {
					done++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%s %d/%d", ui.Bar(done, len(day.Tasks), 20), done, len(day.Tasks))))
			fmt.Fprintln(out, ui.LabelValue("Points", day.Score.Points))
			fmt.Fprintln(out, ui.LabelValue("Focus sessions", day.Score.FocusSessions))
			fmt.Fprintln(out, "")
			printTimeline(out, day.Tasks)
			if day.Notes != "" {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Notes"))
				fmt.Fprintln(out, day.Notes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Replace the day's notes")
	return cmd
}
