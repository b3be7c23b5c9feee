package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focusplanner/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Complete a task (by list number or id)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task is required")
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

			_, key, err := targetDate(svc)
			if err != nil {
				return err
			}
			t, err := resolveTask(svc, key, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteTask(ctx, key, t.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyDone {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconInfo+" Already done: "+t.Title))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s (+%d pts)", ui.IconDone, t.Title, res.Points)))
			fmt.Fprintln(out, ui.LabelValue("Day", fmt.Sprintf("%d pts", res.DayPoints)))
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%d pts", res.TotalPoints)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, res.StreakDays)))
			return nil
		},
	}

	return cmd
}
