package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

func newPlanCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Auto-plan a day from your routine",
		Long:  "Rebuilds the day's schedule from the configured routine and the current roadmap week. Existing tasks of the day are replaced.",
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
			has, err := svc.DayHasProgress(key)
			if err != nil {
				return err
			}
			if has && !force {
				return fmt.Errorf("%w: %s (rerun with --force to replace them)", engine.ErrDayHasProgress, key)
			}

			tasks, err := svc.AutoPlan(ctx, date)
			if err != nil {
				var be engine.BlockError
				if errors.As(err, &be) {
					return fmt.Errorf("%w; adjust with `fp settings set`", err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPlan, "Planned "+key))
			printTimeline(out, tasks)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace a day that already has completed tasks")
	return cmd
}
