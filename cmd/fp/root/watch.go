package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"focusplanner/internal/scheduler"
	"focusplanner/internal/ui"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground and plan each new day on schedule",
		Long:  "Plans today immediately if needed, then again on every tick of plan_cron until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := scheduler.New(a.svc, a.cfg.PlanCron, a.cfg.Location(), a.log)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTimer, fmt.Sprintf("Watching (%s, %s); Ctrl+C to stop", a.cfg.PlanCron, a.cfg.Timezone)))
			return s.Run(ctx)
		},
	}

	return cmd
}
