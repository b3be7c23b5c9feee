package root

import (
	"context"

	"github.com/spf13/cobra"

	"focusplanner/internal/engine"
	"focusplanner/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day board",
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
			return tui.RunBoard(ctx, svc, date, cmd.OutOrStdout())
		},
	}

	return cmd
}

func newTimerCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the focus timer",
		Long:  "Runs a pomodoro countdown. Each finished work session is credited to today's focus sessions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := engine.ParseTimerMode(mode)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunTimer(ctx, svc, m, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "work", "Timer mode (work|short|long)")
	return cmd
}
