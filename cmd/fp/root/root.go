package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusplanner/internal/config"
	"focusplanner/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig string
	flagDate   string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fp",
		Short:         "Focus Planner: daily schedule, roadmap and points tracker",
		Long:          "Focus Planner builds a timed daily schedule from your routine, tracks a 24-week study roadmap and scores completed blocks.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath(), "Config file")
	cmd.PersistentFlags().StringVar(&flagDate, "date", "", "Day to act on (YYYY-MM-DD, default today)")

	cmd.AddCommand(
		newPlanCmd(),
		newDayCmd(),
		newDoneCmd(),
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newRoadmapCmd(),
		newStatsCmd(),
		newSettingsCmd(),
		newTimerCmd(),
		newBoardCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newWatchCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
