package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

func printPreferences(out io.Writer, p engine.Preferences) {
	fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Routine"))
	fmt.Fprintln(out, ui.LabelValue("Wake", p.WakeTime))
	fmt.Fprintln(out, ui.LabelValue("Sleep", p.SleepTime))
	fmt.Fprintln(out, ui.LabelValue("Breakfast", p.Breakfast))
	fmt.Fprintln(out, ui.LabelValue("Lunch", p.Lunch))
	fmt.Fprintln(out, ui.LabelValue("Dinner", p.Dinner))
	fmt.Fprintln(out, ui.LabelValue("Tuition", p.TuitionStart+"-"+p.TuitionEnd))
	fmt.Fprintln(out, ui.LabelValue("Typing", fmt.Sprintf("%d min", p.TypingMinutes)))
	fmt.Fprintln(out, ui.LabelValue("Communication", fmt.Sprintf("%d min", p.CommunicationMinutes)))
	fmt.Fprintln(out, ui.LabelValue("Pomodoro", fmt.Sprintf("%d/%d/%d min", p.PomodoroWork, p.PomodoroShortBreak, p.PomodoroLongBreak)))
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the routine used for planning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Preferences()
			if err != nil {
				return err
			}
			printPreferences(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	var patch engine.PreferencesPatch

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change routine settings",
		Long:  "Changes only the given settings. Times are HH:MM, durations are minutes. Existing day plans are not touched; run `fp plan` to apply.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.UpdatePreferences(ctx, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Settings saved"))
			printPreferences(cmd.OutOrStdout(), p)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&patch.WakeTime, "wake", "", "Wake time")
	f.StringVar(&patch.SleepTime, "sleep", "", "Sleep time")
	f.StringVar(&patch.Breakfast, "breakfast", "", "Breakfast time")
	f.StringVar(&patch.Lunch, "lunch", "", "Lunch time")
	f.StringVar(&patch.Dinner, "dinner", "", "Dinner time")
	f.StringVar(&patch.TuitionStart, "tuition-start", "", "Tuition start time")
	f.StringVar(&patch.TuitionEnd, "tuition-end", "", "Tuition end time")
	f.IntVar(&patch.TypingMinutes, "typing", 0, "Typing practice minutes")
	f.IntVar(&patch.CommunicationMinutes, "communication", 0, "Communication practice minutes")
	f.IntVar(&patch.PomodoroWork, "pomodoro-work", 0, "Focus timer work minutes")
	f.IntVar(&patch.PomodoroShortBreak, "pomodoro-short", 0, "Focus timer short break minutes")
	f.IntVar(&patch.PomodoroLongBreak, "pomodoro-long", 0, "Focus timer long break minutes")
	return cmd
}
