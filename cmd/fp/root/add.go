package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"focusplanner/internal/engine"
	"focusplanner/internal/ui"
)

// taskFlags are shared by add and edit.
type taskFlags struct {
	category string
	start    string
	end      string
	duration int
	points   int
	fixed    bool
}

func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.category, "category", "c", "", categoryHelp())
	fs.StringVarP(&f.start, "start", "s", "", "Start time HH:MM")
	fs.StringVarP(&f.end, "end", "e", "", "End time HH:MM")
	fs.IntVarP(&f.duration, "duration", "d", 0, "Duration in minutes (derived from start/end when both are set)")
	fs.IntVarP(&f.points, "points", "p", 0, "Explicit points (overrides the computed award)")
	fs.BoolVar(&f.fixed, "fixed", false, "Mark the task as a fixed block")
}

func categoryHelp() string {
	cats := engine.BuiltinCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return "Category (" + strings.Join(names, ", ") + ", or any label)"
}

// apply copies the flags the user actually set onto in.
func (f *taskFlags) apply(fs *pflag.FlagSet, in *engine.TaskInput) {
	if fs.Changed("category") {
		in.Category = engine.ParseCategory(f.category)
	}
	if fs.Changed("start") {
		in.Start = f.start
	}
	if fs.Changed("end") {
		in.End = f.end
	}
	if fs.Changed("duration") {
		d := f.duration
		in.Duration = &d
	} else if fs.Changed("start") || fs.Changed("end") {
		in.Duration = nil
	}
	if fs.Changed("points") {
		p := f.points
		in.Points = &p
	}
	if fs.Changed("fixed") {
		in.Fixed = f.fixed
	}
}

func newAddCmd() *cobra.Command {
	var tf taskFlags

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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
			in := engine.TaskInput{Title: args[0], Category: engine.DefaultCategory}
			tf.apply(cmd.Flags(), &in)

			t, err := svc.AddTask(ctx, key, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Added %s to %s", ui.IconPlus, t.Title, key)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", t.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", engine.EffectivePoints(t)))
			return nil
		},
	}

	tf.register(cmd.Flags())
	return cmd
}

func newEditCmd() *cobra.Command {
	var tf taskFlags
	var title string

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Edit a task (by list number or id)",
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
			cur, err := resolveTask(svc, key, args[0])
			if err != nil {
				return err
			}
			in := engine.InputFromTask(cur)
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			tf.apply(cmd.Flags(), &in)

			t, err := svc.EditTask(ctx, key, cur.ID, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Updated %s", ui.IconPencil, t.Title)))
			printTimeline(cmd.OutOrStdout(), []engine.Task{t})
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	tf.register(cmd.Flags())
	return cmd
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task (by list number or id)",
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
			if err := svc.DeleteTask(ctx, key, t.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%s Deleted %s", ui.IconTrash, t.Title)))
			return nil
		},
	}

	return cmd
}
