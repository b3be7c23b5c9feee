package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"focusplanner/internal/ui"
)

func newExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Long:  "Writes the whole planner state to focus-planner-YYYY-MM-DD.json in --out, or to stdout with --out -.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if dir == "-" {
				return svc.Export(cmd.OutOrStdout())
			}

			path := filepath.Join(dir, svc.ExportFileName())
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create export: %w", err)
			}
			if err := svc.Export(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBox+" Exported to "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", ".", "Directory to write into, or - for stdout")
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an exported JSON file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
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

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import: %w", err)
			}
			defer f.Close()

			if err := svc.Import(ctx, f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Imported "+args[0]))
			return nil
		},
	}

	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset erases every day, score and setting; rerun with --yes to confirm")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All data reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
