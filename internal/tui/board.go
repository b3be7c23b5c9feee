package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusplanner/internal/engine"
)

// RunBoard opens the interactive day board on date.
func RunBoard(ctx context.Context, svc *engine.Service, date time.Time, out io.Writer) error {
	m := newBoardModel(ctx, svc, date)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunTimer opens the focus timer in mode. Finished work sessions are credited
// to the day current at the moment they finish.
func RunTimer(ctx context.Context, svc *engine.Service, mode engine.TimerMode, out io.Writer) error {
	prefs, err := svc.Preferences()
	if err != nil {
		return err
	}
	m := newTimerModel(ctx, svc, engine.NewTimer(prefs, mode))
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err = p.Run()
	return err
}
