package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoaded          = errors.New("state not loaded")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTask        = errors.New("invalid task")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrDayHasProgress     = errors.New("day already has completed tasks")
	ErrWeekOutOfRange     = errors.New("roadmap week out of range")
	ErrImport             = errors.New("import failed")
)

// PreferenceError describes a single rejected preference field.
type PreferenceError struct {
	Field  string
	Value  string
	Reason string
}

func (e PreferenceError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("preference %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("preference %s=%q: %s", e.Field, e.Value, e.Reason)
}

func (e PreferenceError) Unwrap() error { return ErrInvalidPreferences }

// BlockError is returned when a planned block would end at or before its start.
type BlockError struct {
	Title string
	Start string
	End   string
}

func (e BlockError) Error() string {
	return fmt.Sprintf("block %q would run %s-%s; check the configured times", e.Title, e.Start, e.End)
}

func (e BlockError) Unwrap() error { return ErrInvalidPreferences }
