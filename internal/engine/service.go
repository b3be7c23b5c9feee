package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"focusplanner/internal/storage"
	"focusplanner/internal/timemath"
)

// StateStore persists the serialized state under a single key.
// Get returns storage.ErrNotFound when nothing has been saved yet.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type ServiceOptions struct {
	Logger   *slog.Logger
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service owns the planner state. Every mutating call applies its change to a
// copy, persists it and only then swaps it in, so a failed call leaves both
// the stored and the in-memory state untouched.
type Service struct {
	mu    sync.Mutex
	store StateStore
	log   *slog.Logger
	loc   *time.Location
	now   func() time.Time
	state *State
}

func NewService(store StateStore, opts ServiceOptions) *Service {
	s := &Service{
		store: store,
		log:   opts.Logger,
		loc:   opts.Location,
		now:   opts.Now,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Location() *time.Location { return s.loc }

// Today returns the current calendar day in the reference zone.
func (s *Service) Today() time.Time { return timemath.NormalizeDate(s.now(), s.loc) }

func (s *Service) TodayKey() string { return timemath.ISODate(s.now(), s.loc) }

// DateKey normalizes date to its day key in the reference zone.
func (s *Service) DateKey(date time.Time) string { return timemath.ISODate(date, s.loc) }

// ParseDate parses a "YYYY-MM-DD" day key; an empty string means today.
func (s *Service) ParseDate(key string) (time.Time, error) {
	if key == "" {
		return s.Today(), nil
	}
	return timemath.ParseISODate(key, s.loc)
}

// Load reads the persisted state. A missing or undecodable document falls back
// to the default state; a document without a roadmap gets a fresh one anchored
// today while the rest is kept.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.log.InfoContext(ctx, "no saved state, starting fresh")
		s.state = DefaultState(s.now(), s.loc)
		return nil
	case err != nil:
		return fmt.Errorf("load state: %w", err)
	}

	st, err := decodeState(data)
	if err != nil {
		s.log.WarnContext(ctx, "saved state unreadable, using defaults", "error", err)
		s.state = DefaultState(s.now(), s.loc)
		return nil
	}
	if st.repairRoadmap(s.now(), s.loc) {
		s.log.WarnContext(ctx, "saved state had no roadmap, regenerated", "start", st.Roadmap.StartISO)
	}
	s.state = st
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, ErrNotLoaded
	}
	return s.state.clone()
}

// view runs fn against the live state under the lock; fn must not mutate it.
func (s *Service) view(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return ErrNotLoaded
	}
	return fn(s.state)
}

func (s *Service) mutate(ctx context.Context, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return ErrNotLoaded
	}
	work, err := s.state.clone()
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	if err := s.save(ctx, work); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Service) save(ctx context.Context, st *State) error {
	data, err := st.encode()
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.log.DebugContext(ctx, "state saved", "bytes", len(data))
	return nil
}

// Day returns a copy of the record for dateKey. Unknown days come back empty
// and are not created.
func (s *Service) Day(dateKey string) (DayRecord, error) {
	var out DayRecord
	err := s.view(func(st *State) error {
		d, ok := st.Day(dateKey)
		if !ok {
			out = DayRecord{Tasks: []Task{}}
			return nil
		}
		out = *d
		out.Tasks = append([]Task(nil), d.Tasks...)
		SortTasks(out.Tasks)
		return nil
	})
	return out, err
}

// AutoPlan rebuilds the day for date from the preferences and roadmap.
// Existing tasks of that day are discarded, completed ones included; callers
// should confirm first when DayHasProgress reports true.
func (s *Service) AutoPlan(ctx context.Context, date time.Time) ([]Task, error) {
	key := s.DateKey(date)
	var tasks []Task
	err := s.mutate(ctx, func(st *State) error {
		planned, err := PlanDay(date, st.Preferences, st.Roadmap, s.loc)
		if err != nil {
			return err
		}
		day := st.EnsureDay(key)
		day.Tasks = planned
		tasks = append([]Task(nil), planned...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", key, err)
	}
	s.log.InfoContext(ctx, "day planned", "date", key, "tasks", len(tasks))
	return tasks, nil
}

// DayHasProgress reports whether dateKey has completed tasks that a replan would drop.
func (s *Service) DayHasProgress(dateKey string) (bool, error) {
	var has bool
	err := s.view(func(st *State) error {
		if d, ok := st.Day(dateKey); ok {
			has = d.HasProgress()
		}
		return nil
	})
	return has, err
}

// EnsurePlanned plans date when it has no tasks yet. It reports whether a plan was made.
func (s *Service) EnsurePlanned(ctx context.Context, date time.Time) (bool, error) {
	key := s.DateKey(date)
	var empty bool
	if err := s.view(func(st *State) error {
		d, ok := st.Day(key)
		empty = !ok || len(d.Tasks) == 0
		return nil
	}); err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}
	if _, err := s.AutoPlan(ctx, date); err != nil {
		return false, err
	}
	return true, nil
}

// CompleteTask marks a task of dateKey done and credits its points.
// Completing an already done task is a no-op reported via AlreadyDone.
func (s *Service) CompleteTask(ctx context.Context, dateKey, taskID string) (*CompleteResult, error) {
	var res CompleteResult
	err := s.mutate(ctx, func(st *State) error {
		day, ok := st.Day(dateKey)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, dateKey)
		}
		t := day.FindTask(taskID)
		if t == nil {
			return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, dateKey)
		}
		res = completeTask(t, day, &st.Stats, dateKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.AlreadyDone {
		s.log.InfoContext(ctx, "task completed", "date", dateKey, "task_id", taskID, "points", res.Points, "streak", res.StreakDays)
	}
	return &res, nil
}

// AddTask appends a user task to dateKey.
func (s *Service) AddTask(ctx context.Context, dateKey string, in TaskInput) (Task, error) {
	t, err := NewTask("t_"+uuid.NewString(), in)
	if err != nil {
		return Task{}, err
	}
	err = s.mutate(ctx, func(st *State) error {
		day := st.EnsureDay(dateKey)
		day.Tasks = append(day.Tasks, t)
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	s.log.InfoContext(ctx, "task added", "date", dateKey, "task_id", t.ID)
	return t, nil
}

// EditTask replaces the editable fields of a task, keeping its id and status.
func (s *Service) EditTask(ctx context.Context, dateKey, taskID string, in TaskInput) (Task, error) {
	var out Task
	err := s.mutate(ctx, func(st *State) error {
		day, ok := st.Day(dateKey)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, dateKey)
		}
		cur := day.FindTask(taskID)
		if cur == nil {
			return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, dateKey)
		}
		next, err := rebuildTask(*cur, in)
		if err != nil {
			return err
		}
		next.Status = cur.Status
		*cur = next
		out = next
		return nil
	})
	return out, err
}

// DeleteTask removes a task from dateKey. Points already credited stay.
func (s *Service) DeleteTask(ctx context.Context, dateKey, taskID string) error {
	return s.mutate(ctx, func(st *State) error {
		day, ok := st.Day(dateKey)
		if !ok || day.FindTask(taskID) == nil {
			return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, dateKey)
		}
		kept := day.Tasks[:0]
		for _, t := range day.Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		day.Tasks = kept
		return nil
	})
}

// SetNotes replaces the free-text notes of dateKey.
func (s *Service) SetNotes(ctx context.Context, dateKey, notes string) error {
	return s.mutate(ctx, func(st *State) error {
		st.EnsureDay(dateKey).Notes = notes
		return nil
	})
}

// CreditFocusSession records one finished work-mode countdown on dateKey.
func (s *Service) CreditFocusSession(ctx context.Context, dateKey string) error {
	err := s.mutate(ctx, func(st *State) error {
		st.EnsureDay(dateKey).Score.FocusSessions++
		st.Stats.TotalFocusSessions++
		return nil
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "focus session credited", "date", dateKey)
	return nil
}

// Roadmap returns a copy of the current roadmap and the index of this week.
func (s *Service) Roadmap() (*Roadmap, int, error) {
	var (
		out     *Roadmap
		current int
	)
	err := s.view(func(st *State) error {
		if st.Roadmap == nil {
			return nil
		}
		cp := *st.Roadmap
		cp.Weeks = make([]RoadmapWeek, len(st.Roadmap.Weeks))
		for i, w := range st.Roadmap.Weeks {
			w.Tasks = append([]string(nil), w.Tasks...)
			if w.Completed != nil {
				done := make(map[int]bool, len(w.Completed))
				for k, v := range w.Completed {
					done[k] = v
				}
				w.Completed = done
			}
			cp.Weeks[i] = w
		}
		out = &cp
		current = st.Roadmap.WeekIndex(s.now(), s.loc)
		return nil
	})
	return out, current, err
}

// RebuildRoadmap replaces the roadmap with a fresh one anchored at start.
// Toggled task flags of the previous roadmap are dropped.
func (s *Service) RebuildRoadmap(ctx context.Context, start time.Time) (*Roadmap, error) {
	rm := GenerateRoadmap(start, s.loc)
	err := s.mutate(ctx, func(st *State) error {
		st.Roadmap = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "roadmap rebuilt", "start", rm.StartISO)
	return GenerateRoadmap(start, s.loc), nil
}

// ToggleRoadmapTask sets the completion flag of one roadmap task.
func (s *Service) ToggleRoadmapTask(ctx context.Context, week, task int, done bool) error {
	return s.mutate(ctx, func(st *State) error {
		if st.Roadmap == nil || week < 0 || week >= len(st.Roadmap.Weeks) {
			return fmt.Errorf("%w: week %d", ErrWeekOutOfRange, week+1)
		}
		w := &st.Roadmap.Weeks[week]
		if task < 0 || task >= len(w.Tasks) {
			return fmt.Errorf("%w: task %d of week %d", ErrWeekOutOfRange, task+1, week+1)
		}
		if w.Completed == nil {
			w.Completed = map[int]bool{}
		}
		w.Completed[task] = done
		return nil
	})
}

func (s *Service) Preferences() (Preferences, error) {
	var p Preferences
	err := s.view(func(st *State) error {
		p = st.Preferences
		return nil
	})
	return p, err
}

// UpdatePreferences applies a partial update after validating the result.
func (s *Service) UpdatePreferences(ctx context.Context, patch PreferencesPatch) (Preferences, error) {
	var out Preferences
	err := s.mutate(ctx, func(st *State) error {
		next := st.Preferences.Apply(patch)
		if err := next.Validate(); err != nil {
			return err
		}
		st.Preferences = next
		out = next
		return nil
	})
	return out, err
}

// Stats summarizes points over the trailing week and the current calendar week.
func (s *Service) Stats() (StatsSummary, error) {
	var sum StatsSummary
	err := s.view(func(st *State) error {
		sum = Summarize(st, s.now(), 7, s.loc)
		return nil
	})
	return sum, err
}

// Reset replaces everything with a default state.
func (s *Service) Reset(ctx context.Context) error {
	err := s.mutate(ctx, func(st *State) error {
		*st = *DefaultState(s.now(), s.loc)
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WarnContext(ctx, "state reset to defaults")
	return nil
}

// Import replaces the whole state with the JSON document read from r.
// The document is taken as-is; only undecodable input is rejected, in which
// case nothing changes.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: read: %v", ErrImport, err)
	}
	imported, err := decodeState(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	err = s.mutate(ctx, func(st *State) error {
		*st = *imported
		return nil
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "state imported", "bytes", len(data))
	return nil
}

// Export writes the whole state as indented JSON.
func (s *Service) Export(w io.Writer) error {
	return s.view(func(st *State) error {
		data, err := st.encode()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indent export: %w", err)
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	})
}

// ExportFileName names an export taken today.
func (s *Service) ExportFileName() string {
	return "focus-planner-" + s.TodayKey() + ".json"
}
