package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusplanner/internal/storage"
)

// 2026-03-10 is a Tuesday.
var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, ist)

type clockFunc struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clockFunc) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clockFunc) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// memStore is an in-memory StateStore that can be told to fail writes.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failPut bool
	puts    int
}

var errDiskFull = errors.New("disk full")

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errDiskFull
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func newTestService(t *testing.T) (*Service, *storage.KVRepo, *clockFunc) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := storage.NewKVRepo(db)
	clk := &clockFunc{now: fixedNow}
	svc := NewService(repo, ServiceOptions{Location: ist, Now: clk.Now})
	require.NoError(t, svc.Load(ctx))
	return svc, repo, clk
}

func newMemService(t *testing.T, store *memStore) *Service {
	t.Helper()
	svc := NewService(store, ServiceOptions{Location: ist, Now: func() time.Time { return fixedNow }})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func findByTitle(t *testing.T, tasks []Task, prefix string) Task {
	t.Helper()
	for _, task := range tasks {
		if strings.HasPrefix(task.Title, prefix) {
			return task
		}
	}
	t.Fatalf("no task titled %q", prefix)
	return Task{}
}

func TestServiceRequiresLoad(t *testing.T) {
	svc := NewService(newMemStore(), ServiceOptions{Location: ist})
	_, err := svc.Day("2026-03-10")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = svc.AutoPlan(context.Background(), fixedNow)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestLoadWithoutSavedState(t *testing.T) {
	svc, repo, _ := newTestService(t)

	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), st.Preferences)
	assert.Equal(t, "2026-03-10", st.Roadmap.StartISO)
	assert.Len(t, st.Roadmap.Weeks, RoadmapWeeks)
	assert.Empty(t, st.Daily)
	assert.Equal(t, 0, st.Stats.TotalPoints)

	// Loading alone does not write anything.
	_, err = repo.Get(context.Background(), StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoadUnreadableStateFallsBack(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = []byte("{not json")
	svc := newMemService(t, store)

	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), st.Preferences)
	assert.NotNil(t, st.Roadmap)
}

func TestLoadRepairsMissingRoadmap(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = []byte(`{"preferences":{"wakeTime":"05:00","sleepTime":"22:30","breakfast":"07:30","lunch":"12:30","dinner":"20:00","tuitionStart":"16:00","tuitionEnd":"19:00","typingMinutes":15,"communicationMinutes":20,"pomodoroWork":50,"pomodoroShortBreak":10,"pomodoroLongBreak":20},"daily":{"2026-03-09":{"tasks":[],"score":{"points":30,"completed":2,"focusSessions":1},"notes":"hi"}},"stats":{"totalPoints":30,"totalFocusSessions":1,"streakDays":3,"lastActiveDate":"2026-03-09"}}`)
	svc := newMemService(t, store)

	st, err := svc.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, st.Roadmap)
	assert.Equal(t, "2026-03-10", st.Roadmap.StartISO)
	assert.Equal(t, "05:00", st.Preferences.WakeTime)
	assert.Equal(t, 50, st.Preferences.PomodoroWork)
	assert.Equal(t, 30, st.Stats.TotalPoints)
	assert.Equal(t, "hi", st.Daily["2026-03-09"].Notes)
	assert.Equal(t, 0, store.puts)
}

func TestLoadPropagatesStoreErrors(t *testing.T) {
	svc := NewService(failingGetStore{}, ServiceOptions{Location: ist})
	assert.ErrorIs(t, svc.Load(context.Background()), errDiskFull)
}

type failingGetStore struct{}

func (failingGetStore) Get(context.Context, string) ([]byte, error) { return nil, errDiskFull }
func (failingGetStore) Put(context.Context, string, []byte) error   { return nil }

func TestAutoPlanPersists(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	require.Len(t, tasks, 19)

	reloaded := NewService(repo, ServiceOptions{Location: ist, Now: func() time.Time { return fixedNow }})
	require.NoError(t, reloaded.Load(ctx))
	d, err := reloaded.Day("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, tasks, d.Tasks)
}

func TestAutoPlanTwiceDoesNotDuplicate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	_, err = svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)

	d, err := svc.Day("2026-03-10")
	require.NoError(t, err)
	assert.Len(t, d.Tasks, 19)
}

func TestAutoPlanReplacesCompletedTasks(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, "2026-03-10", tasks[0].ID)
	require.NoError(t, err)

	has, err := svc.DayHasProgress("2026-03-10")
	require.NoError(t, err)
	assert.True(t, has)

	_, err = svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	d, err := svc.Day("2026-03-10")
	require.NoError(t, err)
	for _, task := range d.Tasks {
		assert.Equal(t, StatusTodo, task.Status)
	}
	// Points already credited stay.
	assert.Equal(t, 10, d.Score.Points)
}

func TestAutoPlanInvalidPreferencesChangesNothing(t *testing.T) {
	store := newMemStore()
	svc := newMemService(t, store)
	ctx := context.Background()

	_, err := svc.UpdatePreferences(ctx, PreferencesPatch{SleepTime: "22:00"})
	require.NoError(t, err)
	puts := store.puts

	_, err = svc.AutoPlan(ctx, fixedNow)
	var be BlockError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, puts, store.puts)

	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, st.Daily, "2026-03-10")
}

func TestEnsurePlanned(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	planned, err := svc.EnsurePlanned(ctx, svc.Today())
	require.NoError(t, err)
	assert.True(t, planned)

	planned, err = svc.EnsurePlanned(ctx, svc.Today())
	require.NoError(t, err)
	assert.False(t, planned)

	clk.advance(24 * time.Hour)
	planned, err = svc.EnsurePlanned(ctx, svc.Today())
	require.NoError(t, err)
	assert.True(t, planned)
	assert.Equal(t, "2026-03-11", svc.TodayKey())
}

func TestDayDoesNotCreateRecord(t *testing.T) {
	svc, _, _ := newTestService(t)

	d, err := svc.Day("2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, d.Tasks)

	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, st.Daily, "2030-01-01")
}

func TestCompleteTaskScoresAndStreaks(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	dw := findByTitle(t, tasks, "Deep Work 1")

	res, err := svc.CompleteTask(ctx, "2026-03-10", dw.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, res.Points)
	assert.Equal(t, 45, res.DayPoints)
	assert.Equal(t, 45, res.TotalPoints)
	assert.Equal(t, 1, res.StreakDays)

	again, err := svc.CompleteTask(ctx, "2026-03-10", dw.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyDone)
	assert.Equal(t, 45, again.TotalPoints)

	d, err := svc.Day("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Score.Completed)
	assert.Equal(t, 45, d.Score.Points)
}

func TestCompleteTaskStreakAcrossDays(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	complete := func(key string) int {
		date, err := svc.ParseDate(key)
		require.NoError(t, err)
		tasks, err := svc.AutoPlan(ctx, date)
		require.NoError(t, err)
		res, err := svc.CompleteTask(ctx, key, tasks[0].ID)
		require.NoError(t, err)
		return res.StreakDays
	}

	assert.Equal(t, 1, complete("2026-03-10"))
	assert.Equal(t, 2, complete("2026-03-11"))
	assert.Equal(t, 1, complete("2026-03-13"))
}

func TestCompleteTaskUnknown(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompleteTask(ctx, "2026-03-10", "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, "2026-03-10", "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestFailedSaveLeavesStateUntouched(t *testing.T) {
	store := newMemStore()
	svc := newMemService(t, store)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	before, err := svc.Snapshot()
	require.NoError(t, err)
	stored := append([]byte(nil), store.data[StorageKey]...)

	store.failPut = true
	_, err = svc.CompleteTask(ctx, "2026-03-10", tasks[4].ID)
	require.ErrorIs(t, err, errDiskFull)
	_, err = svc.AddTask(ctx, "2026-03-10", TaskInput{Title: "extra"})
	require.ErrorIs(t, err, errDiskFull)
	require.ErrorIs(t, svc.Reset(ctx), errDiskFull)

	after, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, stored, store.data[StorageKey])
}

func TestAddEditDeleteTask(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	key := "2026-03-10"

	_, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)

	added, err := svc.AddTask(ctx, key, TaskInput{Title: "  Kaggle notebook ", Category: CategoryDeepWork, Start: "23:40", End: "23:55"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(added.ID, "t_"))
	assert.Equal(t, "Kaggle notebook", added.Title)
	require.NotNil(t, added.Duration)
	assert.Equal(t, 15, *added.Duration)

	loose, err := svc.AddTask(ctx, key, TaskInput{Title: "Call home"})
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, loose.Category)

	d, err := svc.Day(key)
	require.NoError(t, err)
	require.Len(t, d.Tasks, 21)
	assert.Equal(t, added.ID, d.Tasks[19].ID)
	assert.Equal(t, loose.ID, d.Tasks[20].ID)

	_, err = svc.CompleteTask(ctx, key, added.ID)
	require.NoError(t, err)

	in := InputFromTask(added)
	in.Title = "Kaggle notebook v2"
	in.Points = intPtr(5)
	edited, err := svc.EditTask(ctx, key, added.ID, in)
	require.NoError(t, err)
	assert.Equal(t, added.ID, edited.ID)
	assert.Equal(t, StatusDone, edited.Status)
	assert.Equal(t, "Kaggle notebook v2", edited.Title)

	require.NoError(t, svc.DeleteTask(ctx, key, loose.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, key, loose.ID), ErrTaskNotFound)

	d, err = svc.Day(key)
	require.NoError(t, err)
	assert.Len(t, d.Tasks, 20)
}

func TestAddTaskRejectsInvalidInput(t *testing.T) {
	store := newMemStore()
	svc := newMemService(t, store)
	ctx := context.Background()

	cases := []TaskInput{
		{Title: "   "},
		{Title: "x", Start: "25:00"},
		{Title: "x", Start: "10:00", End: "09:00"},
		{Title: "x", Start: "10:00", End: "11:00", Duration: intPtr(30)},
		{Title: "x", Duration: intPtr(0)},
		{Title: "x", Points: intPtr(-1)},
	}
	for _, in := range cases {
		_, err := svc.AddTask(ctx, "2026-03-10", in)
		assert.ErrorIs(t, err, ErrInvalidTask, "%+v", in)
	}
	assert.Equal(t, 0, store.puts)
}

func TestEditTaskKeepsPlannedTimesPastMidnight(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	key := "2026-03-10"

	_, err := svc.UpdatePreferences(ctx, PreferencesPatch{
		TuitionStart: "22:00",
		TuitionEnd:   "23:50",
		Dinner:       "20:00",
		SleepTime:    "23:55",
	})
	require.NoError(t, err)
	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)

	unwind := findByTitle(t, tasks, "Return/Unwind")
	require.NotNil(t, unwind.Start)
	require.NotNil(t, unwind.End)
	require.Equal(t, "23:50", *unwind.Start)
	require.Equal(t, "24:30", *unwind.End)

	in := InputFromTask(unwind)
	in.Title = "Walk home"
	edited, err := svc.EditTask(ctx, key, unwind.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Walk home", edited.Title)
	assert.Equal(t, "23:50", *edited.Start)
	assert.Equal(t, "24:30", *edited.End)
	require.NotNil(t, edited.Duration)
	assert.Equal(t, 40, *edited.Duration)

	// A newly typed time still has to fit within the day.
	in.End = "24:45"
	in.Duration = nil
	_, err = svc.EditTask(ctx, key, unwind.ID, in)
	assert.ErrorIs(t, err, ErrInvalidTask)

	in.Start, in.End = "24:30", "24:30"
	_, err = svc.EditTask(ctx, key, unwind.ID, in)
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestSetNotesAndFocusSessions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetNotes(ctx, "2026-03-10", "slept badly"))
	require.NoError(t, svc.CreditFocusSession(ctx, "2026-03-10"))
	require.NoError(t, svc.CreditFocusSession(ctx, "2026-03-10"))

	d, err := svc.Day("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "slept badly", d.Notes)
	assert.Equal(t, 2, d.Score.FocusSessions)

	sum, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalFocusSessions)
}

func TestRoadmapToggleAndRebuild(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	rm, current, err := svc.Roadmap()
	require.NoError(t, err)
	assert.Equal(t, 0, current)
	assert.Nil(t, rm.Weeks[2].Completed)

	require.NoError(t, svc.ToggleRoadmapTask(ctx, 2, 1, true))
	rm, _, err = svc.Roadmap()
	require.NoError(t, err)
	assert.True(t, rm.Weeks[2].IsTaskDone(1))
	assert.False(t, rm.Weeks[2].IsTaskDone(0))

	// The returned copy is detached from the service.
	rm.Weeks[2].Completed[0] = true
	again, _, err := svc.Roadmap()
	require.NoError(t, err)
	assert.False(t, again.Weeks[2].IsTaskDone(0))

	require.NoError(t, svc.ToggleRoadmapTask(ctx, 2, 1, false))
	assert.ErrorIs(t, svc.ToggleRoadmapTask(ctx, 24, 0, true), ErrWeekOutOfRange)
	assert.ErrorIs(t, svc.ToggleRoadmapTask(ctx, 0, 99, true), ErrWeekOutOfRange)

	clk.advance(15 * 24 * time.Hour)
	_, current, err = svc.Roadmap()
	require.NoError(t, err)
	assert.Equal(t, 2, current)

	start, err := svc.ParseDate("2026-03-25")
	require.NoError(t, err)
	rebuilt, err := svc.RebuildRoadmap(ctx, start)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-25", rebuilt.StartISO)

	rm, current, err = svc.Roadmap()
	require.NoError(t, err)
	assert.Equal(t, 0, current)
	for _, w := range rm.Weeks {
		assert.Nil(t, w.Completed)
	}
}

func TestUpdatePreferences(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.UpdatePreferences(ctx, PreferencesPatch{WakeTime: "05:45", PomodoroWork: 50})
	require.NoError(t, err)
	assert.Equal(t, "05:45", p.WakeTime)
	assert.Equal(t, 50, p.PomodoroWork)
	assert.Equal(t, "23:30", p.SleepTime)

	_, err = svc.UpdatePreferences(ctx, PreferencesPatch{Breakfast: "8:3x"})
	var pe PreferenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "breakfast", pe.Field)

	_, err = svc.UpdatePreferences(ctx, PreferencesPatch{TuitionStart: "21:00"})
	assert.ErrorIs(t, err, ErrInvalidPreferences)

	got, err := svc.Preferences()
	require.NoError(t, err)
	assert.Equal(t, "08:30", got.Breakfast)
	assert.Equal(t, "16:00", got.TuitionStart)

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "05:45", *tasks[0].Start)
}

func TestStatsSummary(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = []byte(`{
		"preferences": {},
		"roadmap": {"startISO": "2026-03-02", "weeks": [{"title": "W", "tasks": ["a"]}]},
		"daily": {
			"2026-03-01": {"tasks": [], "score": {"points": 100}},
			"2026-03-02": {"tasks": [], "score": {"points": 10}},
			"2026-03-04": {"tasks": [], "score": {"points": 20}},
			"2026-03-09": {"tasks": [], "score": {"points": 30}},
			"2026-03-10": {"tasks": [], "score": {"points": 5}}
		},
		"stats": {"totalPoints": 165, "totalFocusSessions": 4, "streakDays": 2, "lastActiveDate": "2026-03-10"}
	}`)
	svc := newMemService(t, store)

	sum, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 165, sum.TotalPoints)
	assert.Equal(t, 4, sum.TotalFocusSessions)
	assert.Equal(t, 2, sum.StreakDays)
	assert.Equal(t, "2026-03-10", sum.LastActiveDate)
	assert.Equal(t, 5, sum.TodayPoints)
	assert.Equal(t, 35, sum.WeekPoints)

	require.Len(t, sum.LastDays, 7)
	assert.Equal(t, DayPoints{Date: "2026-03-04", Points: 20}, sum.LastDays[0])
	assert.Equal(t, DayPoints{Date: "2026-03-10", Points: 5}, sum.LastDays[6])
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, "2026-03-10", tasks[4].ID)
	require.NoError(t, err)
	require.NoError(t, svc.ToggleRoadmapTask(ctx, 0, 0, true))

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), "\n  \"profile\"")
	assert.Equal(t, "focus-planner-2026-03-10.json", svc.ExportFileName())

	other, _, _ := newTestService(t)
	require.NoError(t, other.Import(ctx, bytes.NewReader(buf.Bytes())))

	want, err := svc.Snapshot()
	require.NoError(t, err)
	got, err := other.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportRejectsGarbage(t *testing.T) {
	store := newMemStore()
	svc := newMemService(t, store)
	ctx := context.Background()

	_, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	before, err := svc.Snapshot()
	require.NoError(t, err)

	err = svc.Import(ctx, strings.NewReader("definitely not json"))
	require.ErrorIs(t, err, ErrImport)

	after, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportTakesDocumentVerbatim(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Import(ctx, strings.NewReader(`{"daily":{"2026-03-10":{"tasks":[{"id":"x","title":"Solo","category":"Study","status":"todo"}]}}}`)))

	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, st.Roadmap)

	// Nothing fills in the missing preferences.
	tasks, err := svc.AutoPlan(ctx, fixedNow)
	assert.Error(t, err, "imported preferences are empty")
	assert.Nil(t, tasks)

	res, err := svc.CompleteTask(ctx, "2026-03-10", "x")
	require.NoError(t, err)
	assert.Equal(t, 15, res.Points)
}

func TestReset(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tasks, err := svc.AutoPlan(ctx, fixedNow)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, "2026-03-10", tasks[0].ID)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))
	st, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, st.Daily)
	assert.Equal(t, GlobalStats{}, st.Stats)
	assert.Equal(t, DefaultPreferences(), st.Preferences)
}
