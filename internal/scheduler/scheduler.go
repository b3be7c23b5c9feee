// Package scheduler plans each new day ahead of time on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field expressions (minute, hour, dom, month,
// dow) and descriptors such as "@daily" or "@every 6h".
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSpec parses spec the way Run schedules it.
func ParseSpec(spec string) (cron.Schedule, error) {
	return cronParser.Parse(spec)
}

// Planner is the part of the engine the scheduler drives.
type Planner interface {
	Today() time.Time
	EnsurePlanned(ctx context.Context, date time.Time) (bool, error)
}

// Scheduler runs EnsurePlanned for the current day on every cron tick.
type Scheduler struct {
	planner Planner
	spec    string
	sched   cron.Schedule
	loc     *time.Location
	log     *slog.Logger
}

func New(p Planner, spec string, loc *time.Location, log *slog.Logger) (*Scheduler, error) {
	sched, err := ParseSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("scheduler: parse %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{planner: p, spec: spec, sched: sched, loc: loc, log: log}, nil
}

// Next returns the first fire time strictly after t, in the scheduler's zone.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.sched.Next(t.In(s.loc))
}

// PlanToday makes sure today has a plan. Failures are logged, not returned,
// so one bad tick does not stop the daemon.
func (s *Scheduler) PlanToday(ctx context.Context) {
	today := s.planner.Today()
	planned, err := s.planner.EnsurePlanned(ctx, today)
	if err != nil {
		s.log.ErrorContext(ctx, "scheduled plan failed", "date", today.Format(time.DateOnly), "error", err)
		return
	}
	if planned {
		s.log.InfoContext(ctx, "scheduled plan created", "date", today.Format(time.DateOnly))
		return
	}
	s.log.DebugContext(ctx, "day already planned", "date", today.Format(time.DateOnly))
}

// Run plans today once, then on every tick until ctx is cancelled.
// It waits for a tick in progress before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.loc), cron.WithParser(cronParser))
	if _, err := c.AddFunc(s.spec, func() { s.PlanToday(ctx) }); err != nil {
		return fmt.Errorf("scheduler: add job: %w", err)
	}

	s.PlanToday(ctx)
	c.Start()
	s.log.InfoContext(ctx, "scheduler started", "cron", s.spec, "next", s.Next(time.Now()))

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.InfoContext(ctx, "scheduler stopped")
	return nil
}
