package engine

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats summarises the frames run so far.
type SchedulerStats struct {
	SystemCount     int
	FrameCount      int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats is the timing of one system across all frames, in
// registration order.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimer struct {
	name  string
	calls int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimer) record(d time.Duration) {
	if t.calls == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.calls++
	t.total += d
	t.last = d
}

func (t *systemTimer) stats() SystemStats {
	out := SystemStats{
		Name:           t.name,
		ExecutionCount: t.calls,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.calls > 0 {
		out.MinDuration = t.min
		out.AvgDuration = t.total / time.Duration(t.calls)
	}
	return out
}

// Scheduler runs registered systems in registration order, one frame at a time.
// Frames never overlap: Once and Run must be called from a single goroutine.
type Scheduler struct {
	resources *Resources
	systems   []System
	timers    []*systemTimer
	frames    int64
}

// NewScheduler creates a scheduler whose systems share resources.
func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{
		resources: resources,
		systems:   make([]System, 0),
	}
}

// Register adds a system to the scheduler and binds its Resource fields.
func (s *Scheduler) Register(system System) {
	s.initializeResources(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timers = append(s.timers, &systemTimer{name: systemType.Name()})
}

func (s *Scheduler) initializeResources(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if !strings.HasPrefix(field.Type().Name(), "Resource[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on Resource field: " + fieldType.Name)
		}

		initMethod.Call([]reflect.Value{
			reflect.ValueOf(s.resources),
		})
	}
}

// Once executes all registered systems once with the given delta time
// (seconds), then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.resources)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timers[i].record(time.Since(start))
	}

	frame.Commands.Flush()
	s.frames++
}

// Run executes all systems at the given interval until the context is cancelled.
// Each frame receives the wall time elapsed since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns the frame count and per-system timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.timers)),
	}
	for i, timer := range s.timers {
		stats.Systems[i] = timer.stats()
		stats.TotalExecutions += timer.calls
	}
	return stats
}
