package ecs

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// SystemDescriptor bundles a system's name, its declared component access
// and its body. Reads and Writes drive the scheduler's dependency graph.
type SystemDescriptor struct {
	Name   string
	Reads  []TypeId
	Writes []TypeId
	Run    func(*World, *Commands)
}

// MakeSystem builds a descriptor from a term list: Read terms become Reads,
// Write terms become Writes, every other term kind is ignored for
// scheduling.
func MakeSystem(name string, fn func(*World, *Commands), terms ...Term) SystemDescriptor {
	d := SystemDescriptor{Name: name, Run: fn}
	for _, t := range terms {
		switch t.kind {
		case termRead:
			d.Reads = append(d.Reads, t.id)
		case termWrite:
			d.Writes = append(d.Writes, t.id)
		}
	}
	return d
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	StageCount      int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler registers system descriptors, layers them into stages from
// their declared access, and runs them serially with a command-flush
// barrier between stages.
type Scheduler struct {
	systems []SystemDescriptor
	stages  [][]uint32
	stats   []*systemStatsInternal
	log     zerolog.Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{log: zerolog.Nop()}
}

// SetLogger installs a structured logger for build and run events.
func (s *Scheduler) SetLogger(log zerolog.Logger) {
	s.log = log
}

// Register adds a system and returns its ID, the registration index.
func (s *Scheduler) Register(desc SystemDescriptor) uint32 {
	id := uint32(len(s.systems))
	s.systems = append(s.systems, desc)
	s.stats = append(s.stats, &systemStatsInternal{
		minDuration: time.Duration(1<<63 - 1),
	})
	return id
}

// conflictsInto reports whether system a must precede system b: some type
// written by a is read or written by b.
func conflictsInto(a, b *SystemDescriptor) bool {
	for _, t := range a.Writes {
		if slices.Contains(b.Writes, t) || slices.Contains(b.Reads, t) {
			return true
		}
	}
	return false
}

// Build recomputes the stage layout from the registered descriptors. The
// conflict DAG is layered with Kahn's algorithm, keeping registration order
// within each stage. Nodes left over by a dependency cycle are emitted as a
// final serial stage rather than reported as an error.
func (s *Scheduler) Build() {
	n := len(s.systems)
	edges := make([][]int, n)
	inDegree := make([]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if conflictsInto(&s.systems[i], &s.systems[j]) {
				edges[i] = append(edges[i], j)
				inDegree[j]++
			}
		}
	}

	s.stages = s.stages[:0]
	var zero []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			zero = append(zero, i)
		}
	}

	for len(zero) > 0 {
		stage := make([]uint32, 0, len(zero))
		current := zero
		zero = nil
		slices.Sort(current)
		for _, u := range current {
			stage = append(stage, uint32(u))
		}
		s.stages = append(s.stages, stage)
		for _, u := range current {
			for _, v := range edges[u] {
				if inDegree[v]--; inDegree[v] == 0 {
					zero = append(zero, v)
				}
			}
		}
	}

	var remaining []uint32
	for i := 0; i < n; i++ {
		if inDegree[i] > 0 {
			remaining = append(remaining, uint32(i))
		}
	}
	if len(remaining) > 0 {
		names := make([]string, len(remaining))
		for i, id := range remaining {
			names[i] = s.systems[id].Name
		}
		s.log.Warn().
			Strs("systems", names).
			Msg("dependency cycle collapsed into final serial stage")
		s.stages = append(s.stages, remaining)
	}
}

// Run executes the stages serially against the world. One Commands buffer
// serves the whole run; it is flushed after each stage, so later stages
// observe the structural effects of earlier ones.
func (s *Scheduler) Run(w *World) {
	commands := NewCommands()
	for stageIdx, stage := range s.stages {
		for _, id := range stage {
			sys := &s.systems[id]
			start := time.Now()
			sys.Run(w, commands)
			duration := time.Since(start)

			st := s.stats[id]
			st.executionCount++
			st.lastDuration = duration
			st.totalDuration += duration
			if duration < st.minDuration {
				st.minDuration = duration
			}
			if duration > st.maxDuration {
				st.maxDuration = duration
			}
		}
		s.log.Debug().
			Int("stage", stageIdx).
			Int("systems", len(stage)).
			Int("commands", commands.Size()).
			Msg("stage complete, flushing commands")
		commands.Flush(w)
	}
}

// RunLoop executes Run repeatedly at the given interval until the context
// is cancelled.
func (s *Scheduler) RunLoop(ctx context.Context, w *World, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Run(w)
		}
	}
}

// StageCount returns the number of stages computed by the last Build.
func (s *Scheduler) StageCount() int {
	return len(s.stages)
}

// StageAt returns the system IDs of stage i in execution order.
func (s *Scheduler) StageAt(i int) []uint32 {
	return s.stages[i]
}

// SystemNames returns the registered system names in registration order.
func (s *Scheduler) SystemNames() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name
	}
	return names
}

// Stats returns execution statistics for all registered systems.
func (s *Scheduler) Stats() *SchedulerStats {
	out := &SchedulerStats{
		SystemCount: len(s.systems),
		StageCount:  len(s.stages),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	var totalExecs int64
	for i, internal := range s.stats {
		avg := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}
		out.Systems[i] = SystemStats{
			Name:           s.systems[i].Name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}
	out.TotalExecutions = totalExecs
	return out
}
