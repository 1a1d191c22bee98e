package sims

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/lowindex/sims/internal/parallel"
)

// schedulerUnit adapts an *IteratorState to internal/parallel.Splittable,
// the one place pkg/sims depends on the work-stealing infrastructure.
type schedulerUnit struct{ it *IteratorState }

func (u *schedulerUnit) HasWork() bool { return u.it.hasWork() }

func (u *schedulerUnit) Advance() (any, bool) {
	found, _ := u.it.advance()
	if !found {
		return nil, false
	}
	return u.it.snapshot(), true
}

func (u *schedulerUnit) Split() parallel.Splittable {
	other := u.it.split()
	if other == nil {
		return nil
	}
	return &schedulerUnit{it: other}
}

// runSearch drives pres's search with the given settings across
// numThreads workers, calling visit for every accepted Congruence; it
// stops early the moment visit returns false. It is the shared engine
// behind ForEach, FindIf and NumberOfCongruences.
func runSearch(ctx context.Context, pres *Presentation, maxNodes Node, pruners *PrunerSet, included []Rule, twoSided bool, stats *Stats, numThreads int, visit func(*Congruence) bool) {
	if numThreads < 1 {
		numThreads = 1
	}
	if numThreads > runtime.NumCPU() {
		numThreads = runtime.NumCPU()
	}
	seed := &schedulerUnit{it: newIteratorState(pres, maxNodes, pruners, included, twoSided, stats)}
	stealer := parallel.NewWorkStealer(seed, numThreads)
	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	results := stealer.Run(searchCtx)
	stopped := false
	for result := range results {
		if stopped {
			continue // drain so every worker observes ctx.Done and Run's channel closes
		}
		cg := result.(*Congruence)
		if !visit(cg) {
			stopped = true
			cancel()
		}
	}
	if stats != nil {
		// The stealer counts steal attempts as TasksSubmitted, successful
		// steals as ScaleUpEvents and idle entries as PotentialDeadlocks.
		es := stealer.Stats().GetStats()
		atomic.AddInt64(&stats.StealsAttempted, es.TasksSubmitted)
		atomic.AddInt64(&stats.StealsSucceeded, es.ScaleUpEvents)
		atomic.AddInt64(&stats.IdleRestarts, es.PotentialDeadlocks)
	}
	if v, ok := stealer.Panicked(); ok {
		panic(v)
	}
}
