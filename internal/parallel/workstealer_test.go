package parallel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rangeUnit is a Splittable over a contiguous range of integers, Advance
// yielding lo and incrementing it, Split handing the upper half to a new
// unit. It needs no internal locking: WorkStealer always holds the owning
// worker's mutex while calling any of its methods.
type rangeUnit struct {
	lo, hi int
}

func (u *rangeUnit) HasWork() bool { return u.lo < u.hi }

func (u *rangeUnit) Advance() (any, bool) {
	if u.lo >= u.hi {
		return nil, false
	}
	v := u.lo
	u.lo++
	return v, true
}

func (u *rangeUnit) Split() Splittable {
	if u.hi-u.lo < 2 {
		return nil
	}
	mid := u.lo + (u.hi-u.lo)/2
	other := &rangeUnit{lo: mid, hi: u.hi}
	u.hi = mid
	return other
}

func drain(t *testing.T, ws *WorkStealer) map[int]bool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	seen := make(map[int]bool)
	for r := range ws.Run(ctx) {
		seen[r.(int)] = true
	}
	return seen
}

func TestWorkStealerSingleWorkerVisitsEveryItemOnce(t *testing.T) {
	ws := NewWorkStealer(&rangeUnit{lo: 0, hi: 50}, 1)
	seen := drain(t, ws)
	require.Len(t, seen, 50)
	for i := 0; i < 50; i++ {
		require.True(t, seen[i], "missing item %d", i)
	}
}

func TestWorkStealerMultipleWorkersVisitEveryItemExactlyOnce(t *testing.T) {
	ws := NewWorkStealer(&rangeUnit{lo: 0, hi: 200}, 8)
	seen := drain(t, ws)
	require.Len(t, seen, 200)
	for i := 0; i < 200; i++ {
		require.True(t, seen[i], "missing item %d", i)
	}
	require.Greater(t, ws.Stats().GetStats().TasksSubmitted, int64(0))
}

func TestWorkStealerWithNoWorkProducesNoResults(t *testing.T) {
	ws := NewWorkStealer(&rangeUnit{lo: 0, hi: 0}, 4)
	seen := drain(t, ws)
	require.Empty(t, seen)
}

func TestWorkStealerRespectsContextCancellation(t *testing.T) {
	ws := NewWorkStealer(&rangeUnit{lo: 0, hi: 1_000_000}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	results := ws.Run(ctx)
	first, ok := <-results
	require.True(t, ok)
	require.Equal(t, 0, first.(int))
	cancel()
	for range results {
		// drain until the channel closes; cancellation must terminate
		// the worker goroutine rather than hang.
	}
}
