package sims

import "sync/atomic"

// Stats collects atomic counters describing a search run, shared by
// every worker and safe for concurrent use: plain int64 fields updated
// with atomic.AddInt64, read back through a snapshot method rather
// than exposed directly. StealsAttempted, StealsSucceeded and
// IdleRestarts are added from the work stealer's own counters when a
// run finishes, so they do not move while a run is in progress.
type Stats struct {
	NodesActivated     int64
	EdgesDefined       int64
	DefinitionsUndone  int64
	PrunerRejections   int64
	LongRuleRejections int64
	CongruencesFound   int64
	StealsAttempted    int64
	StealsSucceeded    int64
	IdleRestarts       int64
}

// NewStats returns a zeroed Stats block.
func NewStats() *Stats { return &Stats{} }

func (s *Stats) recordNodeActivated()   { atomic.AddInt64(&s.NodesActivated, 1) }
func (s *Stats) recordEdgeDefined()     { atomic.AddInt64(&s.EdgesDefined, 1) }
func (s *Stats) recordPrunerRejection() { atomic.AddInt64(&s.PrunerRejections, 1) }
func (s *Stats) recordLongRuleRejection() {
	atomic.AddInt64(&s.LongRuleRejections, 1)
}
func (s *Stats) recordCongruenceFound() { atomic.AddInt64(&s.CongruencesFound, 1) }
func (s *Stats) recordStealAttempted()  { atomic.AddInt64(&s.StealsAttempted, 1) }
func (s *Stats) recordStealSucceeded()  { atomic.AddInt64(&s.StealsSucceeded, 1) }
func (s *Stats) recordIdleRestart()     { atomic.AddInt64(&s.IdleRestarts, 1) }

func (s *Stats) recordDefinitionsUndone(n int64) {
	if n != 0 {
		atomic.AddInt64(&s.DefinitionsUndone, n)
	}
}

// Snapshot returns a point-in-time copy of every counter.
func (s *Stats) Snapshot() Stats {
	return Stats{
		NodesActivated:     atomic.LoadInt64(&s.NodesActivated),
		EdgesDefined:       atomic.LoadInt64(&s.EdgesDefined),
		DefinitionsUndone:  atomic.LoadInt64(&s.DefinitionsUndone),
		PrunerRejections:   atomic.LoadInt64(&s.PrunerRejections),
		LongRuleRejections: atomic.LoadInt64(&s.LongRuleRejections),
		CongruencesFound:   atomic.LoadInt64(&s.CongruencesFound),
		StealsAttempted:    atomic.LoadInt64(&s.StealsAttempted),
		StealsSucceeded:    atomic.LoadInt64(&s.StealsSucceeded),
		IdleRestarts:       atomic.LoadInt64(&s.IdleRestarts),
	}
}
