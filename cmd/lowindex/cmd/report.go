package cmd

import (
	"time"

	"github.com/lowindex/sims/pkg/sims"
)

// startStatsReporter logs a Stats snapshot every interval until stop is
// called. A non-positive interval disables reporting and returns a no-op
// stop function, so callers can defer stop() unconditionally.
func startStatsReporter(stats *sims.Stats, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				snap := stats.Snapshot()
				GetLogger().Info("search progress",
					"nodes_activated", snap.NodesActivated,
					"edges_defined", snap.EdgesDefined,
					"congruences_found", snap.CongruencesFound,
					"pruner_rejections", snap.PrunerRejections,
					"steals_succeeded", snap.StealsSucceeded,
					"idle_restarts", snap.IdleRestarts,
				)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
