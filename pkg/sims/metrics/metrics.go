// Package metrics exports pkg/sims.Stats counters to Prometheus: one
// struct holding the registered collectors, built against a
// caller-supplied prometheus.Registerer rather than the global
// DefaultRegisterer, and a single method that snapshots the domain
// Stats into them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lowindex/sims/pkg/sims"
)

// Collector exports a sims.Stats snapshot as "lowindex_"-namespaced
// Prometheus gauges.
type Collector struct {
	nodesActivated     prometheus.Gauge
	edgesDefined       prometheus.Gauge
	definitionsUndone  prometheus.Gauge
	prunerRejections   prometheus.Gauge
	longRuleRejections prometheus.Gauge
	congruencesFound   prometheus.Gauge
	stealsAttempted    prometheus.Gauge
	stealsSucceeded    prometheus.Gauge
	idleRestarts       prometheus.Gauge
}

// NewCollector builds and registers the collector's metrics with
// registry.
func NewCollector(registry prometheus.Registerer) *Collector {
	g := func(name, help string) prometheus.Gauge {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lowindex",
			Name:      name,
			Help:      help,
		})
		registry.MustRegister(gauge)
		return gauge
	}
	return &Collector{
		nodesActivated:     g("nodes_activated_total", "Nodes activated across the search so far."),
		edgesDefined:       g("edges_defined_total", "Edges defined across the search so far."),
		definitionsUndone:  g("definitions_undone_total", "Edge definitions rolled back so far."),
		prunerRejections:   g("pruner_rejections_total", "Subtrees rejected by a pruner so far."),
		longRuleRejections: g("long_rule_rejections_total", "Leaf candidates rejected by a long rule so far."),
		congruencesFound:   g("congruences_found_total", "Congruences accepted so far."),
		stealsAttempted:    g("steals_attempted_total", "Work-steal attempts so far."),
		stealsSucceeded:    g("steals_succeeded_total", "Successful work-steals so far."),
		idleRestarts:       g("idle_restarts_total", "Idle-worker restarts so far."),
	}
}

// Observe updates every gauge from a fresh Stats snapshot.
func (c *Collector) Observe(s *sims.Stats) {
	snap := s.Snapshot()
	c.nodesActivated.Set(float64(snap.NodesActivated))
	c.edgesDefined.Set(float64(snap.EdgesDefined))
	c.definitionsUndone.Set(float64(snap.DefinitionsUndone))
	c.prunerRejections.Set(float64(snap.PrunerRejections))
	c.longRuleRejections.Set(float64(snap.LongRuleRejections))
	c.congruencesFound.Set(float64(snap.CongruencesFound))
	c.stealsAttempted.Set(float64(snap.StealsAttempted))
	c.stealsSucceeded.Set(float64(snap.StealsSucceeded))
	c.idleRestarts.Set(float64(snap.IdleRestarts))
}
