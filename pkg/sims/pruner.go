package sims

// Pruner is a pure predicate over a WordGraph that rejects subtrees of the
// search. Implementations must be monotone in the ancestry
// order: if a Pruner rejects W, it must also reject every graph obtainable
// from W by further defining edges (without merging nodes or exceeding
// node limits).
type Pruner interface {
	// Accept returns false to reject the subtree rooted at g.
	Accept(g *WordGraph) bool

	// Name identifies the pruner for diagnostics/Stats labeling.
	Name() string
}

// PrunerSet is an ordered list of Pruners consulted at every successful
// search step; a single false rejects the subtree,
// short-circuiting the rest.
type PrunerSet struct {
	pruners []Pruner
}

// Add appends a pruner to the set.
func (ps *PrunerSet) Add(p Pruner) {
	ps.pruners = append(ps.pruners, p)
}

// Len reports how many pruners are registered.
func (ps *PrunerSet) Len() int { return len(ps.pruners) }

// Accept runs every pruner in order, short-circuiting on the first
// rejection.
func (ps *PrunerSet) Accept(g *WordGraph) bool {
	for _, p := range ps.pruners {
		if !p.Accept(g) {
			return false
		}
	}
	return true
}

// perThreadPruner is implemented by Pruners that carry per-worker state
// (IdealRefiner's lazily-built oracle, notably) and must not be shared
// across goroutines. PrunerSet.clone consults this instead of aliasing the
// instance.
type perThreadPruner interface {
	Pruner
	clonePerWorker() Pruner
}

// clone returns a copy of the set suitable for handing to another worker:
// stateless pruners are shared directly, stateful ones are cloned via
// clonePerWorker so each worker gets its own mutable state (e.g. its own
// lazily-built Knuth-Bendix oracle).
func (ps *PrunerSet) clone() *PrunerSet {
	cp := &PrunerSet{pruners: make([]Pruner, len(ps.pruners))}
	for i, p := range ps.pruners {
		if pt, ok := p.(perThreadPruner); ok {
			cp.pruners[i] = pt.clonePerWorker()
		} else {
			cp.pruners[i] = p
		}
	}
	return cp
}
