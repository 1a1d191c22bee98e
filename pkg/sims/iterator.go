package sims

// IteratorState is one independent depth-first search over the space of
// partial word graphs, with its own WordGraph, pending-definition stack
// and (for Sims2) two-sided bookkeeping. schedulerUnit wraps one
// IteratorState per worker and splits a state's pending stack in half to
// hand work to an idle peer.
type IteratorState struct {
	pres          *Presentation
	maxNodes      Node
	minTargetNode Node
	graph         *WordGraph
	pruners       *PrunerSet
	included      []Rule
	twoSided      *twoSidedState
	pending       []pendingDef
	stats         *Stats
}

// nodeBounds returns the minimum node index an edge may ever target and
// the total node budget the search allocates, given the caller's
// requested class bound n. A monoid presentation (or any presentation
// whose relations involve the empty word) treats node 0 as the
// identity class, so the literal range [0, n) is searched. A semigroup
// presentation reserves node 0 as an unreachable auxiliary sink: no
// edge may ever be defined to target it, and the n real classes get
// nodes 1..n, so the graph needs one extra slot of capacity.
func nodeBounds(pres *Presentation, n Node) (minTargetNode, maxNumClasses Node) {
	if pres.IsMonoid() || pres.ContainsEmptyWord() {
		return 0, n
	}
	return 1, n + 1
}

// newIteratorState builds a fresh search rooted at the one-node graph
// {0}, with pending candidates queued for its first undefined edge.
func newIteratorState(pres *Presentation, maxNodes Node, pruners *PrunerSet, included []Rule, twoSided bool, stats *Stats) *IteratorState {
	minTargetNode, maxNumClasses := nodeBounds(pres, maxNodes)
	tree := newFelschTree(pres.ShortRules())
	g := newWordGraph(pres.AlphabetSize(), maxNumClasses, tree)
	g.activateNode()
	if stats == nil {
		stats = NewStats()
	}
	it := &IteratorState{
		pres:          pres,
		maxNodes:      maxNumClasses,
		minTargetNode: minTargetNode,
		graph:         g,
		pruners:       pruners,
		included:      included,
		stats:         stats,
	}
	if twoSided {
		it.twoSided = newTwoSidedState(maxNumClasses)
		it.twoSided.attach(g)
	}
	if s, a, has := g.firstUndefined(); has {
		it.pushCandidates(s, a)
	}
	return it
}

// pushCandidates queues every way of defining edge (s,a): a brand new
// node first (only when maxNodes allows growing further), then every
// existing target from numNodes-1 down to minTargetNode. Candidates
// are LIFO frames, so this ordering is tried in reverse: smallest
// existing target first, new node last.
func (it *IteratorState) pushCandidates(s Node, a Letter) {
	logLen := it.graph.logLen()
	numNodes := it.graph.NumActiveNodes()
	if numNodes < it.maxNodes {
		it.pending = append(it.pending, pendingDef{
			source: s, letter: a,
			numEdgesBefore: logLen, numNodesBefore: numNodes,
			targetIsNew: true,
		})
	}
	if numNodes > it.minTargetNode {
		for t := numNodes - 1; ; t-- {
			it.pending = append(it.pending, pendingDef{
				source: s, letter: a, target: t,
				numEdgesBefore: logLen, numNodesBefore: numNodes,
			})
			if t == it.minTargetNode {
				break
			}
		}
	}
}

// extraPairs returns every rule, beyond the short presentation rules
// already driven by the felsch tree, that must be kept satisfied at every
// active node: caller-included pairs, plus (for Sims2) the accumulated
// two-sided pair log.
func (it *IteratorState) extraPairs() []Rule {
	if it.twoSided == nil {
		return it.included
	}
	if len(it.included) == 0 {
		return it.twoSided.all()
	}
	out := make([]Rule, 0, len(it.included)+len(it.twoSided.pairs))
	out = append(out, it.included...)
	out = append(out, it.twoSided.all()...)
	return out
}

// applyPendingDef defines the edge pd describes, propagates to fixpoint,
// and runs the pruner set; it returns false the moment anything proves the
// resulting subtree dead, leaving the caller to roll back to pd's recorded
// mark.
func (it *IteratorState) applyPendingDef(pd pendingDef) bool {
	logStart := it.graph.logLen()
	var target Node
	if pd.targetIsNew {
		target = it.graph.registerNewNodeEdge(pd.source, pd.letter)
		it.stats.recordNodeActivated()
		if it.twoSided != nil {
			it.twoSided.assignWitness(pd.source, pd.letter, target)
		}
	} else {
		target = pd.target
		it.graph.registerTarget(pd.source, pd.letter, target)
	}
	it.stats.recordEdgeDefined()
	if !it.pruners.Accept(it.graph) {
		it.stats.recordPrunerRejection()
		return false
	}
	if !it.graph.propagate(logStart, it.extraPairs) {
		return false
	}
	if !it.pruners.Accept(it.graph) {
		it.stats.recordPrunerRejection()
		return false
	}
	return true
}

// verifyLeaf is run once the graph has every edge defined: it checks
// the long rules (consulted only here, never during propagation) and
// re-runs the pruner set over the completed graph.
func (it *IteratorState) verifyLeaf() bool {
	n := it.graph.NumActiveNodes()
	if !it.graph.makeCompatible(0, n, it.pres.LongRules()) {
		it.stats.recordLongRuleRejection()
		return false
	}
	if it.twoSided != nil && !it.graph.makeCompatible(0, n, it.twoSided.all()) {
		it.stats.recordLongRuleRejection()
		return false
	}
	if !it.pruners.Accept(it.graph) {
		it.stats.recordPrunerRejection()
		return false
	}
	it.stats.recordCongruenceFound()
	return true
}

// rollback undoes every definition made at or after pd's mark, on both the
// WordGraph and (if present) the two-sided bookkeeping.
func (it *IteratorState) rollback(pd pendingDef) {
	it.stats.recordDefinitionsUndone(int64(it.graph.logLen() - pd.numEdgesBefore))
	it.graph.reduceTo(pd.numEdgesBefore, pd.numNodesBefore)
	if it.twoSided != nil {
		it.twoSided.truncate(pd.numEdgesBefore, pd.numNodesBefore)
	}
}

// advance runs the search until it produces the next complete, accepted
// word graph (found=true) or exhausts the pending stack (done=true).
func (it *IteratorState) advance() (found bool, done bool) {
	for len(it.pending) > 0 {
		pd := it.pending[len(it.pending)-1]
		it.pending = it.pending[:len(it.pending)-1]
		it.rollback(pd)
		if !it.applyPendingDef(pd) {
			continue
		}
		if s, a, has := it.graph.firstUndefined(); has {
			it.pushCandidates(s, a)
			continue
		}
		if it.verifyLeaf() {
			return true, false
		}
	}
	return false, true
}

// Graph exposes the current word graph; valid only immediately after
// advance returns found=true, and invalidated by the next advance call.
func (it *IteratorState) Graph() *WordGraph { return it.graph }

// snapshot captures the current graph as an immutable Congruence, safe to
// hand off after advance returns found=true.
func (it *IteratorState) snapshot() *Congruence { return it.graph.congruence() }

// hasWork reports whether advance can still make progress.
func (it *IteratorState) hasWork() bool { return len(it.pending) > 0 }

// split removes roughly half of it's pending stack (alternating frames, so
// both halves get a mix of shallow and deep candidates rather than one
// half inheriting only the cheap near-leaf work) and returns a new
// IteratorState carrying it, with its own cloned graph so the two halves
// can diverge independently.
// Returns nil if there is too little work to divide.
func (it *IteratorState) split() *IteratorState {
	if len(it.pending) < 2 {
		return nil
	}
	mine := make([]pendingDef, 0, (len(it.pending)+1)/2)
	theirs := make([]pendingDef, 0, len(it.pending)/2)
	for i, pd := range it.pending {
		if i%2 == 0 {
			mine = append(mine, pd)
		} else {
			theirs = append(theirs, pd)
		}
	}
	it.pending = mine
	cp := it.clone()
	cp.pending = theirs
	return cp
}

// clone deep-copies the state, used when a worker's half of its pending
// stack is handed to an idle peer: the WordGraph is cloned so
// the two halves can diverge independently.
func (it *IteratorState) clone() *IteratorState {
	cp := &IteratorState{
		pres:          it.pres,
		maxNodes:      it.maxNodes,
		minTargetNode: it.minTargetNode,
		graph:         it.graph.clone(),
		pruners:       it.pruners.clone(),
		included:      it.included,
		stats:         it.stats,
	}
	cp.graph.tree = it.graph.tree
	if it.twoSided != nil {
		cp.twoSided = &twoSidedState{
			witness: append([]Word(nil), it.twoSided.witness...),
			pairs:   append([]twoSidedPair(nil), it.twoSided.pairs...),
		}
		cp.twoSided.attach(cp.graph)
	}
	cp.pending = append([]pendingDef(nil), it.pending...)
	return cp
}
