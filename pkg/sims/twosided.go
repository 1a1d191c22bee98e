package sims

// twoSidedState tracks the extra bookkeeping Sims2 needs beyond Sims1's
// plain one-sided congruence search: a witness word per
// active node (the spanning-tree word used to read off that node's row
// of the presentation) and a log of "two-sided pairs" generated whenever
// an edge definition reuses an existing node, each entry tagged with the
// definition-log index it was produced at so it can be rolled back in
// lockstep with the WordGraph.
type twoSidedState struct {
	witness []Word // witness[n] is the word reaching node n from node 0
	pairs   []twoSidedPair
}

type twoSidedPair struct {
	rule    Rule
	logMark int // g.logLen() at the time this pair was appended
}

func newTwoSidedState(maxNodes Node) *twoSidedState {
	return &twoSidedState{witness: make([]Word, 1, maxNodes)}
}

// attach wires g's onDefine hook so that every edge definition which
// targets a pre-existing node appends a two-sided pair: the word reaching
// the new edge's source, extended by the edge's letter, paired against the
// witness word of the (already-existing) target.
//
// For edges that define a brand new node, the target's witness word is
// assigned instead (there is no pair to record: the target has no other
// identity yet to reconcile against).
func (ts *twoSidedState) attach(g *WordGraph) {
	g.onDefine = func(s Node, a Letter, t Node) {
		srcWord := ts.witness[s]
		lhs := make(Word, len(srcWord)+1)
		copy(lhs, srcWord)
		lhs[len(srcWord)] = a
		ts.pairs = append(ts.pairs, twoSidedPair{
			rule:    Rule{Left: lhs, Right: ts.witness[t]},
			logMark: g.logLen(),
		})
	}
}

// assignWitness must be called immediately after registerNewNodeEdge
// activates a fresh node t via edge (s,a), before any further definitions
// are made, so ts.witness stays in lockstep with g's active node count.
func (ts *twoSidedState) assignWitness(s Node, a Letter, t Node) {
	srcWord := ts.witness[s]
	w := make(Word, len(srcWord)+1)
	copy(w, srcWord)
	w[len(srcWord)] = a
	if int(t) == len(ts.witness) {
		ts.witness = append(ts.witness, w)
	} else {
		ts.witness[t] = w
	}
}

// pairsSince returns the two-sided pairs whose logMark exceeds logLen, in
// the order they were recorded. The search itself does not call it; it
// uses all and truncate.
func (ts *twoSidedState) pairsSince(logLen int) []Rule {
	out := make([]Rule, 0, len(ts.pairs))
	for _, p := range ts.pairs {
		if p.logMark > logLen {
			out = append(out, p.rule)
		}
	}
	return out
}

// all returns every two-sided pair recorded so far, used as the extraPairs
// source for propagate's make_compatible pass.
func (ts *twoSidedState) all() []Rule {
	out := make([]Rule, len(ts.pairs))
	for i, p := range ts.pairs {
		out[i] = p.rule
	}
	return out
}

// truncate drops every pair and witness entry recorded at or after
// numEdgesBefore/numNodesBefore, mirroring WordGraph.reduceTo extended
// to the two-sided bookkeeping.
func (ts *twoSidedState) truncate(numEdgesBefore int, numNodesBefore Node) {
	i := len(ts.pairs)
	for i > 0 && ts.pairs[i-1].logMark > numEdgesBefore {
		i--
	}
	ts.pairs = ts.pairs[:i]
	if int(numNodesBefore) < len(ts.witness) {
		ts.witness = ts.witness[:numNodesBefore]
	}
}
