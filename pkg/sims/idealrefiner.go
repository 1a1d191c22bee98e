package sims

import "github.com/lowindex/sims/pkg/sims/kbrewrite"

// generatingPair is one non-tree-edge pair discovered while walking a
// spanning tree of a word graph's currently defined edges: reading
// either side from node 0 lands on node.
type generatingPair struct {
	rule Rule
	node Node
}

// generatingPairsSoFar walks every edge g has defined so far, in
// node/letter order, growing a spanning tree online; it returns one
// generatingPair for every defined edge that does not extend the tree —
// the same construction GeneratingPairsIterator performs over a
// completed Congruence, generalised to a graph that may still have
// undefined edges (which are simply skipped), so it is safe to call
// mid-search.
func generatingPairsSoFar(g *WordGraph) []generatingPair {
	tree := make(map[Node]Word, int(g.numActive))
	tree[0] = Word{}
	order := []Node{0}
	var pairs []generatingPair
	for i := 0; i < len(order); i++ {
		n := order[i]
		base := tree[n]
		for a := Letter(0); a < Letter(g.alphabetSize); a++ {
			t, ok := g.Target(n, a)
			if !ok {
				continue
			}
			if parent, inTree := tree[t]; inTree {
				lhs := make(Word, len(base)+1)
				copy(lhs, base)
				lhs[len(base)] = a
				if lhs.Equal(parent) {
					continue
				}
				pairs = append(pairs, generatingPair{rule: Rule{Left: lhs, Right: parent.clone()}, node: t})
				continue
			}
			w := make(Word, len(base)+1)
			copy(w, base)
			w[len(base)] = a
			tree[t] = w
			order = append(order, t)
		}
	}
	return pairs
}

// IdealRefiner rejects word graphs that cannot be completed into a Rees
// congruence (the quotient arising from a right or two-sided ideal).
// Every generating pair of the candidate is classified, via an external
// word-equivalence oracle, as accidental (already forced by the defining
// presentation) or genuine. A Rees congruence forces every genuine pair
// to collapse onto a single absorbing class — a node whose every
// out-edge loops back to itself — so Accept rejects as soon as two
// genuine pairs implicate different nodes, and rejects a complete graph
// that found no such node at all. It is the one Pruner that leans on an
// external word-equivalence collaborator rather than deciding
// equivalence itself; pkg/sims/kbrewrite supplies the default oracle.
//
// This default assumes the oracle terminates and does not attempt to
// detect non-termination itself; see DESIGN.md for the tradeoff.
type IdealRefiner struct {
	factory OracleFactory
	oracle  WordEquivalenceOracle // lazily built, one per worker
}

// NewIdealRefiner builds an IdealRefiner whose oracle is lazily constructed
// per worker via factory the first time Accept runs on that worker. If
// factory is nil, a default bounded Knuth-Bendix oracle is built from p.
func NewIdealRefiner(p *Presentation, factory OracleFactory) *IdealRefiner {
	if factory == nil {
		factory = defaultOracleFactory(p)
	}
	return &IdealRefiner{factory: factory}
}

func defaultOracleFactory(p *Presentation) OracleFactory {
	relations := make([][2]kbrewrite.Word, len(p.rules))
	for i, r := range p.rules {
		relations[i] = [2]kbrewrite.Word{toKBWord(r.Left), toKBWord(r.Right)}
	}
	const completionBudget = 512
	return func() WordEquivalenceOracle {
		return &kbOracle{sys: kbrewrite.New(relations, completionBudget)}
	}
}

func toKBWord(w Word) kbrewrite.Word {
	out := make(kbrewrite.Word, len(w))
	for i, a := range w {
		out[i] = uint32(a)
	}
	return out
}

// kbOracle adapts kbrewrite.System (which knows nothing about pkg/sims) to
// the WordEquivalenceOracle interface.
type kbOracle struct {
	sys *kbrewrite.System
}

func (o *kbOracle) Equivalent(u, v Word) EquivalenceResult {
	switch o.sys.Equivalent(toKBWord(u), toKBWord(v)) {
	case kbrewrite.Equal:
		return Equal
	case kbrewrite.NotEqual:
		return NotEqual
	default:
		return Unknown
	}
}

func (r *IdealRefiner) Name() string { return "ideal" }

func (r *IdealRefiner) Accept(g *WordGraph) bool {
	if r.oracle == nil {
		r.oracle = r.factory()
	}
	sink := undefinedNode
	for _, p := range generatingPairsSoFar(g) {
		if r.oracle.Equivalent(p.rule.Left, p.rule.Right) == Equal {
			continue // accidental: already forced by the defining presentation
		}
		if sink == undefinedNode {
			sink = p.node
		} else if sink != p.node {
			return false // two genuine pairs implicate different classes
		}
	}
	if sink == undefinedNode {
		return !g.isComplete()
	}
	for a := Letter(0); a < Letter(g.alphabetSize); a++ {
		if t, ok := g.Target(sink, a); ok && t != sink {
			return false // the candidate sink is not absorbing
		}
	}
	return true
}

// clonePerWorker gives each worker its own oracle instance (e.g. its own
// mutable kbrewrite.System), since WordEquivalenceOracle implementations
// are not assumed safe for concurrent use.
func (r *IdealRefiner) clonePerWorker() Pruner {
	return &IdealRefiner{factory: r.factory}
}
