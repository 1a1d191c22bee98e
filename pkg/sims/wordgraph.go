package sims

// Node is a small unsigned integer identifying an equivalence class.
type Node uint32

const undefinedNode Node = ^Node(0)

// definedEdge records a single (source, letter) -> target definition made
// during the search, in the order it was made. It is the unit the
// definition log is built from.
type definedEdge struct {
	source Node
	letter Letter
}

// WordGraph is the partial deterministic edge-labelled graph under
// construction during search. Edges are stored in one flat, pre-sized
// slice reused for the lifetime of the owning iterator: hot-path buffers
// are allocated once and mutated in place rather than reallocated per
// step.
type WordGraph struct {
	alphabetSize uint32
	maxNodes     Node
	edges        []Node // flat, size maxNodes*alphabetSize
	numActive    Node
	log          []definedEdge
	tree         *felschTree

	// onDefine, when set, is invoked after every registerTarget call whose
	// target is a node that already existed before this edge (i.e. every
	// call made through registerTarget rather than registerNewNodeEdge).
	// The two-sided extension (twosided.go) uses this to grow its
	// two-sided pair log.
	onDefine func(s Node, a Letter, t Node)
}

// newWordGraph allocates a WordGraph able to hold up to maxNodes active
// nodes over the given alphabet, with propagation driven by tree.
func newWordGraph(alphabetSize uint32, maxNodes Node, tree *felschTree) *WordGraph {
	g := &WordGraph{
		alphabetSize: alphabetSize,
		maxNodes:     maxNodes,
		edges:        make([]Node, int(maxNodes)*int(alphabetSize)),
		tree:         tree,
	}
	for i := range g.edges {
		g.edges[i] = undefinedNode
	}
	return g
}

func (g *WordGraph) index(n Node, a Letter) int {
	return int(n)*int(g.alphabetSize) + int(a)
}

// Target returns the edge target for (n, a), or false if undefined.
func (g *WordGraph) Target(n Node, a Letter) (Node, bool) {
	t := g.edges[g.index(n, a)]
	return t, t != undefinedNode
}

// NumActiveNodes returns the number of active nodes, 0..NumActiveNodes-1.
func (g *WordGraph) NumActiveNodes() Node { return g.numActive }

// AlphabetSize returns the size of the alphabet this graph is defined over.
func (g *WordGraph) AlphabetSize() uint32 { return g.alphabetSize }

// activateNode brings a previously-unused node into play, returning its id.
func (g *WordGraph) activateNode() Node {
	if g.numActive >= g.maxNodes {
		invariantf("activateNode: no room for a new node (maxNodes=%d)", g.maxNodes)
	}
	n := g.numActive
	g.numActive++
	return n
}

// registerTarget defines edges[s,a] := t. Requires the edge was previously
// undefined and t < numActive. No rule checking is done
// here; that is process_definitions' job.
func (g *WordGraph) registerTarget(s Node, a Letter, t Node) {
	idx := g.index(s, a)
	if g.edges[idx] != undefinedNode {
		invariantf("registerTarget: edge (%d,%d) already defined", s, a)
	}
	if t >= g.numActive {
		invariantf("registerTarget: target %d is not yet an active node", t)
	}
	g.edges[idx] = t
	g.log = append(g.log, definedEdge{source: s, letter: a})
	if g.onDefine != nil {
		g.onDefine(s, a, t)
	}
}

// registerNewNodeEdge activates a fresh node and defines (s,a) to point at
// it in one step. Unlike registerTarget, this never fires onDefine: the
// target did not exist before this edge, so there is nothing for the
// two-sided extension to log a pair against (witness-word
// assignment covers this case instead).
func (g *WordGraph) registerNewNodeEdge(s Node, a Letter) Node {
	t := g.activateNode()
	idx := g.index(s, a)
	if g.edges[idx] != undefinedNode {
		invariantf("registerNewNodeEdge: edge (%d,%d) already defined", s, a)
	}
	g.edges[idx] = t
	g.log = append(g.log, definedEdge{source: s, letter: a})
	return t
}

// logLen returns the current length of the definition log.
func (g *WordGraph) logLen() int { return len(g.log) }

// reduceTo undoes every definition made since the log had length k,
// clearing the corresponding edge slots, and truncates numActive back to
// numNodes. Nodes above numNodes are left with
// undefined edges; they become inactive again.
func (g *WordGraph) reduceTo(k int, numNodes Node) {
	if k < 0 || k > len(g.log) {
		invariantf("reduceTo: log index %d out of range [0,%d]", k, len(g.log))
	}
	for i := len(g.log) - 1; i >= k; i-- {
		e := g.log[i]
		g.edges[g.index(e.source, e.letter)] = undefinedNode
	}
	g.log = g.log[:k]
	if numNodes > g.numActive {
		invariantf("reduceTo: cannot grow numActive from %d to %d via rollback", g.numActive, numNodes)
	}
	g.numActive = numNodes
}

// follow reads the path of w from n, returning the resulting node and
// whether the whole path was defined.
func (g *WordGraph) follow(n Node, w Word) (Node, bool) {
	cur := n
	for _, a := range w {
		t, ok := g.Target(cur, a)
		if !ok {
			return 0, false
		}
		cur = t
	}
	return cur, true
}

// firstUndefined finds the smallest active node and smallest letter with an
// undefined edge, in that priority order (push-descendants
// policy). ok is false if the graph is edge-complete.
func (g *WordGraph) firstUndefined() (n Node, a Letter, ok bool) {
	for node := Node(0); node < g.numActive; node++ {
		for letter := Letter(0); letter < Letter(g.alphabetSize); letter++ {
			if _, defined := g.Target(node, letter); !defined {
				return node, letter, true
			}
		}
	}
	return 0, 0, false
}

// isComplete reports whether every active node has every edge defined.
func (g *WordGraph) isComplete() bool {
	_, _, ok := g.firstUndefined()
	return !ok
}

// clone returns a deep, independent copy of g, used when a worker's
// FelschGraph state must be split during a steal.
func (g *WordGraph) clone() *WordGraph {
	cp := &WordGraph{
		alphabetSize: g.alphabetSize,
		maxNodes:     g.maxNodes,
		edges:        append([]Node(nil), g.edges...),
		numActive:    g.numActive,
		log:          append([]definedEdge(nil), g.log...),
		tree:         g.tree,
	}
	return cp
}
