package sims

// GeneratingPairsIterator reconstructs a set of generating pairs for a
// Congruence: for every non-tree edge (s,a)->t found while replaying a
// spanning tree of the class graph from node 0, it yields the pair
// (word(s).a, word(t)), the two words read off the spanning tree that the
// congruence identifies only because of that edge. Every non-tree edge
// yields a pair; pairs already implied by earlier pairs or by the
// presentation's relations are not removed, so the set is not minimal.
type GeneratingPairsIterator struct {
	pairs []Rule
	pos   int
}

// NewGeneratingPairsIterator builds the iterator eagerly: it walks c's
// class graph exactly once, in node/letter order, growing the spanning
// tree online and emitting a pair for every edge that does not extend it.
func NewGeneratingPairsIterator(c *Congruence) *GeneratingPairsIterator {
	tree := make(map[Node]Word, c.NumClasses)
	tree[0] = Word{}
	order := []Node{0}
	var pairs []Rule

	for i := 0; i < len(order); i++ {
		n := order[i]
		base := tree[n]
		for a := Letter(0); a < Letter(c.AlphabetSize()); a++ {
			t := c.Apply(n, a)
			if _, inTree := tree[t]; inTree {
				lhs := make(Word, len(base)+1)
				copy(lhs, base)
				lhs[len(base)] = a
				if lhs.Equal(tree[t]) {
					continue // the tree edge itself, not an extra pair
				}
				pairs = append(pairs, Rule{Left: lhs, Right: tree[t].clone()})
				continue
			}
			w := make(Word, len(base)+1)
			copy(w, base)
			w[len(base)] = a
			tree[t] = w
			order = append(order, t)
		}
	}
	return &GeneratingPairsIterator{pairs: pairs}
}

// Next returns the next generating pair and advances the iterator, or
// ok=false once every pair has been produced.
func (it *GeneratingPairsIterator) Next() (pair Rule, ok bool) {
	if it.pos >= len(it.pairs) {
		return Rule{}, false
	}
	pair = it.pairs[it.pos]
	it.pos++
	return pair, true
}

// All returns every remaining generating pair and exhausts the iterator.
func (it *GeneratingPairsIterator) All() []Rule {
	out := it.pairs[it.pos:]
	it.pos = len(it.pairs)
	return append([]Rule(nil), out...)
}
