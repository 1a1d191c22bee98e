package sims

// Congruence is an immutable snapshot of one accepted word graph: a
// complete, deterministic action of the alphabet on {0,...,NumClasses-1}
// satisfying the presentation. It outlives the IteratorState that
// produced it, unlike WordGraph which is mutated in place during
// search.
type Congruence struct {
	NumClasses   Node
	alphabetSize uint32
	edges        []Node
}

// Apply returns the class reached from class n by reading letter a.
func (c *Congruence) Apply(n Node, a Letter) Node {
	return c.edges[int(n)*int(c.alphabetSize)+int(a)]
}

// AlphabetSize returns the size of the alphabet the congruence acts over.
func (c *Congruence) AlphabetSize() uint32 { return c.alphabetSize }

// Word returns the class reached from class 0 by reading w, the
// convention used throughout this package for naming a class by one of
// its representative words.
func (c *Congruence) Word(w Word) Node {
	n := Node(0)
	for _, a := range w {
		n = c.Apply(n, a)
	}
	return n
}

// congruence takes an immutable snapshot of g, valid for the lifetime of
// the returned value regardless of further mutation of g.
func (g *WordGraph) congruence() *Congruence {
	n := int(g.numActive) * int(g.alphabetSize)
	return &Congruence{
		NumClasses:   g.numActive,
		alphabetSize: g.alphabetSize,
		edges:        append([]Node(nil), g.edges[:n]...),
	}
}
