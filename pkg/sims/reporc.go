package sims

import "github.com/lowindex/sims/pkg/sims/transform"

// RepOrc searches for a single congruence whose action generates a
// transformation semigroup of an exact target size, with the
// congruence's own class count bounded between MinN and MaxN. It is a
// narrower, cheaper search than enumerating every congruence up to
// MaxN: the transformation-semigroup size check runs as a FindIf
// predicate, so the underlying search still stops at the first match.
type RepOrc struct {
	sims1      *Sims1
	minN       Node
	maxN       Node
	targetSize int
	isMonoid   bool
}

// NewRepOrc builds a RepOrc over settings, accepting only congruences
// whose class count is at least minN and at most maxN, and whose
// generated transformation semigroup has exactly targetSize elements.
func NewRepOrc(settings *Settings, minN, maxN Node, targetSize int) *RepOrc {
	p := settings.Presentation()
	return &RepOrc{
		sims1:      NewSims1(settings),
		minN:       minN,
		maxN:       maxN,
		targetSize: targetSize,
		isMonoid:   p.IsMonoid() || p.ContainsEmptyWord(),
	}
}

// generators builds one Transformation per alphabet letter from c's
// action, restricted to the points [first, c.NumClasses). On a
// semigroup presentation, first is 1: node 0 is the auxiliary sink
// reserved by the search and never belongs to the generated
// transformation semigroup, so points are rebased by first when
// building each Transformation's image list.
func generators(c *Congruence, first Node) []*transform.Transformation {
	out := make([]*transform.Transformation, c.AlphabetSize())
	n := c.NumClasses - first
	for a := Letter(0); a < Letter(c.AlphabetSize()); a++ {
		images := make([]uint32, n)
		for i := Node(0); i < n; i++ {
			images[i] = uint32(c.Apply(i+first, a) - first)
		}
		out[a] = transform.NewTransformation(images)
	}
	return out
}

// Find runs the search, returning the first accepted congruence whose
// class count falls in [MinN, MaxN] and whose generated transformation
// semigroup has exactly TargetSize elements.
func (r *RepOrc) Find() (result *Congruence, ok bool) {
	first := Node(1)
	if r.isMonoid {
		first = 0
	}
	return r.sims1.FindIf(r.maxN, func(c *Congruence) bool {
		if c.NumClasses-first < r.minN {
			return false
		}
		sg := transform.NewSemigroup(generators(c, first))
		size, within := sg.Size(r.targetSize)
		return within && size == r.targetSize
	})
}

// Stats exposes the underlying search's live counters.
func (r *RepOrc) Stats() *Stats { return r.sims1.Stats() }

// MinimalRepOrc finds the congruence generating a transformation
// semigroup of exactly TargetSize elements using the fewest possible
// classes. Rather than scanning node budgets upward from 1 (which
// would repeat almost all of the search at every step), it alternates
// a single RepOrc call at a known-good budget, then tightens that
// budget until no smaller one succeeds.
type MinimalRepOrc struct {
	settings   *Settings
	targetSize int
}

// NewMinimalRepOrc builds a MinimalRepOrc over settings targeting
// exactly targetSize elements.
func NewMinimalRepOrc(settings *Settings, targetSize int) *MinimalRepOrc {
	return &MinimalRepOrc{settings: settings, targetSize: targetSize}
}

// Find returns the congruence with the fewest classes whose generated
// transformation semigroup has exactly TargetSize elements, or
// ok=false if none exists at any node budget up to TargetSize.
//
// It alternates: best := RepOrc(1, TargetSize, TargetSize).Find(). If
// best is not found, there is no match at all. Otherwise it repeats
// next := RepOrc(1, k-1, TargetSize).Find(), where k is best's class
// count without the auxiliary sink node 0 of a semigroup presentation,
// tightening the ceiling to one less than the best class count found so
// far, until a tightening attempt fails or k is 1; the last successful
// result is the minimal one.
func (m *MinimalRepOrc) Find() (result *Congruence, ok bool) {
	best, found := NewRepOrc(m.settings, 1, Node(m.targetSize), m.targetSize).Find()
	if !found {
		return nil, false
	}
	first := Node(1)
	if p := m.settings.Presentation(); p.IsMonoid() || p.ContainsEmptyWord() {
		first = 0
	}
	for {
		classes := best.NumClasses - first
		if classes <= 1 {
			return best, true
		}
		next, found := NewRepOrc(m.settings, 1, classes-1, m.targetSize).Find()
		if !found {
			return best, true
		}
		best = next
	}
}
