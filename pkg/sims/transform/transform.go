// Package transform is the default transformation-semigroup size
// enumerator consumed by RepOrc/MinimalRepOrc: it computes the size of a
// transformation semigroup (or the orbit of one point under it) by
// breadth-first orbit closure.
//
// The bitset used to mark visited points during orbit closure is a
// dense word-backed design: one bit per candidate point, grown by
// doubling rather than reallocated per insert.
package transform

// Transformation is a function on points {0, ..., n-1} encoded as a flat
// image table.
type Transformation struct {
	degree int
	images []uint32
}

// NewTransformation builds a transformation of the given degree from an
// explicit image table; images[i] is the image of point i.
func NewTransformation(images []uint32) *Transformation {
	return &Transformation{degree: len(images), images: append([]uint32(nil), images...)}
}

// Degree returns the number of points the transformation acts on.
func (t *Transformation) Degree() int { return t.degree }

// Image returns the image of point p.
func (t *Transformation) Image(p uint32) uint32 { return t.images[p] }

// Compose returns t∘u, i.e. the transformation p -> u(t(p)).
func (t *Transformation) Compose(u *Transformation) *Transformation {
	out := make([]uint32, t.degree)
	for p := 0; p < t.degree; p++ {
		out[p] = u.images[t.images[p]]
	}
	return &Transformation{degree: t.degree, images: out}
}

func (t *Transformation) equal(other *Transformation) bool {
	if t.degree != other.degree {
		return false
	}
	for i, v := range t.images {
		if other.images[i] != v {
			return false
		}
	}
	return true
}

// bitset is a minimal word-backed visited-set, grown by doubling.
type bitset struct {
	words []uint64
}

func newBitset(hint int) *bitset {
	return &bitset{words: make([]uint64, (hint+63)/64+1)}
}

func (b *bitset) grow(i int) {
	need := i/64 + 1
	if need <= len(b.words) {
		return
	}
	cap := len(b.words) * 2
	if cap < need {
		cap = need
	}
	grown := make([]uint64, cap)
	copy(grown, b.words)
	b.words = grown
}

func (b *bitset) testAndSet(i int) bool {
	b.grow(i)
	mask := uint64(1) << uint(i%64)
	was := b.words[i/64]&mask != 0
	b.words[i/64] |= mask
	return was
}

// Semigroup is the transformation semigroup generated by a set of
// transformations, its elements enumerated lazily by orbit closure.
type Semigroup struct {
	gens []*Transformation
}

// NewSemigroup returns the transformation semigroup generated by gens.
func NewSemigroup(gens []*Transformation) *Semigroup {
	return &Semigroup{gens: append([]*Transformation(nil), gens...)}
}

// Size computes |S| by breadth-first orbit closure over the Cayley graph
// of elements under right multiplication by each generator, stopping
// early and returning ok=false if the closure would exceed limit
// elements. RepOrc/MinimalRepOrc use limit to bound the search.
func (s *Semigroup) Size(limit int) (size int, ok bool) {
	if len(s.gens) == 0 {
		return 0, true
	}
	seen := make([]*Transformation, 0, 64)
	contains := func(t *Transformation) bool {
		for _, u := range seen {
			if u.equal(t) {
				return true
			}
		}
		return false
	}
	queue := append([]*Transformation(nil), s.gens...)
	for _, g := range s.gens {
		if !contains(g) {
			seen = append(seen, g)
		}
	}
	for i := 0; i < len(queue); i++ {
		if len(seen) > limit {
			return len(seen), false
		}
		cur := queue[i]
		for _, g := range s.gens {
			next := cur.Compose(g)
			if !contains(next) {
				seen = append(seen, next)
				queue = append(queue, next)
			}
		}
	}
	if len(seen) > limit {
		return len(seen), false
	}
	return len(seen), true
}

// pointOrbit computes the orbit of start by breadth-first closure under
// images, using bitset to mark visited points.
func pointOrbit(images []*Transformation, start uint32) []uint32 {
	if len(images) == 0 {
		return []uint32{start}
	}
	visited := newBitset(int(start) + 1)
	visited.testAndSet(int(start))
	orbit := []uint32{start}
	for i := 0; i < len(orbit); i++ {
		p := orbit[i]
		for _, t := range images {
			q := t.Image(p)
			if !visited.testAndSet(int(q)) {
				orbit = append(orbit, q)
			}
		}
	}
	return orbit
}

// PointOrbit returns the orbit of point start under the given
// transformations.
func PointOrbit(gens []*Transformation, start uint32) []uint32 {
	return pointOrbit(gens, start)
}
