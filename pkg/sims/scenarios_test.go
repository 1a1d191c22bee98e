package sims_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowindex/sims/pkg/sims"
)

// coxeterSymmetricGroup builds the standard Coxeter presentation of the
// symmetric group on n+1 points: generators a_0,...,a_{n-1}, each an
// involution, adjacent generators braiding with order 3, and
// non-adjacent generators commuting.
func coxeterSymmetricGroup(t *testing.T, n int) *sims.Presentation {
	t.Helper()
	empty := sims.Word{}
	var rules []sims.Rule
	gen := func(a sims.Letter, k int) sims.Word {
		w := make(sims.Word, k)
		for i := range w {
			w[i] = a
		}
		return w
	}
	for i := 0; i < n; i++ {
		rules = append(rules, sims.Rule{Left: gen(sims.Letter(i), 2), Right: empty})
	}
	for i := 0; i+1 < n; i++ {
		word := sims.Word{sims.Letter(i), sims.Letter(i + 1)}
		cubed := append(append(append(sims.Word{}, word...), word...), word...)
		rules = append(rules, sims.Rule{Left: cubed, Right: empty})
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			word := sims.Word{sims.Letter(i), sims.Letter(j)}
			squared := append(append(sims.Word{}, word...), word...)
			rules = append(rules, sims.Rule{Left: squared, Right: empty})
		}
	}
	p, err := sims.NewPresentationFromWords(uint32(n), rules, true)
	require.NoError(t, err)
	return p
}

// Scenario 1: symmetric group on 5 points, standard Coxeter presentation.
func TestSims1SymmetricGroupOnFivePoints(t *testing.T) {
	p := coxeterSymmetricGroup(t, 4)
	s := sims.NewSims1(sims.NewSettings(p))
	require.Equal(t, int64(2), s.NumberOfCongruences(3))
}

// Scenario 3: the monoid <a | a^4=a> with max_classes=3. The only
// accepted graphs are the trivial one-class quotient (0 -a-> 0), the
// two-class quotient (0 -a-> 1 -a-> 1), and the three-class 3-cycle.
func TestSims1CyclicOrderThreeHasThreeQuotients(t *testing.T) {
	p, err := sims.NewPresentationFromWords(1, []sims.Rule{
		{Left: sims.Word{0, 0, 0, 0}, Right: sims.Word{0}},
	}, true)
	require.NoError(t, err)
	settings := sims.NewSettings(p)

	s := sims.NewSims1(settings)
	var classCounts []sims.Node
	s.ForEach(3, func(c *sims.Congruence) bool {
		classCounts = append(classCounts, c.NumClasses)
		return true
	})
	require.Len(t, classCounts, 3)
	require.ElementsMatch(t, []sims.Node{1, 2, 3}, classCounts)
}

// Scenario 4: a monoid presentation <a | a^2=a>, max_classes=2, yields
// exactly the trivial one-class quotient and the two-class quotient with
// edges (0,a)=1, (1,a)=1.
func TestSims1IdempotentMonoidHasTwoQuotients(t *testing.T) {
	p, err := sims.NewPresentationFromWords(1, []sims.Rule{
		{Left: sims.Word{0, 0}, Right: sims.Word{0}},
	}, true)
	require.NoError(t, err)

	s := sims.NewSims1(sims.NewSettings(p))
	var shapes [][2]sims.Node
	s.ForEach(2, func(c *sims.Congruence) bool {
		shapes = append(shapes, [2]sims.Node{c.NumClasses, c.Apply(0, 0)})
		return true
	})
	require.Len(t, shapes, 2)
	require.Contains(t, shapes, [2]sims.Node{1, 0})
	require.Contains(t, shapes, [2]sims.Node{2, 1})
}

// Idempotence: reconfiguring Settings with the same values twice has no
// additional effect, and a fresh Sims1 built from those settings starts
// with cleared statistics.
func TestSettingsIdempotence(t *testing.T) {
	p := freeMonogenic(t)
	settings := sims.NewSettings(p).NumberOfThreads(2).NumberOfThreads(2).
		LongRuleLength(5).LongRuleLength(5)

	first := sims.NewSims1(settings).NumberOfCongruences(4)
	second := sims.NewSims1(settings).NumberOfCongruences(4)
	require.Equal(t, first, second)

	s := sims.NewSims1(settings)
	snap := s.Stats().Snapshot()
	require.Equal(t, int64(0), snap.CongruencesFound)
}

// Round-trip of generating pairs: running the enumerator again with the
// generating pairs of a yielded graph included, and the same node budget,
// reproduces a graph with the identical class action.
func TestGeneratingPairsRoundTrip(t *testing.T) {
	p, err := sims.NewPresentationFromWords(1, []sims.Rule{
		{Left: sims.Word{0, 0}, Right: sims.Word{0}},
	}, true)
	require.NoError(t, err)

	s := sims.NewSims1(sims.NewSettings(p))
	var original *sims.Congruence
	s.ForEach(2, func(c *sims.Congruence) bool {
		if c.NumClasses == 2 {
			original = c
			return false
		}
		return true
	})
	require.NotNil(t, original)

	pairs := sims.NewGeneratingPairsIterator(original).All()
	settings := sims.NewSettings(p).Include(pairs...)
	rebuilt := sims.NewSims1(settings)

	var found *sims.Congruence
	rebuilt.ForEach(original.NumClasses, func(c *sims.Congruence) bool {
		if c.NumClasses == original.NumClasses {
			found = c
			return false
		}
		return true
	})
	require.NotNil(t, found)
	for n := sims.Node(0); n < original.NumClasses; n++ {
		require.Equal(t, original.Apply(n, 0), found.Apply(n, 0))
	}
}
