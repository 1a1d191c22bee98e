package sims_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowindex/sims/pkg/sims"
)

func TestGeneratingPairsIteratorTrivialCongruenceHasOneSelfLoopPair(t *testing.T) {
	p, err := sims.NewPresentationFromWords(1, nil, false)
	require.NoError(t, err)
	s := sims.NewSims1(sims.NewSettings(p))
	// On a semigroup presentation NumClasses also counts the auxiliary
	// sink at node 0, so the one-class congruence has NumClasses == 2.
	c, ok := s.FindIf(1, func(c *sims.Congruence) bool { return c.NumClasses == 2 })
	require.True(t, ok)

	it := sims.NewGeneratingPairsIterator(c)
	pair, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, sims.Rule{Left: sims.Word{0, 0}, Right: sims.Word{0}}, pair,
		"the class's a-edge loops back on itself, the only non-tree edge")
	_, ok = it.Next()
	require.False(t, ok, "the index-1 congruence has exactly one non-tree edge")
}

func TestGeneratingPairsIteratorProducesPairsThatCollapseUnderTheCongruence(t *testing.T) {
	// a.a = a makes node 1's a-edge loop back on node 1 in every accepted
	// graph, and that loop is a non-tree edge, so at least one generating
	// pair should be produced somewhere in the search space.
	p, err := sims.NewPresentationFromWords(1, []sims.Rule{
		{Left: sims.Word{0, 0}, Right: sims.Word{0}},
	}, false)
	require.NoError(t, err)

	s := sims.NewSims1(sims.NewSettings(p))
	found := false
	s.ForEach(2, func(c *sims.Congruence) bool {
		it := sims.NewGeneratingPairsIterator(c)
		for _, pair := range it.All() {
			found = true
			require.Equal(t, c.Word(pair.Left), c.Word(pair.Right),
				"a generating pair must already be identified by the congruence it came from")
		}
		return true
	})
	require.True(t, found)
}

func TestGeneratingPairsIteratorAllExhaustsTheIterator(t *testing.T) {
	p, err := sims.NewPresentationFromWords(1, []sims.Rule{
		{Left: sims.Word{0, 0}, Right: sims.Word{0}},
	}, false)
	require.NoError(t, err)
	s := sims.NewSims1(sims.NewSettings(p))
	// NumClasses == 2 is the one-class congruence plus the semigroup's sink.
	c, ok := s.FindIf(2, func(c *sims.Congruence) bool { return c.NumClasses == 2 })
	require.True(t, ok)

	it := sims.NewGeneratingPairsIterator(c)
	first := it.All()
	second := it.All()
	require.Len(t, first, 1)
	require.Empty(t, second, "All must exhaust the iterator")
	require.Empty(t, it.All())
}
