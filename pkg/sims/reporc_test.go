package sims_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowindex/sims/pkg/sims"
)

func TestRepOrcFindsACongruenceWithTransformationSemigroupOfExactSize(t *testing.T) {
	p := freeMonogenic(t)
	// The free monogenic semigroup's index-3 congruences include the
	// 3-point rho graph with a full 3-cycle, whose generated
	// transformation semigroup has exactly 3 elements.
	orc := sims.NewRepOrc(sims.NewSettings(p), 1, 3, 3)
	c, ok := orc.Find()
	require.True(t, ok)
	require.LessOrEqual(t, c.NumClasses, sims.Node(4)) // 3 real classes plus the sink
}

func TestRepOrcReportsNoneWhenSizeIsUnreachable(t *testing.T) {
	p := freeMonogenic(t)
	orc := sims.NewRepOrc(sims.NewSettings(p), 1, 2, 1000)
	_, ok := orc.Find()
	require.False(t, ok)
}

func TestRepOrcRejectsCongruencesBelowMinN(t *testing.T) {
	p := freeMonogenic(t)
	// With MaxN=1 the only reachable congruence has exactly one real
	// class (the self-loop, whose generated transformation semigroup has
	// size 1); demanding MinN=2 must reject it even though the size
	// matches, since there is no way to reach 2 real classes within the
	// node budget.
	orc := sims.NewRepOrc(sims.NewSettings(p), 2, 1, 1)
	_, ok := orc.Find()
	require.False(t, ok)
}

// Scenario 5: MinimalRepOrc on the free monogenic monoid of size 5 with
// target_size=5 yields a word graph with exactly 5 active nodes arranged
// in a cycle.
func TestMinimalRepOrcFreeMonogenicMonoidFindsFiveCycle(t *testing.T) {
	p := sims.EmptyPresentation(1, true)
	orc := sims.NewMinimalRepOrc(sims.NewSettings(p), 5)
	c, ok := orc.Find()
	require.True(t, ok)
	require.Equal(t, sims.Node(5), c.NumClasses)

	n := sims.Node(0)
	for i := 0; i < 5; i++ {
		n = c.Apply(n, 0)
	}
	require.Equal(t, sims.Node(0), n, "the action must return to class 0 after exactly 5 steps")
}

// Scenario 6: RepOrc with MinN=1, MaxN=5, TargetSize=24 on a presentation
// of the symmetric group on 4 elements yields the natural action on 4
// points.
func TestRepOrcSymmetricGroupOnFourFindsNaturalAction(t *testing.T) {
	p := coxeterSymmetricGroup(t, 3)
	orc := sims.NewRepOrc(sims.NewSettings(p), 1, 5, 24)
	c, ok := orc.Find()
	require.True(t, ok)
	require.Equal(t, sims.Node(4), c.NumClasses)
}
