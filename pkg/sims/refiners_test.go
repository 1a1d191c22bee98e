package sims

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExcludeRefinerRejectsOnceExcludedPairCollapses(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	g.activateNode() // node 0

	r := NewExcludeRefiner([]Rule{{Left: Word{0}, Right: Word{0, 0}}})
	require.True(t, r.Accept(g)) // neither side defined yet

	g.registerTarget(0, 0, 0) // a is a self-loop: word "a" and "a.a" both land on node 0
	require.False(t, r.Accept(g))
}

func TestExcludeRefinerAcceptsWhenPairStaysDistinct(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	g.activateNode()
	n1 := g.activateNode()
	g.registerTarget(0, 0, n1)
	g.registerTarget(n1, 0, 0) // a.a returns to node 0, distinct from node 1 ("a")

	r := NewExcludeRefiner([]Rule{{Left: Word{0}, Right: Word{0, 0}}})
	require.True(t, r.Accept(g))
}

func TestFaithfulRefinerRejectsOnlyWhenEveryNodeCollapsesThePair(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	g.activateNode()
	g.registerTarget(0, 0, 0)

	r := NewFaithfulRefiner([]Rule{{Left: Word{0}, Right: Word{0, 0}}})
	require.False(t, r.Accept(g))
}

func TestFaithfulRefinerAcceptsWhenSomeNodeDoesNotCollapse(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	g.activateNode()       // node 0: self-loop, collapses "a" with "a.a"
	n1 := g.activateNode() // node 1
	n2 := g.activateNode() // node 2: 1 <-a-> 2, a 2-cycle with no fixed point
	g.registerTarget(0, 0, 0)
	g.registerTarget(n1, 0, n2)
	g.registerTarget(n2, 0, n1)

	r := NewFaithfulRefiner([]Rule{{Left: Word{0}, Right: Word{0, 0}}})
	require.True(t, r.Accept(g)) // node 1 maps "a" to 2 but "a.a" back to 1
}
