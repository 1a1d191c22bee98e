package sims

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoSidedStateAssignWitnessExtendsParentWord(t *testing.T) {
	ts := newTwoSidedState(4)
	require.Empty(t, ts.witness[0])

	ts.assignWitness(0, 2, 1)
	require.Equal(t, Word{2}, ts.witness[1])

	ts.assignWitness(1, 0, 2)
	require.Equal(t, Word{2, 0}, ts.witness[2])
}

func TestTwoSidedStateAttachLogsPairOnlyForExistingTargets(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	ts := newTwoSidedState(g.maxNodes)
	ts.attach(g)

	g.activateNode() // node 0
	n1 := g.registerNewNodeEdge(0, 0)
	ts.assignWitness(0, 0, n1) // mirrors registerNewNodeEdge: no pair logged

	require.Empty(t, ts.pairs)

	g.registerTarget(n1, 0, 0) // reuses existing node 0: logs a pair
	require.Len(t, ts.pairs, 1)
	require.Equal(t, Word{0, 0}, ts.pairs[0].rule.Left)
	require.Empty(t, ts.pairs[0].rule.Right)
}

func TestTwoSidedStatePairsSinceFiltersByLogMark(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	ts := newTwoSidedState(g.maxNodes)
	ts.attach(g)

	g.activateNode()
	mark := g.logLen()
	g.registerTarget(0, 0, 0) // pair logged at logMark = mark+1

	require.Empty(t, ts.pairsSince(mark+1))
	require.Len(t, ts.pairsSince(mark), 1)
	require.Len(t, ts.all(), 1)
}

func TestTwoSidedStateTruncateRollsBackPairsAndWitnesses(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	ts := newTwoSidedState(g.maxNodes)
	ts.attach(g)

	g.activateNode()
	before := g.logLen()
	beforeNodes := g.numActive
	n1 := g.registerNewNodeEdge(0, 0)
	ts.assignWitness(0, 0, n1)
	g.registerTarget(n1, 0, 0)
	require.Len(t, ts.pairs, 1)

	g.reduceTo(before, beforeNodes)
	ts.truncate(before, beforeNodes)
	require.Empty(t, ts.pairs)
	require.Len(t, ts.witness, int(beforeNodes))
}
