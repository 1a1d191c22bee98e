package sims

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessDefinitionsForcesMissingLastEdge(t *testing.T) {
	// Rule a.a = a over alphabet {a}: once node0 --a--> n1 is defined, the
	// tree should force n1 --a--> n1 to keep a.a = a at node 0.
	rule := Rule{Left: Word{0, 0}, Right: Word{0}}
	tree := newFelschTree([]Rule{rule})
	g := newWordGraph(1, 4, tree)
	g.activateNode()
	n1 := g.registerNewNodeEdge(0, 0)

	ok := g.processDefinitions(0)
	require.True(t, ok)

	target, defined := g.Target(n1, 0)
	require.True(t, defined)
	require.Equal(t, n1, target)
}

func TestProcessDefinitionsDetectsConflict(t *testing.T) {
	rule := Rule{Left: Word{0, 0}, Right: Word{0}}
	tree := newFelschTree([]Rule{rule})
	g := newWordGraph(1, 4, tree)
	g.activateNode()
	n1 := g.registerNewNodeEdge(0, 0)
	n2 := g.activateNode()
	g.registerTarget(n1, 0, n2) // forces n1.a = n2, but rule needs n1.a = n1

	ok := g.processDefinitions(0)
	require.False(t, ok)
}

func TestMakeCompatibleChecksPairAtEveryNode(t *testing.T) {
	g := newWordGraph(1, 4, newFelschTree(nil))
	g.activateNode()
	n1 := g.activateNode()
	g.registerTarget(0, 0, n1)
	g.registerTarget(n1, 0, n1)

	ok := g.makeCompatible(0, g.NumActiveNodes(), []Rule{{Left: Word{0, 0}, Right: Word{0}}})
	require.True(t, ok)
}

func TestPropagateReachesFixpoint(t *testing.T) {
	// a^2 = a; starting from a single forced edge, propagate must both
	// register the remaining edge and converge.
	rule := Rule{Left: Word{0, 0}, Right: Word{0}}
	tree := newFelschTree([]Rule{rule})
	g := newWordGraph(1, 4, tree)
	g.activateNode()
	logStart := g.logLen()
	g.registerNewNodeEdge(0, 0)

	ok := g.propagate(logStart, func() []Rule { return nil })
	require.True(t, ok)
	require.True(t, g.isComplete())
}
