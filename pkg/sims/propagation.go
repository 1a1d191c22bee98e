package sims

// wordPrefix returns w[:n], the first n letters of w.
func wordPrefix(w Word, n int) Word {
	return w[:n]
}

// checkAndRegister is the consistency/registration step for a single
// rule (or included/excluded/two-sided pair) at a single node: if both
// sides of the rule are fully defined from n, their endpoints must
// coincide; if exactly one side is fully defined and the other is
// missing only its last edge, that edge is registered; otherwise
// nothing can yet be concluded. Returns false on a genuine conflict.
func (g *WordGraph) checkAndRegister(r Rule, n Node) bool {
	uEnd, uOK := g.follow(n, r.Left)
	vEnd, vOK := g.follow(n, r.Right)

	switch {
	case uOK && vOK:
		return uEnd == vEnd
	case uOK && !vOK:
		return g.completeLastStep(n, r.Right, uEnd)
	case vOK && !uOK:
		return g.completeLastStep(n, r.Left, vEnd)
	default:
		return true
	}
}

// completeLastStep is invoked when word w, read from n, is undefined; if
// every edge along w except the very last is already defined, the last one
// is forced to point at target and registered. If more than the last edge
// is missing, there is nothing to conclude yet (not a failure).
func (g *WordGraph) completeLastStep(n Node, w Word, target Node) bool {
	if len(w) == 0 {
		// follow(n, empty) always succeeds, so w can't have been the
		// undefined side; nothing to do.
		return true
	}
	mid, ok := g.follow(n, wordPrefix(w, len(w)-1))
	if !ok {
		return true
	}
	lastLetter := w[len(w)-1]
	if existing, defined := g.Target(mid, lastLetter); defined {
		return existing == target
	}
	g.registerTarget(mid, lastLetter, target)
	return true
}

// processDefinitions consumes every definition logged from index start
// onward, and for each one consults the felsch tree to find the short
// rules it might newly satisfy, re-checking/forcing further definitions
// until no new rule-trigger remains. New definitions
// appended during this process extend the loop automatically, since it
// re-reads g.logLen() on every iteration.
func (g *WordGraph) processDefinitions(start int) bool {
	i := start
	for i < g.logLen() {
		e := g.log[i]
		i++
		for _, occ := range g.tree.occurrencesFor(e.letter) {
			word := occ.rule.Right
			if occ.isLeft {
				word = occ.rule.Left
			}
			prefix := wordPrefix(word, occ.pos)
			for n := Node(0); n < g.numActive; n++ {
				pre, ok := g.follow(n, prefix)
				if !ok || pre != e.source {
					continue
				}
				if !g.checkAndRegister(occ.rule, n) {
					return false
				}
			}
		}
	}
	return true
}

// makeCompatible applies checkAndRegister for every node in
// [firstNode,lastNode) against every pair in pairs. It is used for
// included pairs, two-sided pairs, and (once, at leaf candidates) the
// long rules.
func (g *WordGraph) makeCompatible(firstNode, lastNode Node, pairs []Rule) bool {
	for n := firstNode; n < lastNode; n++ {
		for _, p := range pairs {
			if !g.checkAndRegister(p, n) {
				return false
			}
		}
	}
	return true
}

// propagate runs the combined definition-propagation loop: process
// fresh definitions to fixpoint, re-run make_compatible over
// extraPairs, and repeat while either step keeps registering new
// definitions. It terminates because the number of defined edges is
// monotone non-decreasing and bounded by maxNodes*alphabetSize.
func (g *WordGraph) propagate(startLog int, extraPairs func() []Rule) bool {
	for {
		if !g.processDefinitions(startLog) {
			return false
		}
		before := g.logLen()
		if !g.makeCompatible(0, g.numActive, extraPairs()) {
			return false
		}
		if g.logLen() == before {
			return true
		}
		startLog = before
	}
}
