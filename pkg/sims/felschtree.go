package sims

// occurrence records one place a letter appears in a short rule's word,
// identifying which rule/side/position the definition-propagation engine
// should re-examine when that letter is newly assigned as an edge label.
type occurrence struct {
	rule Rule
	// isLeft selects which side of the rule this occurrence belongs to.
	isLeft bool
	pos    int
}

// felschTree is the auxiliary index that narrows process_definitions
// down to the short rules a newly made definition (s,a) could possibly
// affect, instead of rescanning every rule at every node. It indexes
// short-rule words by the letter at each position; an Aho-Corasick
// automaton over the rule words is the classic implementation, but a
// plain per-letter occurrence index visits exactly the same (rule,
// node) pairs and is what this implementation uses.
type felschTree struct {
	byLetter map[Letter][]occurrence
}

func newFelschTree(shortRules []Rule) *felschTree {
	t := &felschTree{byLetter: make(map[Letter][]occurrence)}
	for _, r := range shortRules {
		t.indexWord(r, true, r.Left)
		t.indexWord(r, false, r.Right)
	}
	return t
}

func (t *felschTree) indexWord(r Rule, isLeft bool, w Word) {
	for i, a := range w {
		t.byLetter[a] = append(t.byLetter[a], occurrence{rule: r, isLeft: isLeft, pos: i})
	}
}

// occurrencesFor returns every recorded occurrence of letter a across the
// short rules.
func (t *felschTree) occurrencesFor(a Letter) []occurrence {
	return t.byLetter[a]
}
