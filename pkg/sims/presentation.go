// Package sims enumerates low-index congruences of a finitely presented
// semigroup or monoid by backtracking search over partial deterministic
// word graphs. See the package-level design notes in DESIGN.md for how each
// piece maps onto the source algorithm.
package sims

import (
	"fmt"
	"sort"
)

// Letter is a single generator of a presentation's alphabet, identified by
// its position in [0, alphabetSize).
type Letter uint32

// Word is a finite ordered sequence of letters.
type Word []Letter

// Equal reports whether two words are identical sequences of letters.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

func (w Word) clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// String renders a word as a dot-separated list of letter indices, e.g.
// "0.1.1".
func (w Word) String() string {
	s := ""
	for i, a := range w {
		if i > 0 {
			s += "."
		}
		s += fmt.Sprintf("%d", a)
	}
	return s
}

// Rule is an ordered pair of words asserted equal by a presentation.
type Rule struct {
	Left, Right Word
}

func (r Rule) clone() Rule {
	return Rule{Left: r.Left.clone(), Right: r.Right.clone()}
}

func (r Rule) length() int {
	return len(r.Left) + len(r.Right)
}

// shortlexLess orders words first by length, then lexicographically by
// letter, the normalisation order rule left-hand sides are kept in.
func shortlexLess(a, b Word) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Presentation is the immutable input to the enumerator: an alphabet size,
// an ordered list of relations, and the index at which "long rules" begin.
// Rules before LongRulesBegin are consulted during propagation; rules at or
// after are consulted only once per leaf candidate.
type Presentation struct {
	alphabetSize   uint32
	rules          []Rule
	longRulesBegin int
	containsEmpty  bool
	isMonoid       bool
}

// NewPresentationFromWords builds a normalised Presentation from an
// alphabet size and a list of relation pairs. It validates and
// normalises but performs no textual parsing; a caller with a grammar to
// parse builds the []Rule slice itself and hands it here.
func NewPresentationFromWords(alphabetSize uint32, relations []Rule, isMonoid bool) (*Presentation, error) {
	if alphabetSize == 0 {
		return nil, &SettingsError{Setting: "presentation", Message: "alphabet size must be at least 1"}
	}
	p := &Presentation{
		alphabetSize: alphabetSize,
		isMonoid:     isMonoid,
	}
	for _, r := range relations {
		if err := p.validateWord(r.Left); err != nil {
			return nil, err
		}
		if err := p.validateWord(r.Right); err != nil {
			return nil, err
		}
		if len(r.Left) == 0 || len(r.Right) == 0 {
			p.containsEmpty = true
		}
		p.rules = append(p.rules, normaliseRule(r))
	}
	// All rules start out "short": long_rules_begin sits past the end of
	// the rule list until LongRuleLength/CBeginLongRules moves it.
	p.longRulesBegin = len(p.rules)
	return p, nil
}

// EmptyPresentation returns the presentation with the given alphabet size
// and no relations, which explicitly allows as a valid setting.
func EmptyPresentation(alphabetSize uint32, isMonoid bool) *Presentation {
	p, err := NewPresentationFromWords(alphabetSize, nil, isMonoid)
	if err != nil {
		panic(err)
	}
	return p
}

func normaliseRule(r Rule) Rule {
	r = r.clone()
	if shortlexLess(r.Left, r.Right) {
		r.Left, r.Right = r.Right, r.Left
	}
	return r
}

func (p *Presentation) validateWord(w Word) error {
	for _, a := range w {
		if uint32(a) >= p.alphabetSize {
			return &SettingsError{Setting: "word", Message: fmt.Sprintf("letter %d is outside the alphabet of size %d", a, p.alphabetSize)}
		}
	}
	return nil
}

// AlphabetSize returns |A|.
func (p *Presentation) AlphabetSize() uint32 { return p.alphabetSize }

// IsMonoid reports whether node 0 represents the identity (monoid)
// rather than an auxiliary sink (semigroup).
func (p *Presentation) IsMonoid() bool { return p.isMonoid }

// ContainsEmptyWord reports whether any relation involves the empty word.
func (p *Presentation) ContainsEmptyWord() bool { return p.containsEmpty }

// Rules returns the full, normalised rule list in current order.
func (p *Presentation) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// ShortRules returns the rules consulted during propagation.
func (p *Presentation) ShortRules() []Rule {
	return p.rules[:p.longRulesBegin]
}

// LongRules returns the rules consulted only at leaf candidates.
func (p *Presentation) LongRules() []Rule {
	return p.rules[p.longRulesBegin:]
}

// LongRulesBegin returns the index into Rules() at which long rules begin.
func (p *Presentation) LongRulesBegin() int { return p.longRulesBegin }

// withLongRuleLength returns a copy of p with rules sorted by total
// length and long_rules_begin set to the first rule whose length is
// >= L.
func (p *Presentation) withLongRuleLength(l int) *Presentation {
	q := p.cloneShallow()
	sort.SliceStable(q.rules, func(i, j int) bool {
		return q.rules[i].length() < q.rules[j].length()
	})
	begin := len(q.rules)
	for i, r := range q.rules {
		if r.length() >= l {
			begin = i
			break
		}
	}
	q.longRulesBegin = begin
	return q
}

// withLongRulesBegin returns a copy of p with long_rules_begin set
// explicitly. pos indexes Rules() and must lie in [0, len(Rules())];
// an odd pos is rejected.
func (p *Presentation) withLongRulesBegin(pos int) (*Presentation, error) {
	if pos < 0 || pos > len(p.rules) {
		return nil, &SettingsError{Setting: "cbegin_long_rules", Message: "position out of bounds"}
	}
	if pos%2 != 0 {
		return nil, &SettingsError{Setting: "cbegin_long_rules", Message: "position must be even"}
	}
	q := p.cloneShallow()
	q.longRulesBegin = pos
	return q, nil
}

func (p *Presentation) cloneShallow() *Presentation {
	q := *p
	q.rules = make([]Rule, len(p.rules))
	for i, r := range p.rules {
		q.rules[i] = r.clone()
	}
	return &q
}
