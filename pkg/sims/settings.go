package sims

import "runtime"

// Settings configures a Sims1 or Sims2 search. The zero value is not
// usable; build one with NewSettings and the setter methods below, each
// of which returns *Settings so calls chain.
type Settings struct {
	pres            *Presentation
	numThreads      int
	include         []Rule
	exclude         []Rule
	pruners         []Pruner
	longRuleLength  int
	cBeginLongRules int
	hasCBeginLong   bool
	idleRestarts    int
	oracleFactory   OracleFactory
}

// NewSettings builds default settings over p: one thread, no extra pairs,
// no pruners beyond the ExcludeRefiner that Exclude installs automatically.
func NewSettings(p *Presentation) *Settings {
	return &Settings{pres: p, numThreads: 1}
}

// Presentation returns the presentation this Settings was built over,
// unaffected by the long-rule adjustments resolve applies for the
// search itself; RepOrc consults it to decide whether node 0 is a real
// class or an auxiliary sink.
func (s *Settings) Presentation() *Presentation { return s.pres }

// NumberOfThreads sets the worker count; values below 1 or above
// runtime.NumCPU() are clamped.
func (s *Settings) NumberOfThreads(n int) *Settings {
	if n < 1 {
		n = 1
	}
	if n > runtime.NumCPU() {
		n = runtime.NumCPU()
	}
	s.numThreads = n
	return s
}

// Include adds pairs that must be identified by every accepted
// congruence; folded into the search's extra-pairs set rather than a
// separate Pruner.
func (s *Settings) Include(pairs ...Rule) *Settings {
	s.include = append(s.include, pairs...)
	return s
}

// Exclude adds pairs that must never be identified; the first call
// installs an ExcludeRefiner automatically.
func (s *Settings) Exclude(pairs ...Rule) *Settings {
	s.exclude = append(s.exclude, pairs...)
	return s
}

// AddPruner registers an additional Pruner, consulted after the automatic
// ExcludeRefiner that Exclude installs.
func (s *Settings) AddPruner(p Pruner) *Settings {
	s.pruners = append(s.pruners, p)
	return s
}

// LongRuleLength marks every relation of total length >= l as "long":
// checked once per leaf candidate rather than during propagation. A value
// of l at or below 0 is ignored and leaves every rule short.
func (s *Settings) LongRuleLength(l int) *Settings {
	s.longRuleLength = l
	return s
}

// CBeginLongRules sets the long-rule boundary explicitly, overriding
// LongRuleLength.
func (s *Settings) CBeginLongRules(pos int) *Settings {
	s.cBeginLongRules = pos
	s.hasCBeginLong = true
	return s
}

// IdleThreadRestarts stores n as the idle-restart setting. The search
// does not read it: an idle worker keeps retrying steals, however often
// it has gone idle, until every worker is idle at the same time.
func (s *Settings) IdleThreadRestarts(n int) *Settings {
	s.idleRestarts = n
	return s
}

// OracleFactory stores f as the word-equivalence oracle factory. The
// search does not read it and installs no IdealRefiner of its own; an
// IdealRefiner takes part only when added through AddPruner.
func (s *Settings) OracleFactory(f OracleFactory) *Settings {
	s.oracleFactory = f
	return s
}

// resolve builds the effective presentation and pruner set for a search.
func (s *Settings) resolve() (*Presentation, *PrunerSet, int) {
	p := s.pres
	if s.hasCBeginLong {
		if q, err := p.withLongRulesBegin(s.cBeginLongRules); err == nil {
			p = q
		}
	} else if s.longRuleLength > 0 {
		p = p.withLongRuleLength(s.longRuleLength)
	}

	ps := &PrunerSet{}
	if len(s.exclude) > 0 {
		ps.Add(NewExcludeRefiner(s.exclude))
	}
	for _, pr := range s.pruners {
		ps.Add(pr)
	}
	return p, ps, s.numThreads
}
