package sims

import "context"

// Sims1 enumerates right congruences of a presentation of index at most
// maxNodes, by one-sided backtracking search over partial word graphs.
type Sims1 struct {
	settings *Settings
	stats    *Stats
}

// NewSims1 builds a Sims1 search driven by the given settings.
func NewSims1(settings *Settings) *Sims1 {
	return &Sims1{settings: settings, stats: NewStats()}
}

// Stats exposes the live counters for this search.
func (s *Sims1) Stats() *Stats { return s.stats }

// ForEach calls visit once for every accepted congruence of index at most
// maxNodes, stopping early the moment visit returns false.
func (s *Sims1) ForEach(maxNodes Node, visit func(*Congruence) bool) {
	s.forEachContext(context.Background(), maxNodes, visit)
}

func (s *Sims1) forEachContext(ctx context.Context, maxNodes Node, visit func(*Congruence) bool) {
	p, pruners, threads := s.settings.resolve()
	runSearch(ctx, p, maxNodes, pruners, s.settings.include, false, s.stats, threads, visit)
}

// FindIf returns the first accepted congruence satisfying pred, or
// ok=false if the search exhausts every candidate of index at most
// maxNodes without one.
func (s *Sims1) FindIf(maxNodes Node, pred func(*Congruence) bool) (result *Congruence, ok bool) {
	s.ForEach(maxNodes, func(c *Congruence) bool {
		if pred(c) {
			result, ok = c, true
			return false
		}
		return true
	})
	return result, ok
}

// NumberOfCongruences counts every accepted congruence of index at most
// maxNodes.
func (s *Sims1) NumberOfCongruences(maxNodes Node) int64 {
	var n int64
	s.ForEach(maxNodes, func(*Congruence) bool {
		n++
		return true
	})
	return n
}

// Sims2 enumerates two-sided congruences, extending Sims1's search with
// the witness-word/two-sided-pair bookkeeping of twoSidedState.
type Sims2 struct {
	settings *Settings
	stats    *Stats
}

// NewSims2 builds a Sims2 search driven by the given settings.
func NewSims2(settings *Settings) *Sims2 {
	return &Sims2{settings: settings, stats: NewStats()}
}

// Stats exposes the live counters for this search.
func (s *Sims2) Stats() *Stats { return s.stats }

// ForEach calls visit once for every accepted two-sided congruence of
// index at most maxNodes, stopping early the moment visit returns false.
func (s *Sims2) ForEach(maxNodes Node, visit func(*Congruence) bool) {
	p, pruners, threads := s.settings.resolve()
	runSearch(context.Background(), p, maxNodes, pruners, s.settings.include, true, s.stats, threads, visit)
}

// FindIf returns the first accepted two-sided congruence satisfying pred,
// or ok=false if none exists at index at most maxNodes.
func (s *Sims2) FindIf(maxNodes Node, pred func(*Congruence) bool) (result *Congruence, ok bool) {
	s.ForEach(maxNodes, func(c *Congruence) bool {
		if pred(c) {
			result, ok = c, true
			return false
		}
		return true
	})
	return result, ok
}

// NumberOfCongruences counts every accepted two-sided congruence of index
// at most maxNodes.
func (s *Sims2) NumberOfCongruences(maxNodes Node) int64 {
	var n int64
	s.ForEach(maxNodes, func(*Congruence) bool {
		n++
		return true
	})
	return n
}
