package sims

import "fmt"

// SettingsError reports a caller-visible configuration mistake: a bad
// setting value or a malformed input. Internal search failures
// (registration conflicts, propagation conflicts, pruner rejection,
// long-rule conflicts) are never reported this way — they are the
// ordinary mechanism by which the search prunes, and are communicated
// as plain bool returns instead.
type SettingsError struct {
	// Setting names the setter or field the bad value was supplied to.
	Setting string
	// Message describes what was wrong with the value.
	Message string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("sims: invalid %s: %s", e.Setting, e.Message)
}

// InvariantViolation indicates a bug: a WordGraph or iterator reached a
// state its invariants forbid. These are not meant to be recovered
// from; callers should treat them like any other panic.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("sims: invariant violation: %s", e.Message)
}

func invariantf(format string, args ...any) {
	panic(&InvariantViolation{Message: fmt.Sprintf(format, args...)})
}
