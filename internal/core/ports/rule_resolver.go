package ports

import "go.trai.ch/forge/internal/core/domain"

// RuleResolver provides atomic, exactly-once materialization of build rules
// keyed by flavored target. It is the sole shared mutable resource of the
// engine and must be safe for arbitrary task-level parallelism, including
// reentrant calls from Descriptions.
type RuleResolver interface {
	// Require returns the memoized rule for target with the given flavors
	// appended, materializing it through its target-graph Description on
	// first request.
	Require(target domain.BuildTarget, flavors ...domain.Flavor) (BuildRule, error)

	// Materialize returns the memoized rule for target, invoking construct
	// exactly once on first request. Pipeline stages use it for derived rules
	// whose re-derivation must hit the cache.
	Materialize(target domain.BuildTarget, construct func() (BuildRule, error)) (BuildRule, error)

	// AddToIndex registers a directly-constructed rule. Registering a target
	// key that is already present fails with domain.ErrDuplicateRule.
	AddToIndex(rule BuildRule) error

	// Rule returns the registered rule for target, if any.
	Rule(target domain.BuildTarget) (BuildRule, bool)
}
