// Package resolver implements the memoized build rule resolver: lazy,
// parallel-safe, exactly-once materialization of rules from target
// descriptions.
package resolver

import (
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuleResolver = (*Resolver)(nil)

// entry is one memoization slot. done is closed once rule/err are final, so
// concurrent requesters of an in-progress key block instead of constructing
// twice.
type entry struct {
	done chan struct{}
	rule ports.BuildRule
	err  error
}

// Resolver memoizes build rules by flavored target key. Construction runs
// outside the lock, so Descriptions may reenter Require for their
// dependencies' flavors without deadlocking, as long as requests stay acyclic
// at the flavor level. Registration is append-only; a resolver lives for one
// build request.
type Resolver struct {
	graph  ports.TargetGraph
	tracer ports.Tracer

	mu      sync.Mutex
	entries map[domain.TargetKey]*entry
	order   []domain.TargetKey
}

// New creates a resolver over the given target graph. tracer may be nil.
func New(graph ports.TargetGraph, tracer ports.Tracer) *Resolver {
	return &Resolver{
		graph:   graph,
		tracer:  tracer,
		entries: make(map[domain.TargetKey]*entry),
	}
}

// claim returns the entry for key, creating and claiming it when absent.
// Claimed means the caller must construct the rule and call finish.
func (r *Resolver) claim(key domain.TargetKey) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		return e, false
	}
	e := &entry{done: make(chan struct{})}
	r.entries[key] = e
	r.order = append(r.order, key)
	return e, true
}

func (r *Resolver) finish(e *entry, rule ports.BuildRule, err error) {
	e.rule = rule
	e.err = err
	close(e.done)
	if err == nil && r.tracer != nil {
		r.tracer.RecordRule(rule.Target())
	}
}

// Require returns the memoized rule for target with the given flavors
// appended. On first request it looks up the unflavored node in the target
// graph, resolves the node's declared dependencies, and invokes the node's
// Description with the flavored target and the same dependency sets as the
// unflavored node.
func (r *Resolver) Require(target domain.BuildTarget, flavors ...domain.Flavor) (ports.BuildRule, error) {
	flavored := target.Derive(flavors...)

	e, claimed := r.claim(flavored.Key())
	if !claimed {
		<-e.done
		return e.rule, e.err
	}

	rule, err := r.construct(flavored)
	if err != nil {
		err = domain.WithDetail(err, "target", flavored.FullName())
	}
	r.finish(e, rule, err)
	return rule, err
}

func (r *Resolver) construct(target domain.BuildTarget) (ports.BuildRule, error) {
	node, err := r.graph.Lookup(target.Unflavored())
	if err != nil {
		return nil, err
	}

	declared, err := r.requireAll(node.DeclaredDeps)
	if err != nil {
		return nil, err
	}
	extra, err := r.requireAll(node.ExtraDeps)
	if err != nil {
		return nil, err
	}

	params := ports.BuildRuleParams{
		Target:       target,
		DeclaredDeps: declared,
		ExtraDeps:    extra,
	}
	return node.Description.CreateBuildRule(params, r, node.Args)
}

func (r *Resolver) requireAll(targets []domain.BuildTarget) ([]ports.BuildRule, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	rules := make([]ports.BuildRule, 0, len(targets))
	for _, t := range targets {
		rule, err := r.Require(t)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Materialize returns the memoized rule for target, invoking construct
// exactly once on first request. Pipeline stages use it for derived rules
// (preprocess, compile, symlink trees) whose re-derivation must hit the
// cache.
func (r *Resolver) Materialize(target domain.BuildTarget, construct func() (ports.BuildRule, error)) (ports.BuildRule, error) {
	e, claimed := r.claim(target.Key())
	if !claimed {
		<-e.done
		return e.rule, e.err
	}

	rule, err := construct()
	if err != nil {
		err = domain.WithDetail(err, "target", target.FullName())
	}
	r.finish(e, rule, err)
	return rule, err
}

// AddToIndex registers a directly-constructed rule. An already-present target
// key indicates a non-deterministic or colliding derivation and fails with
// domain.ErrDuplicateRule.
func (r *Resolver) AddToIndex(rule ports.BuildRule) error {
	key := rule.Target().Key()

	r.mu.Lock()
	if existing, ok := r.entries[key]; ok {
		r.mu.Unlock()
		err := domain.WithDetail(domain.ErrDuplicateRule, "target", rule.Target().FullName())
		select {
		case <-existing.done:
			if existing.rule != nil {
				err = zerr.With(err, "existing_rule_key", existing.rule.RuleKey())
				err = zerr.With(err, "new_rule_key", rule.RuleKey())
			}
		default:
			err = zerr.With(err, "existing", "in progress")
		}
		return err
	}
	e := &entry{done: make(chan struct{})}
	r.entries[key] = e
	r.order = append(r.order, key)
	r.mu.Unlock()

	r.finish(e, rule, nil)
	return nil
}

// Rule returns the registered rule for target, if its construction has
// completed successfully.
func (r *Resolver) Rule(target domain.BuildTarget) (ports.BuildRule, bool) {
	r.mu.Lock()
	e, ok := r.entries[target.Key()]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	select {
	case <-e.done:
		if e.err != nil {
			return nil, false
		}
		return e.rule, true
	default:
		return nil, false
	}
}

// Rules returns all successfully materialized rules in registration order.
func (r *Resolver) Rules() []ports.BuildRule {
	r.mu.Lock()
	keys := make([]domain.TargetKey, len(r.order))
	copy(keys, r.order)
	entries := make([]*entry, len(keys))
	for i, k := range keys {
		entries[i] = r.entries[k]
	}
	r.mu.Unlock()

	rules := make([]ports.BuildRule, 0, len(entries))
	for _, e := range entries {
		select {
		case <-e.done:
			if e.err == nil {
				rules = append(rules, e.rule)
			}
		default:
		}
	}
	return rules
}
