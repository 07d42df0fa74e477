// Package ports defines the core interfaces of the rule-derivation engine.
package ports

import "go.trai.ch/forge/internal/core/domain"

// BuildRule is a materialized node of the rule graph: a flavored target, its
// dependency sets, and fixed output path(s). Once registered with the
// resolver a rule is immutable and shared by every consumer referencing the
// same (target, flavors) pair. Rules decide *what* must run; executing them
// is a collaborator concern.
type BuildRule interface {
	// Target returns the rule's flavored target identity.
	Target() domain.BuildTarget

	// DeclaredDeps returns the rules this rule structurally depends on.
	DeclaredDeps() []BuildRule

	// ExtraDeps returns implementation dependencies injected by the
	// derivation pipeline rather than declared by the user.
	ExtraDeps() []BuildRule

	// Inputs returns the source paths this rule consumes.
	Inputs() []domain.SourcePath

	// OutputPath returns the rule's primary output path; empty for rules
	// without a single primary output.
	OutputPath() string

	// RuleKey returns a content hash over the rule's identity, inputs, deps,
	// and outputs, used to detect colliding derivations.
	RuleKey() uint64
}

// CxxPreprocessorDep is the capability a rule implements to contribute
// preprocessor input to targets compiled against it. Structural-dependency
// traversal filters by this capability; rules without it are ignored.
type CxxPreprocessorDep interface {
	BuildRule

	// PreprocessorInput returns the input this rule contributes for the given
	// platform, excluding transitive contributions of its own deps.
	PreprocessorInput(platform domain.CxxPlatform) (domain.CxxPreprocessorInput, error)
}
