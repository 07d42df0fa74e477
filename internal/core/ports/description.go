package ports

import "go.trai.ch/forge/internal/core/domain"

// BuildRuleParams carries the identity and resolved dependency sets a
// Description receives when materializing a rule. Flavors on Target select
// the construction logic but never change the dependency sets.
type BuildRuleParams struct {
	Target       domain.BuildTarget
	DeclaredDeps []BuildRule
	ExtraDeps    []BuildRule
}

// WithTarget returns a copy of the params addressing a different target while
// keeping the same dependency sets.
func (p BuildRuleParams) WithTarget(target domain.BuildTarget) BuildRuleParams {
	p.Target = target
	return p
}

// Description is a pure mapping from declared constructor arguments and
// resolved dependencies to a BuildRule. Descriptions may call back into the
// resolver to require specific flavors of their dependencies.
//
//go:generate go run go.uber.org/mock/mockgen -source=description.go -destination=mocks/mock_description.go -package=mocks
type Description interface {
	// CreateBuildRule materializes the rule for params.Target from args.
	CreateBuildRule(params BuildRuleParams, resolver RuleResolver, args any) (BuildRule, error)
}

// TargetNode is a parsed target description: a Description paired with its
// raw constructor arguments and declared dependencies. Nodes are owned by the
// target graph, immutable after parse, and looked up by unflavored target.
type TargetNode struct {
	Target       domain.BuildTarget
	Description  Description
	Args         any
	DeclaredDeps []domain.BuildTarget
	ExtraDeps    []domain.BuildTarget
}
